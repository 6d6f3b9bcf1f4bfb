package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

var subjectSelector = access.Selector{
	Resource: "asignaturas",
	Policy: access.Policy{
		models.RoleITAdmin:       {Scope: access.ScopeAll},
		models.RoleWarehouseLead: {Scope: access.ScopeAll},
		models.RoleProgramAdmin:  {Scope: access.ScopeProgram},
		models.RoleInstructor:    {Scope: access.ScopeDenied},
	},
	ProgramColumn: "a.cod_carrera",
}

// SubjectRepository handles asign database operations
type SubjectRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(conn db.DBTX) *SubjectRepository {
	return &SubjectRepository{db: conn, sb: statementBuilder()}
}

// subjectQuery selects subjects with the cost of all their workshops.
// Subjects without workshops or products get a NULL cost.
func (r *SubjectRepository) subjectQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"a.sigla",
		"a.nom_asign",
		"a.nom_asign_abrev",
		"a.cod_carrera",
		"c.nom_carrera",
		costExpr+" AS costo_total",
	).
		From("asign a").
		Join("carrera c ON c.cod_carrera = a.cod_carrera").
		LeftJoin("taller t ON t.sigla = a.sigla").
		LeftJoin("config_taller ct ON ct.id_taller = t.id_taller").
		LeftJoin("producto p ON p.id_producto = ct.id_producto").
		GroupBy("a.sigla", "c.cod_carrera")
}

// GetAllSubjects lists the subjects visible to role.
func (r *SubjectRepository) GetAllSubjects(ctx context.Context, role models.Role, actorID int64) ([]models.Subject, error) {
	q := r.subjectQuery().OrderBy("a.cod_carrera ASC", "a.sigla ASC")

	q, allowed, err := subjectSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.Subject{}, err
	}
	return selectAll[models.Subject](ctx, r.db, q, "get all subjects")
}

// GetSubjectByCode retrieves a subject by its sigla
func (r *SubjectRepository) GetSubjectByCode(ctx context.Context, code string) (*models.Subject, error) {
	q := r.subjectQuery().Where(squirrel.Eq{"a.sigla": code})
	return selectOne[models.Subject](ctx, r.db, q, "get subject by code")
}

// CreateSubject inserts a subject
func (r *SubjectRepository) CreateSubject(ctx context.Context, s *models.Subject) error {
	q := r.sb.Insert("asign").
		Columns("sigla", "nom_asign", "nom_asign_abrev", "cod_carrera").
		Values(s.Code, s.Name, s.ShortName, s.ProgramCode)

	_, err := execute(ctx, r.db, q, "create subject")
	return err
}

// UpdateSubject updates a subject and returns the number of rows changed
func (r *SubjectRepository) UpdateSubject(ctx context.Context, s *models.Subject) (int64, error) {
	q := r.sb.Update("asign").
		Set("nom_asign", s.Name).
		Set("nom_asign_abrev", s.ShortName).
		Set("cod_carrera", s.ProgramCode).
		Where(squirrel.Eq{"sigla": s.Code})

	return execute(ctx, r.db, q, "update subject")
}

// DeleteSubject deletes a subject and returns the number of rows removed
func (r *SubjectRepository) DeleteSubject(ctx context.Context, code string) (int64, error) {
	q := r.sb.Delete("asign").Where(squirrel.Eq{"sigla": code})
	return execute(ctx, r.db, q, "delete subject")
}
