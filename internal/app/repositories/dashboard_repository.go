package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// programFiguresSelector covers the administrative dashboard. Instructors
// get their own figures instead.
var programFiguresSelector = access.Selector{
	Resource: "resumen por carrera",
	Policy: access.Policy{
		models.RoleITAdmin:       {Scope: access.ScopeAll},
		models.RoleWarehouseLead: {Scope: access.ScopeAll},
		models.RoleProgramAdmin:  {Scope: access.ScopeProgram},
	},
	ProgramColumn: "c.cod_carrera",
}

// DashboardRepository computes the figures shown on the home page
type DashboardRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(conn db.DBTX) *DashboardRepository {
	return &DashboardRepository{db: conn, sb: statementBuilder()}
}

// GetProgramFigures counts subjects, workshops, distinct configured products
// and instructors of every program role may see, ordered by program name.
func (r *DashboardRepository) GetProgramFigures(ctx context.Context, role models.Role, actorID int64) ([]models.ProgramFigures, error) {
	q := r.sb.Select("c.nom_carrera").
		Column("(SELECT COUNT(*) FROM asign a WHERE a.cod_carrera = c.cod_carrera) AS asignaturas").
		Column("(SELECT COUNT(*) FROM taller t JOIN asign a ON a.sigla = t.sigla" +
			" WHERE a.cod_carrera = c.cod_carrera) AS talleres").
		Column("(SELECT COUNT(DISTINCT ct.id_producto) FROM config_taller ct" +
			" JOIN taller t ON t.id_taller = ct.id_taller JOIN asign a ON a.sigla = t.sigla" +
			" WHERE a.cod_carrera = c.cod_carrera) AS productos").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM usuario u"+
			" WHERE u.cod_carrera = c.cod_carrera AND u.cod_perfil = ?) AS docentes", models.RoleInstructor)).
		From("carrera c").
		OrderBy("c.nom_carrera ASC", "c.cod_carrera ASC")

	q, allowed, err := programFiguresSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.ProgramFigures{}, err
	}
	return selectAll[models.ProgramFigures](ctx, r.db, q, "get program figures")
}

// GetInstructorFigures counts the workshops scheduled for and recorded by
// an instructor in year. Unknown instructors yield ErrNotFound.
func (r *DashboardRepository) GetInstructorFigures(ctx context.Context, instructorID int64, year int32) (*models.InstructorFigures, error) {
	q := r.sb.Select("c.nom_carrera").
		Column(squirrel.Expr("(SELECT COUNT(*) FROM prog_taller pt"+
			" WHERE pt.id_usuario = u.id_usuario AND pt.ano_academ = ?) AS asignados", year)).
		Column(squirrel.Expr("(SELECT COUNT(*) FROM regis_taller rt"+
			" WHERE rt.id_usuario = u.id_usuario AND rt.ano_academ = ?) AS registrados", year)).
		From("usuario u").
		LeftJoin("carrera c ON c.cod_carrera = u.cod_carrera").
		Where(squirrel.Eq{"u.id_usuario": instructorID})

	return selectOne[models.InstructorFigures](ctx, r.db, q, "get instructor figures")
}
