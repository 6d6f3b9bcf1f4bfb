package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

var sectionSelector = access.Selector{
	Resource: "programación de asignaturas",
	Policy: access.Policy{
		models.RoleITAdmin:      {Scope: access.ScopeAll},
		models.RoleProgramAdmin: {Scope: access.ScopeProgram},
		models.RoleInstructor:   {Scope: access.ScopeDenied},
	},
	ProgramColumn: "a.cod_carrera",
}

// sectionEq matches the section key columns of the table aliased alias.
func sectionEq(alias string, key models.SectionKey) squirrel.Eq {
	return squirrel.Eq{
		alias + ".ano_academ":         key.Year,
		alias + ".cod_periodo_academ": key.PeriodCode,
		alias + ".sigla":              key.SubjectCode,
		alias + ".seccion":            key.Section,
	}
}

// ScheduleRepository handles prog_asign and prog_taller database operations
type ScheduleRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(conn db.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: conn, sb: statementBuilder()}
}

// GetSectionsByYear lists the subject sections scheduled in year that role
// may see.
func (r *ScheduleRepository) GetSectionsByYear(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.SubjectSection, error) {
	q := r.sb.Select(
		"pa.ano_academ",
		"pa.cod_periodo_academ",
		"pa.sigla",
		"pa.seccion",
		"a.cod_carrera",
		"c.nom_carrera",
		"a.nom_asign",
		"per.nom_periodo_academ",
	).
		From("prog_asign pa").
		Join("periodo_academ per ON per.cod_periodo_academ = pa.cod_periodo_academ").
		Join("asign a ON a.sigla = pa.sigla").
		Join("carrera c ON c.cod_carrera = a.cod_carrera").
		Where(squirrel.Eq{"pa.ano_academ": year}).
		OrderBy("pa.cod_periodo_academ ASC", "a.cod_carrera ASC", "pa.sigla ASC", "pa.seccion ASC")

	q, allowed, err := sectionSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.SubjectSection{}, err
	}
	return selectAll[models.SubjectSection](ctx, r.db, q, "get sections by year")
}

// SectionRule returns the access rule of role over scheduled sections.
func (r *ScheduleRepository) SectionRule(role models.Role) (access.Rule, error) {
	return sectionSelector.Rule(role)
}

// CreateSection schedules a subject section
func (r *ScheduleRepository) CreateSection(ctx context.Context, key models.SectionKey) error {
	q := r.sb.Insert("prog_asign").
		Columns("ano_academ", "cod_periodo_academ", "sigla", "seccion").
		Values(key.Year, key.PeriodCode, key.SubjectCode, key.Section)

	_, err := execute(ctx, r.db, q, "create section")
	return err
}

// DeleteSection removes a scheduled section
func (r *ScheduleRepository) DeleteSection(ctx context.Context, key models.SectionKey) (int64, error) {
	q := r.sb.Delete("prog_asign pa").Where(sectionEq("pa", key))
	return execute(ctx, r.db, q, "delete section")
}

func (r *ScheduleRepository) workshopScheduleQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"to_char(pt.fecha, 'YYYY-MM-DD') AS fecha",
		"pt.ano_academ",
		"pt.cod_periodo_academ",
		"pt.sigla",
		"pt.seccion",
		"pt.id_taller",
		"pt.id_usuario",
		"per.nom_periodo_academ",
		"a.nom_asign",
		"t.titulo_preparacion",
		"t.semana",
		"u.login",
		"u.nom_preferido",
		"u.primer_apellido",
		"u.segundo_apellido",
	).
		From("prog_taller pt").
		Join("periodo_academ per ON per.cod_periodo_academ = pt.cod_periodo_academ").
		Join("asign a ON a.sigla = pt.sigla").
		LeftJoin("taller t ON t.id_taller = pt.id_taller").
		LeftJoin("usuario u ON u.id_usuario = pt.id_usuario")
}

// GetWorkshopSchedules lists the workshops scheduled for a section by date
func (r *ScheduleRepository) GetWorkshopSchedules(ctx context.Context, key models.SectionKey) ([]models.WorkshopSchedule, error) {
	q := r.workshopScheduleQuery().
		Where(sectionEq("pt", key)).
		OrderBy("pt.fecha ASC", "t.semana ASC", "pt.id_taller ASC")

	return selectAll[models.WorkshopSchedule](ctx, r.db, q, "get workshop schedules")
}

// GetWorkshopSchedule retrieves one scheduled workshop
func (r *ScheduleRepository) GetWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time) (*models.WorkshopSchedule, error) {
	q := r.workshopScheduleQuery().
		Where(sectionEq("pt", key)).
		Where(squirrel.Eq{"pt.id_taller": workshopID, "pt.fecha": date})

	return selectOne[models.WorkshopSchedule](ctx, r.db, q, "get workshop schedule")
}

// CreateWorkshopSchedule schedules a workshop on a date for a section
func (r *ScheduleRepository) CreateWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time, userID *int64) error {
	q := r.sb.Insert("prog_taller").
		Columns("fecha", "ano_academ", "cod_periodo_academ", "sigla", "seccion", "id_taller", "id_usuario").
		Values(date, key.Year, key.PeriodCode, key.SubjectCode, key.Section, workshopID, userID)

	_, err := execute(ctx, r.db, q, "create workshop schedule")
	return err
}

// UpdateWorkshopInstructor assigns the instructor of a scheduled workshop
func (r *ScheduleRepository) UpdateWorkshopInstructor(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time, userID *int64) (int64, error) {
	q := r.sb.Update("prog_taller pt").
		Set("id_usuario", userID).
		Where(sectionEq("pt", key)).
		Where(squirrel.Eq{"pt.id_taller": workshopID, "pt.fecha": date})

	return execute(ctx, r.db, q, "update workshop instructor")
}

// DeleteWorkshopSchedule removes a scheduled workshop
func (r *ScheduleRepository) DeleteWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time) (int64, error) {
	q := r.sb.Delete("prog_taller pt").
		Where(sectionEq("pt", key)).
		Where(squirrel.Eq{"pt.id_taller": workshopID, "pt.fecha": date})

	return execute(ctx, r.db, q, "delete workshop schedule")
}
