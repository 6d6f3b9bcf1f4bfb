package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// assignedSectionSelector: instructors see the sections where they have
// workshops scheduled.
var assignedSectionSelector = access.Selector{
	Resource: "secciones asignadas",
	Policy: access.Policy{
		models.RoleITAdmin:      {Scope: access.ScopeAll},
		models.RoleProgramAdmin: {Scope: access.ScopeProgram},
		models.RoleInstructor:   {Scope: access.ScopeSelf},
	},
	ProgramColumn: "a.cod_carrera",
	ActorColumn:   "pt.id_usuario",
}

// RecordRepository handles regis_taller and det_regis_taller database
// operations
type RecordRepository struct {
	db db.DBTX
	tx db.Transactor
	sb squirrel.StatementBuilderType
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(conn db.DBTX, tx db.Transactor) *RecordRepository {
	return &RecordRepository{db: conn, tx: tx, sb: statementBuilder()}
}

// GetAssignedSections lists the sections of year with scheduled workshops
// that role may record.
func (r *RecordRepository) GetAssignedSections(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.SubjectSection, error) {
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
		Distinct().
		From("prog_asign pa").
		Join("prog_taller pt ON pt.ano_academ = pa.ano_academ AND pt.cod_periodo_academ = pa.cod_periodo_academ AND pt.sigla = pa.sigla AND pt.seccion = pa.seccion").
		Join("asign a ON a.sigla = pa.sigla").
		Join("carrera c ON c.cod_carrera = a.cod_carrera").
		Join("periodo_academ per ON per.cod_periodo_academ = pa.cod_periodo_academ").
		Where(squirrel.Eq{"pa.ano_academ": year}).
		OrderBy("pa.cod_periodo_academ ASC", "a.cod_carrera ASC", "pa.sigla ASC", "pa.seccion ASC")

	q, allowed, err := assignedSectionSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.SubjectSection{}, err
	}
	return selectAll[models.SubjectSection](ctx, r.db, q, "get assigned sections")
}

// GetSectionWorkshops lists the scheduled workshops of a section as seen by
// actorID, with their recording status.
func (r *RecordRepository) GetSectionWorkshops(ctx context.Context, key models.SectionKey, actorID int64) ([]models.SectionWorkshop, error) {
	q := r.sb.Select(
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
		Column(squirrel.Expr("CASE WHEN pt.id_usuario = ? THEN 0 ELSE 1 END AS indicador_usuario", actorID)).
		Column("(SELECT COUNT(*) FROM regis_taller rc" +
			" WHERE rc.fecha = pt.fecha AND rc.ano_academ = pt.ano_academ" +
			" AND rc.cod_periodo_academ = pt.cod_periodo_academ AND rc.sigla = pt.sigla" +
			" AND rc.seccion = pt.seccion AND rc.id_taller = pt.id_taller) AS indicador_registro").
		Column(squirrel.Expr("COALESCE(rt.obs, ?) AS obs", models.MsgRecordPending)).
		From("prog_taller pt").
		Join("taller t ON t.id_taller = pt.id_taller").
		Join("periodo_academ per ON per.cod_periodo_academ = pt.cod_periodo_academ").
		Join("asign a ON a.sigla = pt.sigla").
		LeftJoin("usuario u ON u.id_usuario = pt.id_usuario").
		LeftJoin("regis_taller rt ON rt.fecha = pt.fecha AND rt.ano_academ = pt.ano_academ" +
			" AND rt.cod_periodo_academ = pt.cod_periodo_academ AND rt.sigla = pt.sigla" +
			" AND rt.seccion = pt.seccion AND rt.id_taller = pt.id_taller").
		Where(sectionEq("pt", key)).
		OrderBy("pt.fecha ASC", "t.semana ASC", "pt.id_taller ASC")

	return selectAll[models.SectionWorkshop](ctx, r.db, q, "get section workshops")
}

// RegisterExecution stores the execution record of a scheduled workshop and
// copies the workshop's current product lines, at current prices, into the
// record detail. Both writes commit together or not at all.
func (r *RecordRepository) RegisterExecution(ctx context.Context, rec *models.ExecutionRecord, date time.Time) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		insertRecord := r.sb.Insert("regis_taller").
			Columns("fecha", "ano_academ", "cod_periodo_academ", "sigla", "seccion", "id_taller", "id_usuario", "obs").
			Values(date, rec.Year, rec.PeriodCode, rec.SubjectCode, rec.Section, rec.WorkshopID, rec.UserID, rec.Notes)

		if _, err := execute(ctx, tx, insertRecord, "register execution"); err != nil {
			return err
		}

		lines := squirrel.Select(
			"rt.fecha",
			"rt.ano_academ",
			"rt.cod_periodo_academ",
			"rt.sigla",
			"rt.seccion",
			"rt.id_taller",
			"ct.id_producto",
			"ct.cod_agrupador",
			"p.precio",
			"ct.cantidad",
		).
			From("regis_taller rt").
			Join("config_taller ct ON ct.id_taller = rt.id_taller").
			Join("producto p ON p.id_producto = ct.id_producto").
			Where(squirrel.Eq{
				"rt.fecha":              date,
				"rt.ano_academ":         rec.Year,
				"rt.cod_periodo_academ": rec.PeriodCode,
				"rt.sigla":              rec.SubjectCode,
				"rt.seccion":            rec.Section,
				"rt.id_taller":          rec.WorkshopID,
			})

		insertDetail := r.sb.Insert("det_regis_taller").
			Columns("fecha", "ano_academ", "cod_periodo_academ", "sigla", "seccion", "id_taller",
				"id_producto", "cod_agrupador", "precio", "cantidad").
			Select(lines)

		_, err := execute(ctx, tx, insertDetail, "register execution detail")
		return err
	})
}
