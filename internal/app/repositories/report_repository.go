package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

func reportSelector(resource, programColumn string) access.Selector {
	return access.Selector{
		Resource: resource,
		Policy: access.Policy{
			models.RoleITAdmin:      {Scope: access.ScopeAll},
			models.RoleProgramAdmin: {Scope: access.ScopeProgram},
			models.RoleInstructor:   {Scope: access.ScopeDenied},
		},
		ProgramColumn: programColumn,
	}
}

var (
	valuationSelector  = reportSelector("valorización de talleres", "a.cod_carrera")
	budgetSelector     = reportSelector("presupuesto estimado", "a.cod_carrera")
	assignmentSelector = reportSelector("asignación de docentes", "u.cod_carrera")

	// Warehouse leads plan purchases from the consumption summary.
	consumptionSelector = access.Selector{
		Resource: "resumen de productos",
		Policy: access.Policy{
			models.RoleITAdmin:       {Scope: access.ScopeAll},
			models.RoleWarehouseLead: {Scope: access.ScopeAll},
			models.RoleProgramAdmin:  {Scope: access.ScopeProgram},
			models.RoleInstructor:    {Scope: access.ScopeDenied},
		},
		ProgramColumn: "a.cod_carrera",
	}
)

// ReportRepository runs the read-only reports
type ReportRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(conn db.DBTX) *ReportRepository {
	return &ReportRepository{db: conn, sb: statementBuilder()}
}

// GetWorkshopValuation values every workshop with configured products
func (r *ReportRepository) GetWorkshopValuation(ctx context.Context, role models.Role, actorID int64) ([]models.WorkshopValuation, error) {
	q := r.sb.Select(
		"c.nom_carrera",
		"a.sigla",
		"a.nom_asign",
		"t.semana",
		"t.id_taller",
		"t.titulo_preparacion",
		costExpr+" AS total_taller",
	).
		From("asign a").
		Join("taller t ON t.sigla = a.sigla").
		Join("config_taller ct ON ct.id_taller = t.id_taller").
		Join("producto p ON p.id_producto = ct.id_producto").
		Join("carrera c ON c.cod_carrera = a.cod_carrera").
		GroupBy("c.cod_carrera", "a.sigla", "t.id_taller").
		OrderBy("c.cod_carrera ASC", "a.sigla ASC", "t.semana ASC", "t.id_taller ASC")

	q, allowed, err := valuationSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.WorkshopValuation{}, err
	}
	return selectAll[models.WorkshopValuation](ctx, r.db, q, "get workshop valuation")
}

// subjectCostExpr is the cost of one section of the subject a.sigla.
const subjectCostExpr = "(SELECT SUM(ROUND(cota.cantidad * pr.precio, 0))" +
	" FROM config_taller cota" +
	" JOIN producto pr ON pr.id_producto = cota.id_producto" +
	" JOIN taller ta ON ta.id_taller = cota.id_taller" +
	" WHERE ta.sigla = a.sigla)"

// GetSubjectBudget estimates the cost of every subject scheduled in year:
// sections times the cost of one section.
func (r *ReportRepository) GetSubjectBudget(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.SubjectBudget, error) {
	q := r.sb.Select(
		"c.nom_carrera",
		"a.sigla",
		"a.nom_asign",
		"COUNT(pa.seccion) AS total_seccion",
		subjectCostExpr+"::bigint AS total_asign",
		"(COUNT(pa.seccion) * "+subjectCostExpr+")::bigint AS total",
	).
		From("prog_asign pa").
		Join("asign a ON a.sigla = pa.sigla").
		Join("carrera c ON c.cod_carrera = a.cod_carrera").
		Where(squirrel.Eq{"pa.ano_academ": year}).
		GroupBy("c.cod_carrera", "a.sigla").
		OrderBy("c.cod_carrera ASC", "a.sigla ASC")

	q, allowed, err := budgetSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.SubjectBudget{}, err
	}
	return selectAll[models.SubjectBudget](ctx, r.db, q, "get subject budget")
}

// GetInstructorAssignments compares, per instructor and section, the
// workshops scheduled in year with those recorded. Instructors with nothing
// scheduled are listed last with "-" placeholders.
func (r *ReportRepository) GetInstructorAssignments(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.InstructorAssignment, error) {
	q := r.sb.Select(
		"c.nom_carrera",
		"u.primer_apellido",
		"u.segundo_apellido",
		"u.nom_preferido",
		"COALESCE(pt.sigla, '-') AS sigla",
		"COALESCE(a.nom_asign, '-') AS nom_asign",
		"pt.seccion",
		"pt.cod_periodo_academ",
		"COALESCE(per.nom_periodo_academ, '-') AS nom_periodo_academ",
		"COUNT(pt.id_taller) AS total_taller_asignado",
		"COUNT(rt.id_taller) AS total_taller_registrado",
	).
		From("usuario u").
		Join("carrera c ON c.cod_carrera = u.cod_carrera").
		LeftJoin("prog_taller pt ON pt.id_usuario = u.id_usuario AND pt.ano_academ = ?", year).
		LeftJoin("regis_taller rt ON rt.fecha = pt.fecha AND rt.ano_academ = pt.ano_academ" +
			" AND rt.cod_periodo_academ = pt.cod_periodo_academ AND rt.sigla = pt.sigla" +
			" AND rt.seccion = pt.seccion AND rt.id_taller = pt.id_taller AND rt.id_usuario = pt.id_usuario").
		LeftJoin("periodo_academ per ON per.cod_periodo_academ = pt.cod_periodo_academ").
		LeftJoin("asign a ON a.sigla = pt.sigla").
		Where(squirrel.Eq{"u.cod_perfil": models.RoleInstructor}).
		GroupBy("c.cod_carrera", "u.id_usuario", "pt.sigla", "a.nom_asign", "pt.seccion",
			"pt.cod_periodo_academ", "per.nom_periodo_academ").
		OrderBy(
			"c.cod_carrera ASC",
			"(pt.sigla IS NULL) ASC",
			"pt.sigla ASC",
			"pt.cod_periodo_academ ASC",
			"u.primer_apellido ASC",
			"u.segundo_apellido ASC",
			"u.nom_preferido ASC",
			"pt.seccion ASC",
		)

	q, allowed, err := assignmentSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.InstructorAssignment{}, err
	}
	return selectAll[models.InstructorAssignment](ctx, r.db, q, "get instructor assignments")
}

// GetProductConsumption sums the recorded product usage between from and
// to, both inclusive, at the prices in force when each workshop was
// recorded.
func (r *ReportRepository) GetProductConsumption(ctx context.Context, role models.Role, actorID int64, from, to time.Time) ([]models.ProductConsumption, error) {
	q := r.sb.Select(
		"c.nom_carrera",
		"cp.nom_categ_producto",
		"p.nom_producto",
		"SUM(d.cantidad)::float8 AS cantidad_total_productos",
		"um.nom_unidad_medida",
		"d.precio::bigint AS precio_producto",
		"SUM(ROUND(d.cantidad * d.precio, 0))::bigint AS precio_total_productos",
	).
		From("det_regis_taller d").
		Join("producto p ON p.id_producto = d.id_producto").
		Join("categ_producto cp ON cp.cod_categ_producto = p.cod_categ_producto").
		Join("unidad_medida um ON um.cod_unidad_medida = p.cod_unidad_medida").
		Join("asign a ON a.sigla = d.sigla").
		Join("carrera c ON c.cod_carrera = a.cod_carrera").
		Where(squirrel.GtOrEq{"d.fecha": from}).
		Where(squirrel.LtOrEq{"d.fecha": to}).
		GroupBy("c.cod_carrera", "cp.cod_categ_producto", "p.id_producto", "um.cod_unidad_medida", "d.precio").
		OrderBy("c.nom_carrera ASC", "cp.nom_categ_producto ASC", "p.nom_producto ASC", "d.precio ASC")

	q, allowed, err := consumptionSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.ProductConsumption{}, err
	}
	return selectAll[models.ProductConsumption](ctx, r.db, q, "get product consumption")
}
