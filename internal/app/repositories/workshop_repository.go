package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// WorkshopRepository handles taller and config_taller database operations
type WorkshopRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewWorkshopRepository creates a new WorkshopRepository
func NewWorkshopRepository(conn db.DBTX) *WorkshopRepository {
	return &WorkshopRepository{db: conn, sb: statementBuilder()}
}

func (r *WorkshopRepository) workshopQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"t.id_taller",
		"t.titulo_preparacion",
		"t.detalle_preparacion",
		"t.semana",
		"t.sigla",
		"a.nom_asign",
		costExpr+" AS costo_total",
	).
		From("taller t").
		Join("asign a ON a.sigla = t.sigla").
		LeftJoin("config_taller ct ON ct.id_taller = t.id_taller").
		LeftJoin("producto p ON p.id_producto = ct.id_producto").
		GroupBy("t.id_taller", "a.sigla")
}

// GetWorkshopsBySubject lists the workshops of a subject by week
func (r *WorkshopRepository) GetWorkshopsBySubject(ctx context.Context, subjectCode string) ([]models.Workshop, error) {
	q := r.workshopQuery().
		Where(squirrel.Eq{"t.sigla": subjectCode}).
		OrderBy("t.semana ASC", "t.id_taller ASC")

	return selectAll[models.Workshop](ctx, r.db, q, "get workshops by subject")
}

// GetWorkshopByID retrieves a workshop by ID
func (r *WorkshopRepository) GetWorkshopByID(ctx context.Context, id int64) (*models.Workshop, error) {
	q := r.workshopQuery().Where(squirrel.Eq{"t.id_taller": id})
	return selectOne[models.Workshop](ctx, r.db, q, "get workshop by ID")
}

// CreateWorkshop inserts a workshop and returns its generated ID
func (r *WorkshopRepository) CreateWorkshop(ctx context.Context, w *models.Workshop) (int64, error) {
	q := r.sb.Insert("taller").
		Columns("titulo_preparacion", "detalle_preparacion", "semana", "sigla").
		Values(w.Title, w.Detail, w.Week, w.SubjectCode).
		Suffix("RETURNING id_taller")

	var id int64
	if err := insertReturning(ctx, r.db, q, "create workshop", &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateWorkshop updates a workshop and returns the number of rows changed
func (r *WorkshopRepository) UpdateWorkshop(ctx context.Context, w *models.Workshop) (int64, error) {
	q := r.sb.Update("taller").
		Set("titulo_preparacion", w.Title).
		Set("detalle_preparacion", w.Detail).
		Set("semana", w.Week).
		Set("sigla", w.SubjectCode).
		Where(squirrel.Eq{"id_taller": w.ID})

	return execute(ctx, r.db, q, "update workshop")
}

// DeleteWorkshop deletes a workshop and returns the number of rows removed
func (r *WorkshopRepository) DeleteWorkshop(ctx context.Context, id int64) (int64, error) {
	q := r.sb.Delete("taller").Where(squirrel.Eq{"id_taller": id})
	return execute(ctx, r.db, q, "delete workshop")
}

func (r *WorkshopRepository) productQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"ct.id_producto",
		"ct.id_taller",
		"ct.cod_agrupador",
		"ct.cantidad::float8 AS cantidad",
		"um.nom_unidad_medida",
		"p.nom_producto",
		"p.cod_categ_producto",
		"cp.nom_categ_producto",
		"ag.nom_agrupador",
		"p.precio::bigint AS precio",
		"ROUND(ct.cantidad * p.precio, 0)::bigint AS total",
	).
		From("config_taller ct").
		Join("producto p ON p.id_producto = ct.id_producto").
		Join("categ_producto cp ON cp.cod_categ_producto = p.cod_categ_producto").
		Join("unidad_medida um ON um.cod_unidad_medida = p.cod_unidad_medida").
		Join("agrupador ag ON ag.cod_agrupador = ct.cod_agrupador")
}

// GetWorkshopProducts lists the product lines of a workshop. Lines of the
// first grouping tag are ordered by category before name.
func (r *WorkshopRepository) GetWorkshopProducts(ctx context.Context, workshopID int64) ([]models.WorkshopProduct, error) {
	q := r.productQuery().
		Where(squirrel.Eq{"ct.id_taller": workshopID}).
		OrderBy(
			"ct.cod_agrupador ASC",
			"CASE WHEN ct.cod_agrupador = 1 THEN p.cod_categ_producto ELSE 0 END ASC",
			"p.nom_producto ASC",
			"ct.id_producto ASC",
		)

	return selectAll[models.WorkshopProduct](ctx, r.db, q, "get workshop products")
}

// GetWorkshopProduct retrieves one product line by its composite key
func (r *WorkshopRepository) GetWorkshopProduct(ctx context.Context, workshopID, productID int64, groupCode int32) (*models.WorkshopProduct, error) {
	q := r.productQuery().Where(squirrel.Eq{
		"ct.id_taller":     workshopID,
		"ct.id_producto":   productID,
		"ct.cod_agrupador": groupCode,
	})

	return selectOne[models.WorkshopProduct](ctx, r.db, q, "get workshop product")
}

// CreateWorkshopProduct adds a product line to a workshop
func (r *WorkshopRepository) CreateWorkshopProduct(ctx context.Context, wp *models.WorkshopProduct) error {
	q := r.sb.Insert("config_taller").
		Columns("id_taller", "id_producto", "cod_agrupador", "cantidad").
		Values(wp.WorkshopID, wp.ProductID, wp.GroupCode, wp.Quantity)

	_, err := execute(ctx, r.db, q, "create workshop product")
	return err
}

// UpdateWorkshopProductQuantity changes the quantity of a product line
func (r *WorkshopRepository) UpdateWorkshopProductQuantity(ctx context.Context, wp *models.WorkshopProduct) (int64, error) {
	q := r.sb.Update("config_taller").
		Set("cantidad", wp.Quantity).
		Where(squirrel.Eq{
			"id_taller":     wp.WorkshopID,
			"id_producto":   wp.ProductID,
			"cod_agrupador": wp.GroupCode,
		})

	return execute(ctx, r.db, q, "update workshop product")
}

// DeleteWorkshopProduct removes a product line from a workshop
func (r *WorkshopRepository) DeleteWorkshopProduct(ctx context.Context, workshopID, productID int64, groupCode int32) (int64, error) {
	q := r.sb.Delete("config_taller").Where(squirrel.Eq{
		"id_taller":     workshopID,
		"id_producto":   productID,
		"cod_agrupador": groupCode,
	})

	return execute(ctx, r.db, q, "delete workshop product")
}
