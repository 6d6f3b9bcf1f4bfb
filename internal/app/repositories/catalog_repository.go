package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// CatalogRepository reads the small reference tables used by forms
type CatalogRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(conn db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: conn, sb: statementBuilder()}
}

func (r *CatalogRepository) GetGroupingTags(ctx context.Context) ([]models.GroupingTag, error) {
	q := r.sb.Select("cod_agrupador", "nom_agrupador").
		From("agrupador").
		OrderBy("cod_agrupador ASC")

	return selectAll[models.GroupingTag](ctx, r.db, q, "get grouping tags")
}

func (r *CatalogRepository) GetUnits(ctx context.Context) ([]models.Unit, error) {
	q := r.sb.Select("cod_unidad_medida", "nom_unidad_medida", "nom_unidad_medida_abrev").
		From("unidad_medida").
		OrderBy("nom_unidad_medida ASC")

	return selectAll[models.Unit](ctx, r.db, q, "get units")
}

func (r *CatalogRepository) GetProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	q := r.sb.Select("cod_categ_producto", "nom_categ_producto").
		From("categ_producto").
		OrderBy("cod_categ_producto ASC")

	return selectAll[models.ProductCategory](ctx, r.db, q, "get product categories")
}
