package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

var productSelector = access.Selector{
	Resource: "productos",
	Policy: access.Policy{
		models.RoleITAdmin:       {Scope: access.ScopeAll},
		models.RoleProgramAdmin:  {Scope: access.ScopeAll},
		models.RoleWarehouseLead: {Scope: access.ScopeAll},
		models.RoleInstructor:    {Scope: access.ScopeDenied},
	},
}

// ProductRepository handles producto database operations
type ProductRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(conn db.DBTX) *ProductRepository {
	return &ProductRepository{db: conn, sb: statementBuilder()}
}

func (r *ProductRepository) productQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"p.id_producto",
		"p.nom_producto",
		"p.precio::bigint AS precio",
		"p.cod_unidad_medida",
		"p.cod_categ_producto",
		"um.nom_unidad_medida",
		"cp.nom_categ_producto",
	).
		From("producto p").
		Join("unidad_medida um ON um.cod_unidad_medida = p.cod_unidad_medida").
		Join("categ_producto cp ON cp.cod_categ_producto = p.cod_categ_producto")
}

// GetAllProducts lists the product catalog visible to role.
func (r *ProductRepository) GetAllProducts(ctx context.Context, role models.Role, actorID int64) ([]models.Product, error) {
	q := r.productQuery().OrderBy("p.nom_producto ASC", "p.id_producto ASC")

	q, allowed, err := productSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.Product{}, err
	}
	return selectAll[models.Product](ctx, r.db, q, "get all products")
}

// ProductRule returns the access rule of role over products.
func (r *ProductRepository) ProductRule(role models.Role) (access.Rule, error) {
	return productSelector.Rule(role)
}

// GetProductByID retrieves a product by ID
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	q := r.productQuery().Where(squirrel.Eq{"p.id_producto": id})
	return selectOne[models.Product](ctx, r.db, q, "get product by ID")
}

// CreateProduct inserts a product and returns its generated ID
func (r *ProductRepository) CreateProduct(ctx context.Context, p *models.Product) (int64, error) {
	q := r.sb.Insert("producto").
		Columns("nom_producto", "precio", "cod_unidad_medida", "cod_categ_producto").
		Values(p.Name, p.Price, p.UnitCode, p.CategoryCode).
		Suffix("RETURNING id_producto")

	var id int64
	if err := insertReturning(ctx, r.db, q, "create product", &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateProduct updates a product and returns the number of rows changed
func (r *ProductRepository) UpdateProduct(ctx context.Context, p *models.Product) (int64, error) {
	q := r.sb.Update("producto").
		Set("nom_producto", p.Name).
		Set("precio", p.Price).
		Set("cod_unidad_medida", p.UnitCode).
		Set("cod_categ_producto", p.CategoryCode).
		Where(squirrel.Eq{"id_producto": p.ID})

	return execute(ctx, r.db, q, "update product")
}

// DeleteProduct deletes a product and returns the number of rows removed
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	q := r.sb.Delete("producto").Where(squirrel.Eq{"id_producto": id})
	return execute(ctx, r.db, q, "delete product")
}
