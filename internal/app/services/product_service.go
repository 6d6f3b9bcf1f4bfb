package services

import (
	"context"

	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// MsgProductIntegrity is reported when a product is still configured or
// recorded.
const MsgProductIntegrity = "Producto no se puede eliminar por integridad de datos"

type productStore interface {
	GetAllProducts(ctx context.Context, role models.Role, actorID int64) ([]models.Product, error)
	ProductRule(role models.Role) (access.Rule, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) (int64, error)
	UpdateProduct(ctx context.Context, p *models.Product) (int64, error)
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}

// ProductService handles the product catalog
type ProductService struct {
	resolver ProfileResolver
	repo     productStore
}

// NewProductService creates a new ProductService
func NewProductService(resolver ProfileResolver, repo productStore) *ProductService {
	return &ProductService{resolver: resolver, repo: repo}
}

// GetProducts lists the products visible to actorID
func (s *ProductService) GetProducts(ctx context.Context, actorID int64) ([]models.Product, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.Product{}, err
	}
	return s.repo.GetAllProducts(ctx, profile.Code, actorID)
}

// GetProduct returns a product, or an empty one when id is 0, the product
// does not exist or actorID may not see the catalog.
func (s *ProductService) GetProduct(ctx context.Context, actorID, id int64) (*models.Product, error) {
	if id == 0 {
		return &models.Product{}, nil
	}

	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &models.Product{}, nil
	}

	rule, err := s.repo.ProductRule(profile.Code)
	if err != nil {
		return nil, err
	}
	if rule.Scope == access.ScopeDenied {
		return &models.Product{}, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	return notFoundAs(product, err, &models.Product{})
}

// CreateProduct inserts a product and returns it as stored
func (s *ProductService) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p.Price < 0 {
		return nil, apperrors.NewValidationError("El precio no puede ser negativo")
	}

	id, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("productID", id).Msg("Product created")
	return s.repo.GetProductByID(ctx, id)
}

// UpdateProduct updates a product on behalf of actorID
func (s *ProductService) UpdateProduct(ctx context.Context, actorID int64, p *models.Product) (*models.Product, error) {
	if _, err := requireWriter(ctx, s.resolver, actorID, "modificar"); err != nil {
		return nil, err
	}
	if p.Price < 0 {
		return nil, apperrors.NewValidationError("El precio no puede ser negativo")
	}

	rows, err := s.repo.UpdateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.NewResourceNotFoundError("Producto no existe")
	}
	return s.repo.GetProductByID(ctx, p.ID)
}

// DeleteProduct deletes a product on behalf of actorID
func (s *ProductService) DeleteProduct(ctx context.Context, actorID, id int64) (*models.DeleteResult, error) {
	key := models.Key("id_producto", id)

	if refused, err := deletePermission(ctx, s.resolver, actorID, key); err != nil || refused != nil {
		return refused, err
	}

	rows, err := s.repo.DeleteProduct(ctx, id)
	return deleteOutcome(rows, err, MsgProductIntegrity, key)
}
