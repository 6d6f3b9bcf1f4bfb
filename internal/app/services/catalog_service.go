package services

import (
	"context"

	"github.com/tallerdev/admtaller/internal/app/models"
)

type catalogStore interface {
	GetGroupingTags(ctx context.Context) ([]models.GroupingTag, error)
	GetUnits(ctx context.Context) ([]models.Unit, error)
	GetProductCategories(ctx context.Context) ([]models.ProductCategory, error)
}

// CatalogService serves the reference lists used by forms
type CatalogService struct {
	repo catalogStore
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo catalogStore) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) GetGroupingTags(ctx context.Context) ([]models.GroupingTag, error) {
	return s.repo.GetGroupingTags(ctx)
}

func (s *CatalogService) GetUnits(ctx context.Context) ([]models.Unit, error) {
	return s.repo.GetUnits(ctx)
}

func (s *CatalogService) GetProductCategories(ctx context.Context) ([]models.ProductCategory, error) {
	return s.repo.GetProductCategories(ctx)
}
