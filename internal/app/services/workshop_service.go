package services

import (
	"context"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// Integrity messages of workshop deletes.
const (
	MsgWorkshopIntegrity        = "Taller no se puede eliminar por integridad de datos"
	MsgWorkshopProductIntegrity = "Producto de taller no se puede eliminar por integridad de datos"
)

type workshopStore interface {
	GetWorkshopsBySubject(ctx context.Context, subjectCode string) ([]models.Workshop, error)
	GetWorkshopByID(ctx context.Context, id int64) (*models.Workshop, error)
	CreateWorkshop(ctx context.Context, w *models.Workshop) (int64, error)
	UpdateWorkshop(ctx context.Context, w *models.Workshop) (int64, error)
	DeleteWorkshop(ctx context.Context, id int64) (int64, error)

	GetWorkshopProducts(ctx context.Context, workshopID int64) ([]models.WorkshopProduct, error)
	GetWorkshopProduct(ctx context.Context, workshopID, productID int64, groupCode int32) (*models.WorkshopProduct, error)
	CreateWorkshopProduct(ctx context.Context, wp *models.WorkshopProduct) error
	UpdateWorkshopProductQuantity(ctx context.Context, wp *models.WorkshopProduct) (int64, error)
	DeleteWorkshopProduct(ctx context.Context, workshopID, productID int64, groupCode int32) (int64, error)
}

// WorkshopService handles workshops and their product lines
type WorkshopService struct {
	resolver ProfileResolver
	repo     workshopStore
}

// NewWorkshopService creates a new WorkshopService
func NewWorkshopService(resolver ProfileResolver, repo workshopStore) *WorkshopService {
	return &WorkshopService{resolver: resolver, repo: repo}
}

// GetWorkshopsBySubject lists the workshops of a subject by week
func (s *WorkshopService) GetWorkshopsBySubject(ctx context.Context, subjectCode string) ([]models.Workshop, error) {
	return s.repo.GetWorkshopsBySubject(ctx, subjectCode)
}

// GetWorkshop returns a workshop, or an empty one for id 0, unknown ids and
// actors without a profile.
func (s *WorkshopService) GetWorkshop(ctx context.Context, actorID, id int64) (*models.Workshop, error) {
	if id == 0 {
		return &models.Workshop{}, nil
	}

	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &models.Workshop{}, nil
	}

	workshop, err := s.repo.GetWorkshopByID(ctx, id)
	return notFoundAs(workshop, err, &models.Workshop{})
}

// CreateWorkshop inserts a workshop and returns it as stored
func (s *WorkshopService) CreateWorkshop(ctx context.Context, w *models.Workshop) (*models.Workshop, error) {
	id, err := s.repo.CreateWorkshop(ctx, w)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("workshopID", id).Str("sigla", w.SubjectCode).Msg("Workshop created")
	return s.repo.GetWorkshopByID(ctx, id)
}

// UpdateWorkshop updates a workshop and returns it as stored
func (s *WorkshopService) UpdateWorkshop(ctx context.Context, w *models.Workshop) (*models.Workshop, error) {
	rows, err := s.repo.UpdateWorkshop(ctx, w)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.NewResourceNotFoundError("Taller no existe")
	}
	return s.repo.GetWorkshopByID(ctx, w.ID)
}

// DeleteWorkshop deletes a workshop without product lines
func (s *WorkshopService) DeleteWorkshop(ctx context.Context, id int64) (*models.DeleteResult, error) {
	rows, err := s.repo.DeleteWorkshop(ctx, id)
	return deleteOutcome(rows, err, MsgWorkshopIntegrity, models.Key("id_taller", id))
}

// GetWorkshopProducts lists the product lines of a workshop
func (s *WorkshopService) GetWorkshopProducts(ctx context.Context, workshopID int64) ([]models.WorkshopProduct, error) {
	return s.repo.GetWorkshopProducts(ctx, workshopID)
}

// GetWorkshopProduct returns one product line, or a line carrying only its
// key when it does not exist.
func (s *WorkshopService) GetWorkshopProduct(ctx context.Context, workshopID, productID int64, groupCode int32) (*models.WorkshopProduct, error) {
	line, err := s.repo.GetWorkshopProduct(ctx, workshopID, productID, groupCode)
	return notFoundAs(line, err, &models.WorkshopProduct{
		WorkshopID: workshopID,
		ProductID:  productID,
		GroupCode:  groupCode,
	})
}

// CreateWorkshopProduct adds a product line and returns it as stored
func (s *WorkshopService) CreateWorkshopProduct(ctx context.Context, wp *models.WorkshopProduct) (*models.WorkshopProduct, error) {
	if wp.Quantity <= 0 {
		return nil, apperrors.NewValidationError("La cantidad debe ser mayor que cero")
	}
	if err := s.repo.CreateWorkshopProduct(ctx, wp); err != nil {
		return nil, err
	}
	return s.repo.GetWorkshopProduct(ctx, wp.WorkshopID, wp.ProductID, wp.GroupCode)
}

// UpdateWorkshopProduct changes the quantity of a product line
func (s *WorkshopService) UpdateWorkshopProduct(ctx context.Context, wp *models.WorkshopProduct) (*models.WorkshopProduct, error) {
	if wp.Quantity <= 0 {
		return nil, apperrors.NewValidationError("La cantidad debe ser mayor que cero")
	}

	rows, err := s.repo.UpdateWorkshopProductQuantity(ctx, wp)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.NewResourceNotFoundError("Producto de taller no existe")
	}
	return s.repo.GetWorkshopProduct(ctx, wp.WorkshopID, wp.ProductID, wp.GroupCode)
}

// DeleteWorkshopProduct removes a product line from a workshop
func (s *WorkshopService) DeleteWorkshopProduct(ctx context.Context, workshopID, productID int64, groupCode int32) (*models.DeleteResult, error) {
	rows, err := s.repo.DeleteWorkshopProduct(ctx, workshopID, productID, groupCode)
	return deleteOutcome(rows, err, MsgWorkshopProductIntegrity,
		models.Key("id_taller", workshopID),
		models.Key("id_producto", productID),
		models.Key("cod_agrupador", groupCode),
	)
}
