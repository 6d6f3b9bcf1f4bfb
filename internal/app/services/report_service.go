package services

import (
	"context"
	"time"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/helpers"
)

// MsgInvalidRange is returned when a report range ends before it starts.
const MsgInvalidRange = "La fecha inicial no puede ser posterior a la fecha final"

type reportStore interface {
	GetWorkshopValuation(ctx context.Context, role models.Role, actorID int64) ([]models.WorkshopValuation, error)
	GetSubjectBudget(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.SubjectBudget, error)
	GetInstructorAssignments(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.InstructorAssignment, error)
	GetProductConsumption(ctx context.Context, role models.Role, actorID int64, from, to time.Time) ([]models.ProductConsumption, error)
}

// ReportService runs the management reports
type ReportService struct {
	resolver ProfileResolver
	repo     reportStore
}

// NewReportService creates a new ReportService
func NewReportService(resolver ProfileResolver, repo reportStore) *ReportService {
	return &ReportService{resolver: resolver, repo: repo}
}

// GetWorkshopValuation values every workshop at current prices
func (s *ReportService) GetWorkshopValuation(ctx context.Context, actorID int64) ([]models.WorkshopValuation, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.WorkshopValuation{}, err
	}
	return s.repo.GetWorkshopValuation(ctx, profile.Code, actorID)
}

// GetSubjectBudget estimates the cost of every subject scheduled in year
func (s *ReportService) GetSubjectBudget(ctx context.Context, actorID int64, year int32) ([]models.SubjectBudget, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.SubjectBudget{}, err
	}
	return s.repo.GetSubjectBudget(ctx, profile.Code, actorID, year)
}

// GetInstructorAssignments compares scheduled and recorded workshops per
// instructor in year
func (s *ReportService) GetInstructorAssignments(ctx context.Context, actorID int64, year int32) ([]models.InstructorAssignment, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.InstructorAssignment{}, err
	}
	return s.repo.GetInstructorAssignments(ctx, profile.Code, actorID, year)
}

// GetProductConsumption sums recorded product usage between two dates,
// both inclusive
func (s *ReportService) GetProductConsumption(ctx context.Context, actorID int64, from, to string) ([]models.ProductConsumption, error) {
	start, err := helpers.ParseISODate(from)
	if err != nil {
		return nil, err
	}
	end, err := helpers.ParseISODate(to)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.NewBadRequestError(MsgInvalidRange)
	}

	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.ProductConsumption{}, err
	}
	return s.repo.GetProductConsumption(ctx, profile.Code, actorID, start, end)
}
