package services

import (
	"context"
	"time"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/helpers"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

type recordStore interface {
	GetAssignedSections(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.SubjectSection, error)
	GetSectionWorkshops(ctx context.Context, key models.SectionKey, actorID int64) ([]models.SectionWorkshop, error)
	RegisterExecution(ctx context.Context, rec *models.ExecutionRecord, date time.Time) error
}

// RecordService handles workshop execution records
type RecordService struct {
	resolver ProfileResolver
	repo     recordStore
}

// NewRecordService creates a new RecordService
func NewRecordService(resolver ProfileResolver, repo recordStore) *RecordService {
	return &RecordService{resolver: resolver, repo: repo}
}

// GetAssignedSections lists the sections of year that actorID may record
func (s *RecordService) GetAssignedSections(ctx context.Context, actorID int64, year int32) ([]models.SubjectSection, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.SubjectSection{}, err
	}
	return s.repo.GetAssignedSections(ctx, profile.Code, actorID, year)
}

// GetSectionWorkshops lists the scheduled workshops of a section with
// their recording status for actorID
func (s *RecordService) GetSectionWorkshops(ctx context.Context, actorID int64, key models.SectionKey) ([]models.SectionWorkshop, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.SectionWorkshop{}, err
	}
	return s.repo.GetSectionWorkshops(ctx, key, actorID)
}

// Register records the execution of a scheduled workshop together with a
// snapshot of its configured products at current prices.
func (s *RecordService) Register(ctx context.Context, rec *models.ExecutionRecord) (*models.ExecutionRecord, error) {
	day, err := helpers.ParseISODate(rec.Date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RegisterExecution(ctx, rec, day); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("workshopID", rec.WorkshopID).
		Int64("userID", rec.UserID).
		Str("date", rec.Date).
		Str("sigla", rec.SubjectCode).
		Msg("Workshop execution registered")
	return rec, nil
}
