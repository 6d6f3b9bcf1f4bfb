package services

import (
	"context"
	"time"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/helpers"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// Integrity messages of schedule deletes.
const (
	MsgSectionIntegrity          = "Programación de asignatura no se puede eliminar por integridad de datos"
	MsgWorkshopScheduleIntegrity = "Programación de taller no se puede eliminar por integridad de datos"
)

type scheduleStore interface {
	GetSectionsByYear(ctx context.Context, role models.Role, actorID int64, year int32) ([]models.SubjectSection, error)
	CreateSection(ctx context.Context, key models.SectionKey) error
	DeleteSection(ctx context.Context, key models.SectionKey) (int64, error)

	GetWorkshopSchedules(ctx context.Context, key models.SectionKey) ([]models.WorkshopSchedule, error)
	GetWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time) (*models.WorkshopSchedule, error)
	CreateWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time, userID *int64) error
	UpdateWorkshopInstructor(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time, userID *int64) (int64, error)
	DeleteWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date time.Time) (int64, error)
}

// ScheduleService handles subject sections and their workshop schedule
type ScheduleService struct {
	resolver ProfileResolver
	repo     scheduleStore
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(resolver ProfileResolver, repo scheduleStore) *ScheduleService {
	return &ScheduleService{resolver: resolver, repo: repo}
}

func sectionKeys(key models.SectionKey) []models.KeyField {
	return []models.KeyField{
		models.Key("ano_academ", key.Year),
		models.Key("cod_periodo_academ", key.PeriodCode),
		models.Key("sigla", key.SubjectCode),
		models.Key("seccion", key.Section),
	}
}

// GetSections lists the sections of year visible to actorID
func (s *ScheduleService) GetSections(ctx context.Context, actorID int64, year int32) ([]models.SubjectSection, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.SubjectSection{}, err
	}
	return s.repo.GetSectionsByYear(ctx, profile.Code, actorID, year)
}

// CreateSection schedules a section of a subject
func (s *ScheduleService) CreateSection(ctx context.Context, key models.SectionKey) (*models.SectionKey, error) {
	if err := s.repo.CreateSection(ctx, key); err != nil {
		return nil, err
	}

	logger.Info().
		Int32("year", key.Year).
		Int32("period", key.PeriodCode).
		Str("sigla", key.SubjectCode).
		Int32("section", key.Section).
		Msg("Section scheduled")
	return &key, nil
}

// DeleteSection removes a section without scheduled workshops
func (s *ScheduleService) DeleteSection(ctx context.Context, actorID int64, key models.SectionKey) (*models.DeleteResult, error) {
	keys := sectionKeys(key)
	if refused, err := deletePermission(ctx, s.resolver, actorID, keys...); refused != nil || err != nil {
		return refused, err
	}

	rows, err := s.repo.DeleteSection(ctx, key)
	return deleteOutcome(rows, err, MsgSectionIntegrity, keys...)
}

// GetWorkshopSchedules lists the workshops scheduled for a section
func (s *ScheduleService) GetWorkshopSchedules(ctx context.Context, key models.SectionKey) ([]models.WorkshopSchedule, error) {
	return s.repo.GetWorkshopSchedules(ctx, key)
}

// GetWorkshopSchedule returns one scheduled workshop, or an entry carrying
// only its key when nothing is scheduled.
func (s *ScheduleService) GetWorkshopSchedule(ctx context.Context, key models.SectionKey, workshopID int64, date string) (*models.WorkshopSchedule, error) {
	day, err := helpers.ParseISODate(date)
	if err != nil {
		return nil, err
	}

	schedule, err := s.repo.GetWorkshopSchedule(ctx, key, workshopID, day)
	return notFoundAs(schedule, err, &models.WorkshopSchedule{
		Date:       date,
		SectionKey: key,
		WorkshopID: workshopID,
	})
}

// CreateWorkshopSchedule schedules a workshop on a date and returns the
// stored entry
func (s *ScheduleService) CreateWorkshopSchedule(ctx context.Context, ws *models.WorkshopSchedule) (*models.WorkshopSchedule, error) {
	day, err := helpers.ParseISODate(ws.Date)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateWorkshopSchedule(ctx, ws.SectionKey, ws.WorkshopID, day, ws.UserID); err != nil {
		return nil, err
	}
	return s.repo.GetWorkshopSchedule(ctx, ws.SectionKey, ws.WorkshopID, day)
}

// UpdateWorkshopInstructor assigns, changes or clears the instructor of a
// scheduled workshop
func (s *ScheduleService) UpdateWorkshopInstructor(ctx context.Context, ws *models.WorkshopSchedule) (*models.WorkshopSchedule, error) {
	day, err := helpers.ParseISODate(ws.Date)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.UpdateWorkshopInstructor(ctx, ws.SectionKey, ws.WorkshopID, day, ws.UserID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.NewResourceNotFoundError("Programación de taller no existe")
	}
	return s.repo.GetWorkshopSchedule(ctx, ws.SectionKey, ws.WorkshopID, day)
}

// DeleteWorkshopSchedule unschedules a workshop that has no execution
// record
func (s *ScheduleService) DeleteWorkshopSchedule(ctx context.Context, actorID int64, key models.SectionKey, workshopID int64, date string) (*models.DeleteResult, error) {
	day, err := helpers.ParseISODate(date)
	if err != nil {
		return nil, err
	}

	keys := append(sectionKeys(key),
		models.Key("id_taller", workshopID),
		models.Key("fecha", date),
	)
	if refused, err := deletePermission(ctx, s.resolver, actorID, keys...); refused != nil || err != nil {
		return refused, err
	}

	rows, err := s.repo.DeleteWorkshopSchedule(ctx, key, workshopID, day)
	return deleteOutcome(rows, err, MsgWorkshopScheduleIntegrity, keys...)
}
