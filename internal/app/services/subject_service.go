package services

import (
	"context"
	"strings"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// MsgSubjectIntegrity is reported when a subject still has dependents.
const MsgSubjectIntegrity = "Asignatura no se puede eliminar por integridad de datos"

type subjectStore interface {
	GetAllSubjects(ctx context.Context, role models.Role, actorID int64) ([]models.Subject, error)
	GetSubjectByCode(ctx context.Context, code string) (*models.Subject, error)
	CreateSubject(ctx context.Context, s *models.Subject) error
	UpdateSubject(ctx context.Context, s *models.Subject) (int64, error)
	DeleteSubject(ctx context.Context, code string) (int64, error)
}

// SubjectService handles subject operations
type SubjectService struct {
	resolver ProfileResolver
	repo     subjectStore
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(resolver ProfileResolver, repo subjectStore) *SubjectService {
	return &SubjectService{resolver: resolver, repo: repo}
}

// GetSubjects lists the subjects visible to actorID
func (s *SubjectService) GetSubjects(ctx context.Context, actorID int64) ([]models.Subject, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.Subject{}, err
	}
	return s.repo.GetAllSubjects(ctx, profile.Code, actorID)
}

// GetSubject returns a subject, or the default subject when code is the
// placeholder, the subject does not exist or the actor has no profile.
func (s *SubjectService) GetSubject(ctx context.Context, actorID int64, code string) (*models.Subject, error) {
	if code == models.NoSubject {
		return models.DefaultSubject(), nil
	}

	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return models.DefaultSubject(), nil
	}

	subject, err := s.repo.GetSubjectByCode(ctx, code)
	return notFoundAs(subject, err, models.DefaultSubject())
}

// CreateSubject inserts a subject and returns it as stored
func (s *SubjectService) CreateSubject(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	subject.Code = strings.TrimSpace(subject.Code)
	if subject.Code == "" || subject.Code == models.NoSubject {
		return nil, apperrors.NewValidationError("Sigla de asignatura inválida")
	}

	if err := s.repo.CreateSubject(ctx, subject); err != nil {
		return nil, err
	}

	logger.Info().Str("sigla", subject.Code).Msg("Subject created")
	return s.repo.GetSubjectByCode(ctx, subject.Code)
}

// UpdateSubject updates a subject and returns it as stored
func (s *SubjectService) UpdateSubject(ctx context.Context, subject *models.Subject) (*models.Subject, error) {
	rows, err := s.repo.UpdateSubject(ctx, subject)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.NewResourceNotFoundError("Asignatura no existe")
	}
	return s.repo.GetSubjectByCode(ctx, subject.Code)
}

// DeleteSubject deletes a subject on behalf of actorID
func (s *SubjectService) DeleteSubject(ctx context.Context, actorID int64, code string) (*models.DeleteResult, error) {
	key := models.Key("sigla", code)

	if refused, err := deletePermission(ctx, s.resolver, actorID, key); err != nil || refused != nil {
		return refused, err
	}

	rows, err := s.repo.DeleteSubject(ctx, code)
	return deleteOutcome(rows, err, MsgSubjectIntegrity, key)
}
