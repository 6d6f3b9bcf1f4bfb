package services

import (
	"context"

	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

type profileStore interface {
	GetProgramOfUser(ctx context.Context, userID int64) (*models.ProgramAffiliation, error)
	GetAllProfiles(ctx context.Context, role models.Role, actorID int64) ([]models.Profile, error)
}

type programStore interface {
	GetAllPrograms(ctx context.Context, role models.Role, actorID int64) ([]models.Program, error)
}

// ProfileService answers profile and program lookups
type ProfileService struct {
	resolver ProfileResolver
	profiles profileStore
	programs programStore
}

// NewProfileService creates a new ProfileService
func NewProfileService(resolver ProfileResolver, profiles profileStore, programs programStore) *ProfileService {
	return &ProfileService{resolver: resolver, profiles: profiles, programs: programs}
}

// GetProfile returns the profile of actorID
func (s *ProfileService) GetProfile(ctx context.Context, actorID int64) (*models.Profile, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewResourceNotFoundError(access.MsgNoProfile)
	}
	return profile, nil
}

// GetProgram returns the program of actorID. Unknown users and users
// without a program get an affiliation with both fields null.
func (s *ProfileService) GetProgram(ctx context.Context, actorID int64) (*models.ProgramAffiliation, error) {
	program, err := s.profiles.GetProgramOfUser(ctx, actorID)
	return notFoundAs(program, err, &models.ProgramAffiliation{})
}

// GetProfiles lists the profiles actorID may assign
func (s *ProfileService) GetProfiles(ctx context.Context, actorID int64) ([]models.Profile, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.Profile{}, err
	}
	return s.profiles.GetAllProfiles(ctx, profile.Code, actorID)
}

// GetPrograms lists the programs visible to actorID
func (s *ProfileService) GetPrograms(ctx context.Context, actorID int64) ([]models.Program, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.Program{}, err
	}
	return s.programs.GetAllPrograms(ctx, profile.Code, actorID)
}
