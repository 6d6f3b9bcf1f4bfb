package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// MsgUserIntegrity is reported when a user still has schedules or records.
const MsgUserIntegrity = "Usuario no se puede eliminar por integridad de datos"

type userStore interface {
	GetUserIDByLogin(ctx context.Context, login string) (int64, error)
	GetAllUsers(ctx context.Context, role models.Role, actorID int64) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User, passwordHash string) (int64, error)
	UpdateUser(ctx context.Context, u *models.User, passwordHash *string) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// UserService handles user management
type UserService struct {
	resolver ProfileResolver
	repo     userStore
}

// NewUserService creates a new UserService
func NewUserService(resolver ProfileResolver, repo userStore) *UserService {
	return &UserService{resolver: resolver, repo: repo}
}

// GetUserIDByLogin returns the id of login
func (s *UserService) GetUserIDByLogin(ctx context.Context, login string) (int64, error) {
	id, err := s.repo.GetUserIDByLogin(ctx, login)
	if apperrors.Is(err, apperrors.ErrResourceNotFound) {
		return 0, apperrors.NewResourceNotFoundError(fmt.Sprintf("Usuario %s no existe", strings.TrimSpace(login)))
	}
	return id, err
}

// GetUsers lists the users visible to actorID
func (s *UserService) GetUsers(ctx context.Context, actorID int64) ([]models.User, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.User{}, err
	}
	return s.repo.GetAllUsers(ctx, profile.Code, actorID)
}

// GetUser returns a user. Instructors only see themselves; everything else
// they ask for, like unknown ids, yields an empty user.
func (s *UserService) GetUser(ctx context.Context, actorID, id int64) (*models.User, error) {
	if id == 0 {
		return &models.User{}, nil
	}

	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil || (profile.Code == models.RoleInstructor && id != actorID) {
		return &models.User{}, nil
	}

	user, err := s.repo.GetUserByID(ctx, id)
	return notFoundAs(user, err, &models.User{})
}

// CreateUser stores a new user with a hashed password and returns it
// without the password
func (s *UserService) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Password == nil || *u.Password == "" {
		return nil, apperrors.NewValidationError("La contraseña es obligatoria")
	}
	u.ProgramCode = models.ProgramOrNil(u.ProgramCode)
	if err := models.ValidateAffiliation(u.Role, u.ProgramCode); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(*u.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	id, err := s.repo.CreateUser(ctx, u, hash)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", id).Str("login", u.Login).Msg("User created")
	return s.repo.GetUserByID(ctx, id)
}

// UpdateUser updates a user on behalf of actorID. The password is re-hashed
// when one is supplied and kept otherwise.
func (s *UserService) UpdateUser(ctx context.Context, actorID int64, u *models.User) (*models.User, error) {
	if _, err := requireWriter(ctx, s.resolver, actorID, "modificar"); err != nil {
		return nil, err
	}
	u.ProgramCode = models.ProgramOrNil(u.ProgramCode)
	if err := models.ValidateAffiliation(u.Role, u.ProgramCode); err != nil {
		return nil, err
	}

	var hash *string
	if u.Password != nil && *u.Password != "" {
		h, err := auth.HashPassword(*u.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		hash = &h
	}

	rows, err := s.repo.UpdateUser(ctx, u, hash)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.NewResourceNotFoundError("Usuario no existe")
	}
	return s.repo.GetUserByID(ctx, u.ID)
}

// DeleteUser deletes a user on behalf of actorID
func (s *UserService) DeleteUser(ctx context.Context, actorID, id int64) (*models.DeleteResult, error) {
	key := models.Key("id_usuario", id)

	if refused, err := deletePermission(ctx, s.resolver, actorID, key); err != nil || refused != nil {
		return refused, err
	}

	rows, err := s.repo.DeleteUser(ctx, id)
	return deleteOutcome(rows, err, MsgUserIntegrity, key)
}
