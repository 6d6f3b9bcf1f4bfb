package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	appModels "github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
)

// AdminStore is the part of the user repository the seed needs
type AdminStore interface {
	GetUserIDByLogin(ctx context.Context, login string) (int64, error)
	CreateUser(ctx context.Context, u *appModels.User, passwordHash string) (int64, error)
}

// CreateDefaultData creates the initial IT administrator when no user with
// that login exists. An empty password disables the seed.
func CreateDefaultData(ctx context.Context, users AdminStore, login, password string, lgr zerolog.Logger) error {
	if login == "" || password == "" {
		lgr.Info().Msg("Admin seed disabled, no credentials configured")
		return nil
	}

	id, err := users.GetUserIDByLogin(ctx, login)
	switch {
	case err == nil:
		lgr.Debug().Int64("userID", id).Str("login", login).Msg("Admin user already exists")
		return nil
	case !errors.Is(err, apperrors.ErrResourceNotFound):
		return fmt.Errorf("error checking admin user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &appModels.User{
		Login:        login,
		FirstSurname: "Administrador",
		GivenName:    "Administrador",
		Role:         appModels.RoleITAdmin,
	}
	id, err = users.CreateUser(ctx, admin, hash)
	if err != nil {
		// Another instance may have created it concurrently.
		if dberrors.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("error creating admin user: %w", err)
	}

	lgr.Info().Int64("userID", id).Str("login", login).Msg("Admin user created")
	return nil
}
