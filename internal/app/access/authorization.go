package access

import (
	"context"
	"fmt"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// Messages returned when a role may not perform a write.
const (
	MsgNoPrivileges = "Usuario no tiene privilegios para ejecutar la acción"
	MsgNoProfile    = "Usuario sin perfil asignado"
)

// ProfileFinder loads the profile attached to a user. It returns nil, nil
// when the user does not exist or has no profile.
type ProfileFinder interface {
	FindProfileByUser(ctx context.Context, userID int64) (*models.Profile, error)
}

// Resolver maps an actor id to its profile. It re-reads storage on every
// call so role changes take effect on the next request.
type Resolver struct {
	finder ProfileFinder
}

// NewResolver creates a new Resolver
func NewResolver(finder ProfileFinder) *Resolver {
	return &Resolver{finder: finder}
}

// Resolve returns the actor's profile, or nil when the actor has none.
// A missing profile is not an error: callers answer with an empty or
// default result.
func (r *Resolver) Resolve(ctx context.Context, actorID int64) (*models.Profile, error) {
	if actorID <= 0 {
		return nil, nil
	}

	profile, err := r.finder.FindProfileByUser(ctx, actorID)
	if err != nil {
		logger.Error().Err(err).Int64("actorID", actorID).Msg("Error resolving actor profile")
		return nil, fmt.Errorf("error resolving profile of user %d: %w", actorID, err)
	}

	if profile == nil {
		logger.Debug().Int64("actorID", actorID).Msg("Actor has no profile")
	}
	return profile, nil
}

// DenyMessage returns the message shown when role may not delete the
// given resource. The resource name is in the API's language, e.g.
// "eliminar".
func DenyMessage(role models.Role, action string) string {
	switch role {
	case models.RoleInstructor:
		return "Usuario con perfil Docente no tiene acceso a " + action
	case models.RoleWarehouseLead:
		return "Usuario con perfil Jefe de bodega no tiene acceso a " + action
	default:
		return MsgNoPrivileges
	}
}
