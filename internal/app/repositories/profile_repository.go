package repositories

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// profileSelector: program admins see every profile except IT admin.
var profileSelector = access.Selector{
	Resource: "perfiles",
	Policy: access.Policy{
		models.RoleITAdmin:      {Scope: access.ScopeAll},
		models.RoleProgramAdmin: {Scope: access.ScopeAll, Extra: squirrel.NotEq{"p.cod_perfil": models.RoleITAdmin}},
		models.RoleInstructor:   {Scope: access.ScopeDenied},
	},
}

// ProfileRepository handles perfil lookups
type ProfileRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(conn db.DBTX) *ProfileRepository {
	return &ProfileRepository{db: conn, sb: statementBuilder()}
}

// FindProfileByUser returns the profile of a user, or nil when the user
// does not exist.
func (r *ProfileRepository) FindProfileByUser(ctx context.Context, userID int64) (*models.Profile, error) {
	q := r.sb.Select("p.cod_perfil", "p.nom_perfil", "p.descripcion").
		From("perfil p").
		Join("usuario u ON u.cod_perfil = p.cod_perfil").
		Where(squirrel.Eq{"u.id_usuario": userID})

	profile, err := selectOne[models.Profile](ctx, r.db, q, "get profile by user")
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return profile, err
}

// GetProgramOfUser returns the program a user belongs to. Users without a
// program get both fields null; unknown users get ErrNotFound.
func (r *ProfileRepository) GetProgramOfUser(ctx context.Context, userID int64) (*models.ProgramAffiliation, error) {
	q := r.sb.Select("u.cod_carrera", "c.nom_carrera").
		From("usuario u").
		LeftJoin("carrera c ON c.cod_carrera = u.cod_carrera").
		Where(squirrel.Eq{"u.id_usuario": userID})

	return selectOne[models.ProgramAffiliation](ctx, r.db, q, "get program of user")
}

// GetAllProfiles lists the profiles visible to role.
func (r *ProfileRepository) GetAllProfiles(ctx context.Context, role models.Role, actorID int64) ([]models.Profile, error) {
	q := r.sb.Select("p.cod_perfil", "p.nom_perfil", "p.descripcion").
		From("perfil p").
		OrderBy("p.cod_perfil ASC")

	q, allowed, err := profileSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.Profile{}, err
	}
	return selectAll[models.Profile](ctx, r.db, q, "get all profiles")
}
