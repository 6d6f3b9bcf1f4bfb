package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// userSelector: program admins see their program's users except IT admins.
var userSelector = access.Selector{
	Resource: "usuarios",
	Policy: access.Policy{
		models.RoleITAdmin:      {Scope: access.ScopeAll},
		models.RoleProgramAdmin: {Scope: access.ScopeProgram, Extra: squirrel.NotEq{"u.cod_perfil": models.RoleITAdmin}},
		models.RoleInstructor:   {Scope: access.ScopeDenied},
	},
	ProgramColumn: "u.cod_carrera",
}

// UserRepository handles usuario database operations
type UserRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{db: conn, sb: statementBuilder()}
}

// userQuery never selects hash_password.
func (r *UserRepository) userQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"u.id_usuario",
		"u.login",
		"u.primer_apellido",
		"u.segundo_apellido",
		"u.nom",
		"u.nom_preferido",
		"u.cod_perfil",
		"u.cod_carrera",
		"p.nom_perfil",
		"c.nom_carrera",
	).
		From("usuario u").
		Join("perfil p ON p.cod_perfil = u.cod_perfil").
		LeftJoin("carrera c ON c.cod_carrera = u.cod_carrera")
}

type userID struct {
	ID int64 `db:"id_usuario"`
}

// GetUserIDByLogin returns the id of the user with the given login.
// Surrounding whitespace in login is ignored.
func (r *UserRepository) GetUserIDByLogin(ctx context.Context, login string) (int64, error) {
	q := r.sb.Select("id_usuario").
		From("usuario").
		Where(squirrel.Eq{"login": strings.TrimSpace(login)})

	row, err := selectOne[userID](ctx, r.db, q, "get user ID by login")
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// GetAllUsers lists the users visible to role.
func (r *UserRepository) GetAllUsers(ctx context.Context, role models.Role, actorID int64) ([]models.User, error) {
	q := r.userQuery().OrderBy(
		"u.cod_carrera ASC",
		"u.cod_perfil ASC",
		"u.primer_apellido ASC",
		"u.segundo_apellido ASC",
		"u.nom_preferido ASC",
		"u.id_usuario ASC",
	)

	q, allowed, err := userSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.User{}, err
	}
	return selectAll[models.User](ctx, r.db, q, "get all users")
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	q := r.userQuery().Where(squirrel.Eq{"u.id_usuario": id})
	return selectOne[models.User](ctx, r.db, q, "get user by ID")
}

// GetCredentialsByLogin returns the stored password hash of a login
func (r *UserRepository) GetCredentialsByLogin(ctx context.Context, login string) (*models.Credentials, error) {
	q := r.sb.Select("id_usuario", "login", "hash_password", "cod_perfil").
		From("usuario").
		Where(squirrel.Eq{"login": strings.TrimSpace(login)})

	return selectOne[models.Credentials](ctx, r.db, q, "get credentials by login")
}

// CreateUser inserts a user with an already hashed password and returns
// the generated ID
func (r *UserRepository) CreateUser(ctx context.Context, u *models.User, passwordHash string) (int64, error) {
	q := r.sb.Insert("usuario").
		Columns("login", "hash_password", "primer_apellido", "segundo_apellido",
			"nom", "nom_preferido", "cod_perfil", "cod_carrera").
		Values(strings.TrimSpace(u.Login), passwordHash, u.FirstSurname, u.SecondSurname,
			u.GivenName, u.PreferredName, u.Role, u.ProgramCode).
		Suffix("RETURNING id_usuario")

	var id int64
	if err := insertReturning(ctx, r.db, q, "create user", &id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateUser updates a user. The stored hash is kept when passwordHash is
// nil.
func (r *UserRepository) UpdateUser(ctx context.Context, u *models.User, passwordHash *string) (int64, error) {
	q := r.sb.Update("usuario").
		Set("login", strings.TrimSpace(u.Login)).
		Set("hash_password", squirrel.Expr("COALESCE(?, hash_password)", passwordHash)).
		Set("primer_apellido", u.FirstSurname).
		Set("segundo_apellido", u.SecondSurname).
		Set("nom", u.GivenName).
		Set("nom_preferido", u.PreferredName).
		Set("cod_perfil", u.Role).
		Set("cod_carrera", u.ProgramCode).
		Where(squirrel.Eq{"id_usuario": u.ID})

	return execute(ctx, r.db, q, "update user")
}

// UpdatePassword replaces the password hash of a user
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	q := r.sb.Update("usuario").
		Set("hash_password", passwordHash).
		Where(squirrel.Eq{"id_usuario": id})

	return execute(ctx, r.db, q, "update password")
}

// DeleteUser deletes a user and returns the number of rows removed
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) (int64, error) {
	q := r.sb.Delete("usuario").Where(squirrel.Eq{"id_usuario": id})
	return execute(ctx, r.db, q, "delete user")
}
