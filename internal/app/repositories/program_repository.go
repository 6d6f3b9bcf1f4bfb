package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

var programSelector = access.Selector{
	Resource: "carreras",
	Policy: access.Policy{
		models.RoleITAdmin:      {Scope: access.ScopeAll},
		models.RoleProgramAdmin: {Scope: access.ScopeProgram},
		models.RoleInstructor:   {Scope: access.ScopeDenied},
	},
	ProgramColumn: "c.cod_carrera",
}

// ProgramRepository handles carrera database operations
type ProgramRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(conn db.DBTX) *ProgramRepository {
	return &ProgramRepository{db: conn, sb: statementBuilder()}
}

// GetAllPrograms lists the programs visible to role.
func (r *ProgramRepository) GetAllPrograms(ctx context.Context, role models.Role, actorID int64) ([]models.Program, error) {
	q := r.sb.Select("c.cod_carrera", "c.nom_carrera", "c.nom_carrera_abrev").
		From("carrera c").
		OrderBy("c.cod_carrera ASC")

	q, allowed, err := programSelector.Apply(q, role, actorID)
	if err != nil || !allowed {
		return []models.Program{}, err
	}
	return selectAll[models.Program](ctx, r.db, q, "get all programs")
}
