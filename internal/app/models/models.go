package models

import (
	"fmt"
	"strconv"

	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

// Role is the access profile assigned to every user (perfil.cod_perfil).
type Role int32

const (
	RoleITAdmin       Role = 0 // Administrador TI
	RoleProgramAdmin  Role = 1 // Administrador de carrera
	RoleInstructor    Role = 2 // Docente
	RoleWarehouseLead Role = 3 // Jefe de bodega
)

// String returns the role's display name.
func (r Role) String() string {
	switch r {
	case RoleITAdmin:
		return "IT_ADMIN"
	case RoleProgramAdmin:
		return "PROGRAM_ADMIN"
	case RoleInstructor:
		return "INSTRUCTOR"
	case RoleWarehouseLead:
		return "WAREHOUSE_LEAD"
	default:
		return "ROLE_" + strconv.Itoa(int(r))
	}
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	return r >= RoleITAdmin && r <= RoleWarehouseLead
}

// RequiresProgram reports whether users holding r must belong to a program.
// Program admins and instructors do; IT admins and warehouse leads must not.
func (r Role) RequiresProgram() bool {
	return r == RoleProgramAdmin || r == RoleInstructor
}

// Messages for the role/program affiliation rule.
const (
	MsgProgramRequired  = "Los usuarios de perfil docente o administrador de carrera deben tener una carrera definida"
	MsgProgramForbidden = "Los usuarios de perfil administrador TI o jefe de bodega no deben tener una carrera definida"
)

// ValidateAffiliation enforces that program is set exactly when the role
// requires one.
func ValidateAffiliation(role Role, program *int32) error {
	if !role.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("Perfil %d no existe", role))
	}

	hasProgram := program != nil && *program != 0
	switch {
	case role.RequiresProgram() && !hasProgram:
		return apperrors.NewValidationError(MsgProgramRequired)
	case !role.RequiresProgram() && hasProgram:
		return apperrors.NewValidationError(MsgProgramForbidden)
	}
	return nil
}

// ProgramOrNil maps the 0 program code sent for "no program" to nil so
// the user row stores NULL.
func ProgramOrNil(program *int32) *int32 {
	if program == nil || *program == 0 {
		return nil
	}
	return program
}

// Amount is an integer money or count aggregate. SQL NULL scans as 0, so
// SUM over an empty join reads as zero instead of failing the row.
type Amount int64

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = 0
	case int64:
		*a = Amount(v)
	case int32:
		*a = Amount(v)
	case int16:
		*a = Amount(v)
	case float64:
		*a = Amount(v)
	case string:
		return a.parse(v)
	case []byte:
		return a.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Amount", src)
	}
	return nil
}

func (a *Amount) parse(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("cannot scan %q into Amount: %w", s, err)
	}
	*a = Amount(f)
	return nil
}
