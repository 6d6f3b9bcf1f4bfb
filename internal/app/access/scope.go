package access

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

// Scope is the row visibility granted to a role on a listing.
type Scope int

const (
	// ScopeDenied yields an empty result without querying.
	ScopeDenied Scope = iota
	// ScopeAll applies no row filter.
	ScopeAll
	// ScopeProgram keeps rows of the actor's own program.
	ScopeProgram
	// ScopeSelf keeps rows assigned to the actor.
	ScopeSelf
)

func (s Scope) String() string {
	switch s {
	case ScopeDenied:
		return "denied"
	case ScopeAll:
		return "all"
	case ScopeProgram:
		return "program"
	case ScopeSelf:
		return "self"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Rule is the access granted to one role. Extra, when set, is ANDed to the
// scope predicate.
type Rule struct {
	Scope Scope
	Extra squirrel.Sqlizer
}

// Policy declares the rule of each role for one resource. Roles absent
// from the policy are unsupported for that resource.
type Policy map[models.Role]Rule

// Selector turns a role into the WHERE predicates of a listing query.
type Selector struct {
	// Resource names the listing in errors and logs.
	Resource string
	Policy   Policy
	// ProgramColumn is compared with the actor's program for ScopeProgram.
	ProgramColumn string
	// ActorColumn is compared with the actor id for ScopeSelf.
	ActorColumn string
}

// Rule returns the rule declared for role, or ErrUnsupportedRole.
func (s Selector) Rule(role models.Role) (Rule, error) {
	rule, ok := s.Policy[role]
	if !ok {
		return Rule{}, apperrors.NewCustomError(apperrors.ErrUnsupportedRole,
			fmt.Sprintf("Perfil %s no soportado para %s", role, s.Resource))
	}
	return rule, nil
}

// Apply adds the predicates of role's rule to q. It reports false when the
// role is denied, in which case the caller must not run q. Every value is
// bound as a parameter.
func (s Selector) Apply(q squirrel.SelectBuilder, role models.Role, actorID int64) (squirrel.SelectBuilder, bool, error) {
	rule, err := s.Rule(role)
	if err != nil {
		return q, false, err
	}

	switch rule.Scope {
	case ScopeDenied:
		return q, false, nil
	case ScopeAll:
	case ScopeProgram:
		if s.ProgramColumn == "" {
			return q, false, fmt.Errorf("selector %s: program scope without program column", s.Resource)
		}
		q = q.Where(ProgramOf(s.ProgramColumn, actorID))
	case ScopeSelf:
		if s.ActorColumn == "" {
			return q, false, fmt.Errorf("selector %s: self scope without actor column", s.Resource)
		}
		q = q.Where(squirrel.Eq{s.ActorColumn: actorID})
	default:
		return q, false, fmt.Errorf("selector %s: unknown scope %s", s.Resource, rule.Scope)
	}

	if rule.Extra != nil {
		q = q.Where(rule.Extra)
	}
	return q, true, nil
}

// ProgramOf matches column against the program of the given user.
func ProgramOf(column string, userID int64) squirrel.Sqlizer {
	return squirrel.Expr(column+" = (SELECT u.cod_carrera FROM usuario u WHERE u.id_usuario = ?)", userID)
}
