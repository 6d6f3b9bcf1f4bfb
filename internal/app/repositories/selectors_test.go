package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
)

func TestAdministrativeListingsDenyInstructors(t *testing.T) {
	selectors := map[string]access.Selector{
		"subjects": subjectSelector,
		"products": productSelector,
		"users":    userSelector,
		"profiles": profileSelector,
		"programs": programSelector,
		"sections": sectionSelector,
	}

	for name, sel := range selectors {
		t.Run(name, func(t *testing.T) {
			_, allowed, err := sel.Apply(squirrel.Select("1"), models.RoleInstructor, 4)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if allowed {
				t.Error("Apply() allowed an instructor listing, want empty result without query")
			}
		})
	}
}

func TestSubjectListingScopes(t *testing.T) {
	repo := NewSubjectRepository(nil)

	tests := []struct {
		name        string
		role        models.Role
		wantAllowed bool
		wantArgs    int
	}{
		{"it admin", models.RoleITAdmin, true, 0},
		{"warehouse lead", models.RoleWarehouseLead, true, 0},
		{"program admin", models.RoleProgramAdmin, true, 1},
		{"instructor", models.RoleInstructor, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, allowed, err := subjectSelector.Apply(repo.subjectQuery(), tt.role, 4)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if allowed != tt.wantAllowed {
				t.Fatalf("Apply() allowed = %v, want %v", allowed, tt.wantAllowed)
			}
			if !allowed {
				return
			}
			_, args, err := q.ToSql()
			if err != nil {
				t.Fatalf("ToSql() error = %v", err)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("args = %v, want %d bound values", args, tt.wantArgs)
			}
		})
	}
}
