package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeCredentialStore) {
	t.Helper()
	hash, err := auth.HashPassword("secreto")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	store := &fakeCredentialStore{
		creds: map[string]*models.Credentials{
			"jperez": {ID: 4, Login: "jperez", PasswordHash: hash, Role: models.RoleInstructor},
		},
		updated: map[int64]string{},
	}
	return &AuthService{repo: store, tokens: fakeTokens{}}, store
}

func strPtr(s string) *string { return &s }

func TestLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		login     string
		password  *string
		wantAuth  bool
		wantLogin string
	}{
		{"valid", "jperez", strPtr("secreto"), true, "jperez"},
		{"login trimmed", "  jperez ", strPtr("secreto"), true, "jperez"},
		{"wrong password", "jperez", strPtr("otra"), false, "jperez"},
		{"unknown user", "nadie", strPtr("secreto"), false, "nadie"},
		{"missing password", "jperez", nil, false, "jperez"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, &models.Authentication{Login: tt.login, Password: tt.password})
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if res.Authenticated != tt.wantAuth {
				t.Errorf("Authenticated = %v, want %v", res.Authenticated, tt.wantAuth)
			}
			if res.Login != tt.wantLogin {
				t.Errorf("Login = %q, want %q", res.Login, tt.wantLogin)
			}
			if res.Password != nil {
				t.Error("password echoed back")
			}
			if tt.wantAuth {
				if res.UserID == nil || *res.UserID != 4 {
					t.Errorf("UserID = %v, want 4", res.UserID)
				}
				if res.Token == nil || *res.Token != "token-jperez" {
					t.Errorf("Token = %v", res.Token)
				}
			} else if res.Token != nil || res.UserID != nil {
				t.Error("failed login carries id or token")
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch", func(t *testing.T) {
		svc, store := newAuthFixture(t)
		_, err := svc.ChangePassword(ctx, &models.PasswordChange{
			UserID:          4,
			NewPassword:     strPtr("nueva"),
			ConfirmPassword: strPtr("otra"),
		})
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("ChangePassword() error = %v, want bad request", err)
		}
		if len(store.updated) != 0 {
			t.Error("password stored despite mismatch")
		}
	})

	t.Run("changed", func(t *testing.T) {
		svc, store := newAuthFixture(t)
		res, err := svc.ChangePassword(ctx, &models.PasswordChange{
			UserID:          4,
			NewPassword:     strPtr("nueva"),
			ConfirmPassword: strPtr("nueva"),
		})
		if err != nil {
			t.Fatalf("ChangePassword() error = %v", err)
		}
		if !res.Changed || res.NewPassword != nil || res.ConfirmPassword != nil {
			t.Errorf("ChangePassword() = %+v", res)
		}
		if !auth.CheckPassword(store.updated[4], "nueva") {
			t.Error("stored hash does not match the new password")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		res, err := svc.ChangePassword(ctx, &models.PasswordChange{
			UserID:          77,
			NewPassword:     strPtr("nueva"),
			ConfirmPassword: strPtr("nueva"),
		})
		if err != nil {
			t.Fatalf("ChangePassword() error = %v", err)
		}
		if res.Changed {
			t.Error("Changed = true for unknown user")
		}
	})
}
