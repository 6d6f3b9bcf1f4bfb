package seed

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	appModels "github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminStore struct {
	existing  map[string]int64
	lookupErr error
	createErr error
	created   []*appModels.User
	hashes    []string
}

func (f *fakeAdminStore) GetUserIDByLogin(_ context.Context, login string) (int64, error) {
	if f.lookupErr != nil {
		return 0, f.lookupErr
	}
	if id, ok := f.existing[login]; ok {
		return id, nil
	}
	return 0, apperrors.ErrResourceNotFound
}

func (f *fakeAdminStore) CreateUser(_ context.Context, u *appModels.User, hash string) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, u)
	f.hashes = append(f.hashes, hash)
	return 1, nil
}

func TestCreateDefaultData(t *testing.T) {
	auth.BcryptCost = bcrypt.MinCost
	lgr := zerolog.New(io.Discard)
	ctx := context.Background()

	t.Run("creates missing admin", func(t *testing.T) {
		store := &fakeAdminStore{}
		if err := CreateDefaultData(ctx, store, "admin", "s3cret", lgr); err != nil {
			t.Fatalf("CreateDefaultData() error = %v", err)
		}
		if len(store.created) != 1 {
			t.Fatalf("created %d users, want 1", len(store.created))
		}
		if store.created[0].Role != appModels.RoleITAdmin {
			t.Errorf("role = %v, want IT admin", store.created[0].Role)
		}
		if !auth.CheckPassword(store.hashes[0], "s3cret") {
			t.Error("stored hash does not match the password")
		}
	})

	t.Run("keeps existing admin", func(t *testing.T) {
		store := &fakeAdminStore{existing: map[string]int64{"admin": 1}}
		if err := CreateDefaultData(ctx, store, "admin", "s3cret", lgr); err != nil {
			t.Fatalf("CreateDefaultData() error = %v", err)
		}
		if len(store.created) != 0 {
			t.Errorf("created %d users, want 0", len(store.created))
		}
	})

	t.Run("disabled without password", func(t *testing.T) {
		store := &fakeAdminStore{lookupErr: errors.New("must not be called")}
		if err := CreateDefaultData(ctx, store, "admin", "", lgr); err != nil {
			t.Fatalf("CreateDefaultData() error = %v", err)
		}
	})

	t.Run("concurrent create", func(t *testing.T) {
		store := &fakeAdminStore{createErr: dberrors.Classify(&pgconn.PgError{Code: "23505"})}
		if err := CreateDefaultData(ctx, store, "admin", "s3cret", lgr); err != nil {
			t.Fatalf("CreateDefaultData() error = %v", err)
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		store := &fakeAdminStore{lookupErr: errors.New("boom")}
		if err := CreateDefaultData(ctx, store, "admin", "s3cret", lgr); err == nil {
			t.Error("CreateDefaultData() error = nil, want lookup error")
		}
	})
}
