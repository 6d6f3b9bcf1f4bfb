package services

import (
	"context"
	"testing"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/app/repositories"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 10}
}

func (f *fakeUserStore) GetUserIDByLogin(_ context.Context, login string) (int64, error) {
	for id, u := range f.users {
		if u.Login == login {
			return id, nil
		}
	}
	return 0, repositories.ErrNotFound
}

func (f *fakeUserStore) GetAllUsers(_ context.Context, _ models.Role, _ int64) ([]models.User, error) {
	return []models.User{}, nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, u *models.User, _ string) (int64, error) {
	f.nextID++
	stored := *u
	stored.ID = f.nextID
	f.users[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeUserStore) UpdateUser(_ context.Context, u *models.User, _ *string) (int64, error) {
	if _, ok := f.users[u.ID]; !ok {
		return 0, nil
	}
	stored := *u
	f.users[u.ID] = &stored
	return 1, nil
}

func (f *fakeUserStore) DeleteUser(_ context.Context, id int64) (int64, error) {
	if _, ok := f.users[id]; !ok {
		return 0, nil
	}
	delete(f.users, id)
	return 1, nil
}

func TestZeroProgramStoredAsNull(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(newResolver(), store)

	password := "secret"
	zero := int32(0)
	created, err := svc.CreateUser(ctx, &models.User{
		Login:       "bodega",
		Password:    &password,
		Role:        models.RoleWarehouseLead,
		ProgramCode: &zero,
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if created.ProgramCode != nil {
		t.Errorf("created cod_carrera = %d, want nil", *created.ProgramCode)
	}

	zeroAgain := int32(0)
	updated, err := svc.UpdateUser(ctx, itAdmin, &models.User{
		ID:          created.ID,
		Login:       "bodega",
		Role:        models.RoleITAdmin,
		ProgramCode: &zeroAgain,
	})
	if err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}
	if updated.ProgramCode != nil {
		t.Errorf("updated cod_carrera = %d, want nil", *updated.ProgramCode)
	}
}

func TestCreateUserKeepsProgram(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(newResolver(), store)

	password := "secret"
	program := int32(10)
	created, err := svc.CreateUser(context.Background(), &models.User{
		Login:       "jperez",
		Password:    &password,
		Role:        models.RoleInstructor,
		ProgramCode: &program,
	})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if created.ProgramCode == nil || *created.ProgramCode != 10 {
		t.Errorf("cod_carrera = %v, want 10", created.ProgramCode)
	}
}
