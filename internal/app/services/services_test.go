package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func deleteJSON(t *testing.T, r *models.DeleteResult) string {
	t.Helper()
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	return string(b)
}

func TestDeleteOutcome(t *testing.T) {
	key := models.Key("id_producto", int64(7))

	tests := []struct {
		name    string
		rows    int64
		err     error
		want    string
		wantErr bool
	}{
		{
			name: "deleted",
			rows: 1,
			want: `{"id_producto":7,"eliminado":true,"msg_error":null}`,
		},
		{
			name: "missing row",
			want: `{"id_producto":7,"eliminado":false,"msg_error":"Registro no existe"}`,
		},
		{
			name: "referenced row",
			err:  fkViolation(),
			want: `{"id_producto":7,"eliminado":false,"msg_error":"bloqueado"}`,
		},
		{
			name:    "other failure",
			err:     uniqueViolation(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := deleteOutcome(tt.rows, tt.err, "bloqueado", key)
			if tt.wantErr {
				if err == nil {
					t.Fatal("deleteOutcome() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("deleteOutcome() error = %v", err)
			}
			if got := deleteJSON(t, res); got != tt.want {
				t.Errorf("deleteOutcome() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeletePermission(t *testing.T) {
	ctx := context.Background()
	resolver := newResolver()
	key := models.Key("sigla", "GAS101")

	res, err := deletePermission(ctx, resolver, noProfile, key)
	if err != nil || res == nil || *res.ErrorMessage != access.MsgNoProfile {
		t.Errorf("deletePermission(noProfile) = %+v, %v", res, err)
	}

	res, err = deletePermission(ctx, resolver, instructor, key)
	if err != nil || res == nil || *res.ErrorMessage != "Usuario con perfil Docente no tiene acceso a eliminar" {
		t.Errorf("deletePermission(instructor) = %+v, %v", res, err)
	}

	for _, actor := range []int64{itAdmin, programAdmin, warehouseLead} {
		if res, err := deletePermission(ctx, resolver, actor, key); res != nil || err != nil {
			t.Errorf("deletePermission(%d) = %+v, %v; want nil, nil", actor, res, err)
		}
	}
}

func TestRequireWriter(t *testing.T) {
	ctx := context.Background()
	resolver := newResolver()

	if _, err := requireWriter(ctx, resolver, instructor, "modificar"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("requireWriter(instructor) error = %v, want permission denied", err)
	}
	if _, err := requireWriter(ctx, resolver, noProfile, "modificar"); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Errorf("requireWriter(noProfile) error = %v, want permission denied", err)
	}
	if p, err := requireWriter(ctx, resolver, programAdmin, "modificar"); err != nil || p.Code != models.RoleProgramAdmin {
		t.Errorf("requireWriter(programAdmin) = %v, %v", p, err)
	}
}
