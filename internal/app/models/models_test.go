package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

func TestAmountScan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Amount
		wantErr bool
	}{
		{name: "null is zero", src: nil, want: 0},
		{name: "int64", src: int64(125000), want: 125000},
		{name: "int32", src: int32(12), want: 12},
		{name: "float", src: float64(42), want: 42},
		{name: "numeric text", src: "3600", want: 3600},
		{name: "bytes", src: []byte("18"), want: 18},
		{name: "garbage", src: "abc", wantErr: true},
		{name: "unsupported", src: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Amount(99)
			err := a.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && a != tt.want {
				t.Errorf("Scan() = %d, want %d", a, tt.want)
			}
		})
	}
}

func TestDeleteResultJSON(t *testing.T) {
	tests := []struct {
		name   string
		result *DeleteResult
		want   string
	}{
		{
			name:   "blocked by integrity",
			result: NotDeleted("Producto no se puede eliminar por integridad de datos", Key("id_producto", int64(7))),
			want:   `{"id_producto":7,"eliminado":false,"msg_error":"Producto no se puede eliminar por integridad de datos"}`,
		},
		{
			name:   "deleted composite key",
			result: Deleted(Key("id_taller", int64(3)), Key("id_producto", int64(7)), Key("cod_agrupador", int32(1))),
			want:   `{"id_taller":3,"id_producto":7,"cod_agrupador":1,"eliminado":true,"msg_error":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.result)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateAffiliation(t *testing.T) {
	program := int32(10)
	zero := int32(0)

	tests := []struct {
		name    string
		role    Role
		program *int32
		wantErr bool
	}{
		{"instructor with program", RoleInstructor, &program, false},
		{"instructor without program", RoleInstructor, nil, true},
		{"program admin zero program", RoleProgramAdmin, &zero, true},
		{"it admin without program", RoleITAdmin, nil, false},
		{"it admin with program", RoleITAdmin, &program, true},
		{"warehouse lead with program", RoleWarehouseLead, &program, true},
		{"unknown role", Role(9), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAffiliation(tt.role, tt.program)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAffiliation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("error %v does not wrap ErrValidationFailed", err)
			}
		})
	}
}

func TestProgramOrNil(t *testing.T) {
	zero := int32(0)
	program := int32(10)

	if got := ProgramOrNil(nil); got != nil {
		t.Errorf("ProgramOrNil(nil) = %v, want nil", *got)
	}
	if got := ProgramOrNil(&zero); got != nil {
		t.Errorf("ProgramOrNil(0) = %v, want nil", *got)
	}
	if got := ProgramOrNil(&program); got == nil || *got != 10 {
		t.Errorf("ProgramOrNil(10) = %v, want 10", got)
	}
}

func TestUserPasswordNeverSerialised(t *testing.T) {
	raw, err := json.Marshal(User{Login: "jperez", Password: nil})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v, ok := out["hash_password"]; !ok || v != nil {
		t.Errorf("hash_password = %v, want explicit null", v)
	}
}
