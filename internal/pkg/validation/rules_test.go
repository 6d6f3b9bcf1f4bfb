package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type dated struct {
	Date  string `validate:"required,isodate"`
	Sigla string `validate:"required,sigla"`
}

func TestRegisterRules(t *testing.T) {
	v := validator.New()
	if err := RegisterRules(v); err != nil {
		t.Fatalf("RegisterRules() error = %v", err)
	}

	tests := []struct {
		name  string
		in    dated
		valid bool
	}{
		{"valid", dated{"2026-04-14", "GAS101"}, true},
		{"dashed sigla", dated{"2026-04-14", "GAS-101"}, true},
		{"impossible date", dated{"2026-02-30", "GAS101"}, false},
		{"wrong layout", dated{"14/04/2026", "GAS101"}, false},
		{"sigla with space", dated{"2026-04-14", "GAS 101"}, false},
		{"sigla too long", dated{"2026-04-14", "ABCDEFGHIJKLMNOPQRSTU"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("Struct(%+v) error = %v, want valid=%v", tt.in, err, tt.valid)
			}
		})
	}
}
