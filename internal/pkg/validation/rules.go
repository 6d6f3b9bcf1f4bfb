// Package validation holds the custom struct validation rules used by
// request bodies.
package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// Rule tags usable in binding tags.
const (
	TagISODate = "isodate"
	TagSigla   = "sigla"
)

// ISODateLayout is the only accepted date layout (YYYY-MM-DD).
const ISODateLayout = "2006-01-02"

// SiglaPattern matches subject codes: letters, digits, dash and underscore.
var SiglaPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,20}$`)

// IsISODate reports whether value is a valid calendar date in YYYY-MM-DD.
func IsISODate(value string) bool {
	_, err := time.Parse(ISODateLayout, value)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsISODate(fl.Field().String())
}

func validateSigla(fl validator.FieldLevel) bool {
	return SiglaPattern.MatchString(fl.Field().String())
}

// RegisterRules adds the custom rules to v.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation(TagISODate, validateISODate); err != nil {
		return err
	}
	return v.RegisterValidation(TagSigla, validateSigla)
}
