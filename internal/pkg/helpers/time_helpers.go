package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

// ISODate is the only date layout accepted and returned by the API.
const ISODate = "2006-01-02"

// MsgInvalidDate is returned for dates that are not valid YYYY-MM-DD.
const MsgInvalidDate = "La fecha ingresada no es válida"

// ParseISODate parses a YYYY-MM-DD date. Invalid dates yield a bad request
// error.
func ParseISODate(value string) (time.Time, error) {
	t, err := time.Parse(ISODate, value)
	if err != nil {
		return time.Time{}, apperrors.NewBadRequestError(MsgInvalidDate)
	}
	return t, nil
}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
