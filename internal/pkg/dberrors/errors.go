package dberrors

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

// PostgreSQL SQLSTATE codes the application reacts to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	classConnectionFailure  = "08"
)

// User-facing messages attached to classified errors.
const (
	MsgConnectivity = "Error al conectar a la base de datos"
	MsgTimeout      = "Tiempo de espera agotado al consultar la base de datos"
	MsgQuery        = "Error en la consulta a la base de datos"
	MsgDuplicate    = "Error al insertar registro existente"
	MsgIntegrity    = "Operación rechazada por integridad de datos"
)

// DetailKey is the details key holding the driver's own error text.
const DetailKey = "db_error"

// IsDuplicateConstraintError checks if the error is a unique violation on
// the given constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsUniqueViolation reports a unique_violation (23505) anywhere in err's chain.
func IsUniqueViolation(err error) bool {
	return hasCode(err, CodeUniqueViolation) || errors.Is(err, apperrors.ErrConflict)
}

// IsForeignKeyViolation reports a foreign_key_violation (23503) anywhere in
// err's chain.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, CodeForeignKeyViolation) || errors.Is(err, apperrors.ErrIntegrityViolation)
}

// IsTimeout reports whether err was caused by an expired deadline. A
// cancelled context means the client went away and is not a timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err)
}

// IsConnectivity reports whether err means the server could not be reached
// or the connection was lost.
func IsConnectivity(err error) bool {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnectionFailure
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// Classify maps a raw driver error onto the application's error taxonomy.
// The result wraps one of the apperrors sentinels and carries the driver
// text under DetailKey. Errors that are not database errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if alreadyClassified(err) {
		return err
	}

	details := map[string]any{DetailKey: err.Error()}

	switch {
	case IsTimeout(err):
		return wrap(apperrors.ErrTimeout, MsgTimeout, details, err)
	case IsConnectivity(err):
		return wrap(apperrors.ErrConnectivity, MsgConnectivity, details, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	details[DetailKey] = pgErr.Message
	if pgErr.Detail != "" {
		details["db_detail"] = pgErr.Detail
	}

	switch pgErr.Code {
	case CodeUniqueViolation:
		return wrap(apperrors.ErrConflict, MsgDuplicate, details, err)
	case CodeForeignKeyViolation:
		return wrap(apperrors.ErrIntegrityViolation, MsgIntegrity, details, err)
	default:
		return wrap(apperrors.ErrQueryFailed, MsgQuery, details, err)
	}
}

func alreadyClassified(err error) bool {
	return apperrors.Is(err, apperrors.ErrTimeout,
		apperrors.ErrConnectivity,
		apperrors.ErrConflict,
		apperrors.ErrIntegrityViolation,
		apperrors.ErrQueryFailed,
	)
}

// classifiedError keeps both the taxonomy sentinel and the driver error
// reachable through errors.Is / errors.As.
type classifiedError struct {
	*apperrors.CustomError
	cause error
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.CustomError, e.cause}
}

func wrap(sentinel error, msg string, details map[string]any, cause error) error {
	return &classifiedError{
		CustomError: apperrors.NewCustomError(sentinel, msg).WithDetails(details),
		cause:       cause,
	}
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
