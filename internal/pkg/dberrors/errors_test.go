package dberrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: CodeUniqueViolation, Message: "duplicate key value violates unique constraint \"asign_pkey\""},
			sentinel: apperrors.ErrConflict,
			message:  MsgDuplicate,
		},
		{
			name:     "foreign key violation",
			err:      fmt.Errorf("delete producto: %w", &pgconn.PgError{Code: CodeForeignKeyViolation, Message: "update or delete on table \"producto\" violates foreign key constraint"}),
			sentinel: apperrors.ErrIntegrityViolation,
			message:  MsgIntegrity,
		},
		{
			name:     "syntax error",
			err:      &pgconn.PgError{Code: "42601", Message: "syntax error at or near \"FORM\""},
			sentinel: apperrors.ErrQueryFailed,
			message:  MsgQuery,
		},
		{
			name:     "connection class",
			err:      &pgconn.PgError{Code: "08006", Message: "connection failure"},
			sentinel: apperrors.ErrConnectivity,
			message:  MsgConnectivity,
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("query: %w", context.DeadlineExceeded),
			sentinel: apperrors.ErrTimeout,
			message:  MsgTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if !errors.Is(got, tt.sentinel) {
				t.Fatalf("Classify() = %v, want wrapping %v", got, tt.sentinel)
			}
			if !errors.Is(got, tt.err) && !errors.Is(got, errors.Unwrap(tt.err)) {
				t.Errorf("Classify() lost the original error")
			}
			if msg := apperrors.Message(got, ""); msg != tt.message {
				t.Errorf("Message = %q, want %q", msg, tt.message)
			}
			if apperrors.Details(got)[DetailKey] == "" {
				t.Errorf("Details[%q] is empty", DetailKey)
			}
		})
	}
}

func TestClassify_PassThrough(t *testing.T) {
	if Classify(nil) != nil {
		t.Error("Classify(nil) != nil")
	}

	plain := errors.New("mapping failed")
	if got := Classify(plain); got != plain {
		t.Errorf("Classify(plain) = %v, want unchanged", got)
	}

	once := Classify(&pgconn.PgError{Code: CodeUniqueViolation})
	if twice := Classify(once); twice != once {
		t.Error("Classify is not idempotent")
	}
}

func TestCancellationIsNotTimeout(t *testing.T) {
	cancelled := fmt.Errorf("query: %w", context.Canceled)
	if IsTimeout(cancelled) {
		t.Error("IsTimeout(context.Canceled) = true")
	}
	if got := Classify(cancelled); errors.Is(got, apperrors.ErrTimeout) {
		t.Errorf("Classify(cancelled) = %v, want not a timeout", got)
	}
	if !IsTimeout(context.DeadlineExceeded) {
		t.Error("IsTimeout(context.DeadlineExceeded) = false")
	}
}

func TestViolationPredicates(t *testing.T) {
	fk := &pgconn.PgError{Code: CodeForeignKeyViolation}
	uq := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "usuario_login_key"}

	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(uq) {
		t.Error("IsForeignKeyViolation misclassified")
	}
	if !IsForeignKeyViolation(Classify(fk)) {
		t.Error("IsForeignKeyViolation(Classify(fk)) = false")
	}
	if !IsUniqueViolation(uq) || IsUniqueViolation(fk) {
		t.Error("IsUniqueViolation misclassified")
	}
	if !IsDuplicateConstraintError(uq, "usuario_login_key") {
		t.Error("IsDuplicateConstraintError did not match constraint")
	}
	if IsDuplicateConstraintError(uq, "other") {
		t.Error("IsDuplicateConstraintError matched the wrong constraint")
	}
}
