package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

func TestProductConsumptionRange(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to string
	}{
		{"bad start", "2026-1-1", "2026-12-31"},
		{"bad end", "2026-01-01", "fin"},
		{"reversed", "2026-12-31", "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReportStore{}
			svc := NewReportService(newResolver(), store)
			if _, err := svc.GetProductConsumption(ctx, itAdmin, tt.from, tt.to); !errors.Is(err, apperrors.ErrBadRequest) {
				t.Errorf("GetProductConsumption() error = %v, want bad request", err)
			}
			if store.calls != 0 {
				t.Error("invalid range reached storage")
			}
		})
	}

	store := &fakeReportStore{}
	svc := NewReportService(newResolver(), store)
	if _, err := svc.GetProductConsumption(ctx, warehouseLead, "2026-03-01", "2026-03-01"); err != nil {
		t.Fatalf("GetProductConsumption() error = %v", err)
	}
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !store.from.Equal(want) || !store.to.Equal(want) {
		t.Errorf("range = %v..%v, want %v", store.from, store.to, want)
	}
}

func TestReportsWithoutProfile(t *testing.T) {
	store := &fakeReportStore{}
	svc := NewReportService(newResolver(), store)
	ctx := context.Background()

	if got, err := svc.GetWorkshopValuation(ctx, noProfile); err != nil || len(got) != 0 {
		t.Errorf("GetWorkshopValuation() = %v, %v", got, err)
	}
	if got, err := svc.GetSubjectBudget(ctx, noProfile, 2026); err != nil || len(got) != 0 {
		t.Errorf("GetSubjectBudget() = %v, %v", got, err)
	}
	if got, err := svc.GetInstructorAssignments(ctx, noProfile, 2026); err != nil || len(got) != 0 {
		t.Errorf("GetInstructorAssignments() = %v, %v", got, err)
	}
	if store.calls != 0 {
		t.Errorf("store calls = %d, want 0", store.calls)
	}
}
