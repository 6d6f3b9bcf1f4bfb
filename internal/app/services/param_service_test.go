package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

func newParamFixture(value string) (*ParamService, *fakeParamStore) {
	store := &fakeParamStore{
		params: map[int32]*models.Param{
			models.ParamAcademicYear: {Code: models.ParamAcademicYear, Name: "Año académico vigente", Value: value},
		},
		periods: map[int32]*models.AcademicPeriod{
			1: {Code: 1, Name: "Primer semestre", ShortName: "1S"},
		},
	}
	svc := NewParamService(store)
	svc.now = func() time.Time { return time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestCurrentYear(t *testing.T) {
	ctx := context.Background()

	svc, _ := newParamFixture(" 2026 ")
	if got := svc.CurrentYear(ctx); got != 2026 {
		t.Errorf("CurrentYear() = %d, want 2026", got)
	}

	svc, _ = newParamFixture("dos mil")
	if got := svc.CurrentYear(ctx); got != 2030 {
		t.Errorf("CurrentYear() with bad value = %d, want 2030", got)
	}

	svc, store := newParamFixture("2026")
	delete(store.params, models.ParamAcademicYear)
	if got := svc.CurrentYear(ctx); got != 2030 {
		t.Errorf("CurrentYear() without param = %d, want 2030", got)
	}

	svc, store = newParamFixture("2026")
	store.readErr = errors.New("connection refused")
	if got := svc.GetAcademicYear(ctx).Year; got != "2030" {
		t.Errorf("GetAcademicYear() on failure = %q, want 2030", got)
	}
}

func TestUpdateParam(t *testing.T) {
	ctx := context.Background()
	svc, _ := newParamFixture("2026")

	got, err := svc.UpdateParam(ctx, &models.Param{Code: models.ParamAcademicYear, Value: "2027"})
	if err != nil {
		t.Fatalf("UpdateParam() error = %v", err)
	}
	if got.Value != "2027" || got.Name != "Año académico vigente" {
		t.Errorf("UpdateParam() = %+v", got)
	}

	got, err = svc.UpdateParam(ctx, &models.Param{Code: 42, Name: "x", Value: "y"})
	if err != nil {
		t.Fatalf("UpdateParam() error = %v", err)
	}
	if *got != (models.Param{}) {
		t.Errorf("UpdateParam(unknown) = %+v, want zero value", got)
	}
}

func TestGetParamAndPeriod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newParamFixture("2026")

	p, err := svc.GetParam(ctx, 42)
	if err != nil || *p != (models.Param{}) {
		t.Errorf("GetParam(42) = %+v, %v; want zero value", p, err)
	}

	if _, err := svc.GetPeriod(ctx, 9); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("GetPeriod(9) error = %v, want not found", err)
	}
	if period, err := svc.GetPeriod(ctx, 1); err != nil || period.ShortName != "1S" {
		t.Errorf("GetPeriod(1) = %+v, %v", period, err)
	}
}
