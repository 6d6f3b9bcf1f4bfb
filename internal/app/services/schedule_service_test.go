package services

import (
	"context"
	"errors"
	"testing"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
)

var testSection = models.SectionKey{Year: 2026, PeriodCode: 1, SubjectCode: "GAS101", Section: 1}

func newScheduleFixture() (*ScheduleService, *fakeScheduleStore) {
	store := &fakeScheduleStore{schedules: map[string]*models.WorkshopSchedule{}}
	return NewScheduleService(newResolver(), store), store
}

func TestWorkshopScheduleLifecycle(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()
	ws := &models.WorkshopSchedule{Date: "2026-04-14", SectionKey: testSection, WorkshopID: 12}

	created, err := svc.CreateWorkshopSchedule(ctx, ws)
	if err != nil {
		t.Fatalf("CreateWorkshopSchedule() error = %v", err)
	}
	if created.UserID != nil {
		t.Errorf("UserID = %v, want nil", created.UserID)
	}

	if _, err := svc.CreateWorkshopSchedule(ctx, ws); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate CreateWorkshopSchedule() error = %v, want conflict", err)
	}

	userID := int64(3)
	updated, err := svc.UpdateWorkshopInstructor(ctx, &models.WorkshopSchedule{Date: "2026-04-14", SectionKey: testSection, WorkshopID: 12, UserID: &userID})
	if err != nil || updated.UserID == nil || *updated.UserID != 3 {
		t.Fatalf("UpdateWorkshopInstructor() = %+v, %v", updated, err)
	}

	res, err := svc.DeleteWorkshopSchedule(ctx, instructor, testSection, 12, "2026-04-14")
	if err != nil || res.Deleted {
		t.Fatalf("instructor DeleteWorkshopSchedule() = %+v, %v; want refusal", res, err)
	}
	if store.deletes != 0 {
		t.Error("refused delete reached storage")
	}

	res, err = svc.DeleteWorkshopSchedule(ctx, programAdmin, testSection, 12, "2026-04-14")
	if err != nil {
		t.Fatalf("DeleteWorkshopSchedule() error = %v", err)
	}
	want := `{"ano_academ":2026,"cod_periodo_academ":1,"sigla":"GAS101","seccion":1,"id_taller":12,"fecha":"2026-04-14","eliminado":true,"msg_error":null}`
	if got := deleteJSON(t, res); got != want {
		t.Errorf("DeleteWorkshopSchedule() = %s\nwant %s", got, want)
	}
}

func TestWorkshopScheduleInvalidDate(t *testing.T) {
	svc, store := newScheduleFixture()
	ctx := context.Background()

	if _, err := svc.GetWorkshopSchedule(ctx, testSection, 12, "2026-02-30"); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("GetWorkshopSchedule() error = %v, want bad request", err)
	}
	if _, err := svc.DeleteWorkshopSchedule(ctx, itAdmin, testSection, 12, "14/04/2026"); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("DeleteWorkshopSchedule() error = %v, want bad request", err)
	}
	if store.deletes != 0 {
		t.Error("invalid date reached storage")
	}
}

func TestGetWorkshopScheduleDefault(t *testing.T) {
	svc, _ := newScheduleFixture()

	got, err := svc.GetWorkshopSchedule(context.Background(), testSection, 12, "2026-04-14")
	if err != nil {
		t.Fatalf("GetWorkshopSchedule() error = %v", err)
	}
	if got.Date != "2026-04-14" || got.WorkshopID != 12 || got.SectionKey != testSection || got.UserID != nil {
		t.Errorf("GetWorkshopSchedule() = %+v, want key-only default", got)
	}
}

func TestDeleteSectionIntegrity(t *testing.T) {
	svc, store := newScheduleFixture()
	store.deleteErr = fkViolation()

	res, err := svc.DeleteSection(context.Background(), itAdmin, testSection)
	if err != nil {
		t.Fatalf("DeleteSection() error = %v", err)
	}
	if res.Deleted || res.ErrorMessage == nil || *res.ErrorMessage != MsgSectionIntegrity {
		t.Errorf("DeleteSection() = %+v", res)
	}
}

func TestGetSectionsWithoutProfile(t *testing.T) {
	svc, _ := newScheduleFixture()

	got, err := svc.GetSections(context.Background(), noProfile, 2026)
	if err != nil || len(got) != 0 {
		t.Errorf("GetSections() = %v, %v; want empty", got, err)
	}
}
