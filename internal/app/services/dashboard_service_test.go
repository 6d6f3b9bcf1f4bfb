package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/tallerdev/admtaller/internal/app/models"
)

func TestDashboardPerProgram(t *testing.T) {
	store := &fakeDashboardStore{figures: []models.ProgramFigures{
		{ProgramName: "Gastronomía", Subjects: 3, Workshops: 12, Products: 40, Instructors: 5},
		{ProgramName: "Pastelería"},
	}}
	svc := NewDashboardService(newResolver(), store, fixedYear(2026))

	got, err := svc.GetDashboard(context.Background(), itAdmin)
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}

	want := []models.Dashboard{
		{ProgramName: "Gastronomía", Summary: []models.SummaryItem{
			{Concept: models.ConceptSubjects, Value: 3},
			{Concept: models.ConceptWorkshops, Value: 12},
			{Concept: models.ConceptProducts, Value: 40},
			{Concept: models.ConceptInstructors, Value: 5},
		}},
		{ProgramName: "Pastelería", Summary: []models.SummaryItem{
			{Concept: models.ConceptSubjects, Value: 0},
			{Concept: models.ConceptWorkshops, Value: 0},
			{Concept: models.ConceptProducts, Value: 0},
			{Concept: models.ConceptInstructors, Value: 0},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetDashboard() = %+v\nwant %+v", got, want)
	}
}

func TestDashboardInstructor(t *testing.T) {
	name := "Gastronomía"
	store := &fakeDashboardStore{instructor: &models.InstructorFigures{ProgramName: &name, Assigned: 8, Recorded: 6}}
	svc := NewDashboardService(newResolver(), store, fixedYear(2026))

	got, err := svc.GetDashboard(context.Background(), instructor)
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}
	if store.requestedFor != 2026 {
		t.Errorf("year = %d, want 2026", store.requestedFor)
	}

	want := []models.Dashboard{{ProgramName: "Gastronomía", Summary: []models.SummaryItem{
		{Concept: models.ConceptAssignedWorkshops, Value: 8},
		{Concept: models.ConceptRecordedWorkshops, Value: 6},
	}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetDashboard() = %+v, want %+v", got, want)
	}
}

func TestDashboardWithoutProfile(t *testing.T) {
	svc := NewDashboardService(newResolver(), &fakeDashboardStore{}, fixedYear(2026))

	got, err := svc.GetDashboard(context.Background(), noProfile)
	if err != nil || got == nil || len(got) != 0 {
		t.Errorf("GetDashboard() = %v, %v; want empty", got, err)
	}
}
