package services

import (
	"context"

	"github.com/tallerdev/admtaller/internal/app/models"
)

type dashboardStore interface {
	GetProgramFigures(ctx context.Context, role models.Role, actorID int64) ([]models.ProgramFigures, error)
	GetInstructorFigures(ctx context.Context, instructorID int64, year int32) (*models.InstructorFigures, error)
}

type academicYearSource interface {
	CurrentYear(ctx context.Context) int32
}

// DashboardService builds the figures shown on the home page
type DashboardService struct {
	resolver ProfileResolver
	repo     dashboardStore
	years    academicYearSource
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(resolver ProfileResolver, repo dashboardStore, years academicYearSource) *DashboardService {
	return &DashboardService{resolver: resolver, repo: repo, years: years}
}

// GetDashboard returns one dashboard per visible program. Instructors get a
// single dashboard with their own workshops of the current academic year.
func (s *DashboardService) GetDashboard(ctx context.Context, actorID int64) ([]models.Dashboard, error) {
	profile, err := s.resolver.Resolve(ctx, actorID)
	if err != nil || profile == nil {
		return []models.Dashboard{}, err
	}

	if profile.Code == models.RoleInstructor {
		return s.instructorDashboard(ctx, actorID)
	}

	figures, err := s.repo.GetProgramFigures(ctx, profile.Code, actorID)
	if err != nil {
		return nil, err
	}

	dashboards := make([]models.Dashboard, 0, len(figures))
	for _, f := range figures {
		dashboards = append(dashboards, models.Dashboard{
			ProgramName: f.ProgramName,
			Summary: []models.SummaryItem{
				{Concept: models.ConceptSubjects, Value: f.Subjects},
				{Concept: models.ConceptWorkshops, Value: f.Workshops},
				{Concept: models.ConceptProducts, Value: f.Products},
				{Concept: models.ConceptInstructors, Value: f.Instructors},
			},
		})
	}
	return dashboards, nil
}

func (s *DashboardService) instructorDashboard(ctx context.Context, actorID int64) ([]models.Dashboard, error) {
	year := s.years.CurrentYear(ctx)

	f, err := s.repo.GetInstructorFigures(ctx, actorID, year)
	if err != nil {
		return nil, err
	}

	var programName string
	if f.ProgramName != nil {
		programName = *f.ProgramName
	}

	return []models.Dashboard{{
		ProgramName: programName,
		Summary: []models.SummaryItem{
			{Concept: models.ConceptAssignedWorkshops, Value: f.Assigned},
			{Concept: models.ConceptRecordedWorkshops, Value: f.Recorded},
		},
	}}, nil
}
