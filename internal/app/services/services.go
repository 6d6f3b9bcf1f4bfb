package services

import (
	"context"

	"github.com/tallerdev/admtaller/internal/app/access"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/app/repositories"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/auth"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
)

// MsgRecordNotFound is reported when a delete matches no row.
const MsgRecordNotFound = "Registro no existe"

// ProfileResolver maps an actor id to its profile. It returns nil, nil when
// the actor has no profile.
type ProfileResolver interface {
	Resolve(ctx context.Context, actorID int64) (*models.Profile, error)
}

// Services holds all the service instances
type Services struct {
	ProfileService   *ProfileService
	SubjectService   *SubjectService
	WorkshopService  *WorkshopService
	ProductService   *ProductService
	UserService      *UserService
	AuthService      *AuthService
	ScheduleService  *ScheduleService
	RecordService    *RecordService
	ParamService     *ParamService
	CatalogService   *CatalogService
	DashboardService *DashboardService
	ReportService    *ReportService
}

// NewServices wires every service over the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	resolver := access.NewResolver(repos.ProfileRepository)
	params := NewParamService(repos.ParamRepository)

	return &Services{
		ProfileService:   NewProfileService(resolver, repos.ProfileRepository, repos.ProgramRepository),
		SubjectService:   NewSubjectService(resolver, repos.SubjectRepository),
		WorkshopService:  NewWorkshopService(resolver, repos.WorkshopRepository),
		ProductService:   NewProductService(resolver, repos.ProductRepository),
		UserService:      NewUserService(resolver, repos.UserRepository),
		AuthService:      NewAuthService(repos.UserRepository, jwtService),
		ScheduleService:  NewScheduleService(resolver, repos.ScheduleRepository),
		RecordService:    NewRecordService(resolver, repos.RecordRepository),
		ParamService:     params,
		CatalogService:   NewCatalogService(repos.CatalogRepository),
		DashboardService: NewDashboardService(resolver, repos.DashboardRepository, params),
		ReportService:    NewReportService(resolver, repos.ReportRepository),
	}
}

// deletePermission resolves the actor of a delete. It returns a refusal
// when the actor has no profile or is an instructor.
func deletePermission(ctx context.Context, resolver ProfileResolver, actorID int64, keys ...models.KeyField) (*models.DeleteResult, error) {
	profile, err := resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return models.NotDeleted(access.MsgNoProfile, keys...), nil
	}
	if profile.Code == models.RoleInstructor {
		return models.NotDeleted(access.DenyMessage(profile.Code, "eliminar"), keys...), nil
	}
	return nil, nil
}

// deleteOutcome turns the result of a delete statement into a DeleteResult.
// A foreign key violation is an expected outcome reported with
// integrityMsg; other failures are returned as errors.
func deleteOutcome(rows int64, err error, integrityMsg string, keys ...models.KeyField) (*models.DeleteResult, error) {
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return models.NotDeleted(integrityMsg, keys...), nil
		}
		return nil, err
	}
	if rows == 0 {
		return models.NotDeleted(MsgRecordNotFound, keys...), nil
	}
	return models.Deleted(keys...), nil
}

// requireWriter rejects writes by actors without a profile and by
// instructors.
func requireWriter(ctx context.Context, resolver ProfileResolver, actorID int64, action string) (*models.Profile, error) {
	profile, err := resolver.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperrors.NewForbiddenError(access.MsgNoProfile)
	}
	if profile.Code == models.RoleInstructor {
		return nil, apperrors.NewForbiddenError(access.DenyMessage(profile.Code, action))
	}
	return profile, nil
}

// notFoundAs maps ErrNotFound onto a default value.
func notFoundAs[T any](item *T, err error, def *T) (*T, error) {
	if apperrors.Is(err, repositories.ErrNotFound) {
		return def, nil
	}
	return item, err
}
