package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

type paramStore interface {
	GetAllParams(ctx context.Context) ([]models.Param, error)
	GetParam(ctx context.Context, code int32) (*models.Param, error)
	UpdateParamValue(ctx context.Context, code int32, value string) (int64, error)
	GetAllPeriods(ctx context.Context) ([]models.AcademicPeriod, error)
	GetPeriod(ctx context.Context, code int32) (*models.AcademicPeriod, error)
}

// ParamService handles system parameters and academic periods
type ParamService struct {
	repo paramStore
	now  func() time.Time
}

// NewParamService creates a new ParamService
func NewParamService(repo paramStore) *ParamService {
	return &ParamService{repo: repo, now: time.Now}
}

// GetParams lists every parameter by code
func (s *ParamService) GetParams(ctx context.Context) ([]models.Param, error) {
	return s.repo.GetAllParams(ctx)
}

// GetParam returns a parameter, or an empty one when code is unknown
func (s *ParamService) GetParam(ctx context.Context, code int32) (*models.Param, error) {
	param, err := s.repo.GetParam(ctx, code)
	return notFoundAs(param, err, &models.Param{})
}

// UpdateParam sets the value of a parameter and returns it as stored. An
// unknown code yields an empty parameter.
func (s *ParamService) UpdateParam(ctx context.Context, p *models.Param) (*models.Param, error) {
	rows, err := s.repo.UpdateParamValue(ctx, p.Code, p.Value)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return &models.Param{}, nil
	}

	logger.Info().Int32("code", p.Code).Str("value", p.Value).Msg("Parameter updated")
	return s.GetParam(ctx, p.Code)
}

// CurrentYear returns the current academic year. It falls back to the
// calendar year when the parameter is missing, unreadable or not a number.
func (s *ParamService) CurrentYear(ctx context.Context) int32 {
	fallback := int32(s.now().Year())

	param, err := s.repo.GetParam(ctx, models.ParamAcademicYear)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Warn().Err(err).Msg("Could not read academic year parameter, using calendar year")
		}
		return fallback
	}

	year, err := strconv.ParseInt(strings.TrimSpace(param.Value), 10, 32)
	if err != nil {
		logger.Warn().Str("value", param.Value).Msg("Academic year parameter is not a number, using calendar year")
		return fallback
	}
	return int32(year)
}

// GetAcademicYear wraps CurrentYear for the API
func (s *ParamService) GetAcademicYear(ctx context.Context) *models.AcademicYear {
	return &models.AcademicYear{Year: strconv.Itoa(int(s.CurrentYear(ctx)))}
}

// GetPeriods lists the academic periods by code
func (s *ParamService) GetPeriods(ctx context.Context) ([]models.AcademicPeriod, error) {
	return s.repo.GetAllPeriods(ctx)
}

// GetPeriod returns one academic period
func (s *ParamService) GetPeriod(ctx context.Context, code int32) (*models.AcademicPeriod, error) {
	period, err := s.repo.GetPeriod(ctx, code)
	if apperrors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, apperrors.NewResourceNotFoundError("Periodo académico no existe")
	}
	return period, err
}
