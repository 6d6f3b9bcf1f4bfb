package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
)

// ParamRepository handles param and periodo_academ database operations
type ParamRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewParamRepository creates a new ParamRepository
func NewParamRepository(conn db.DBTX) *ParamRepository {
	return &ParamRepository{db: conn, sb: statementBuilder()}
}

// GetAllParams lists the system parameters
func (r *ParamRepository) GetAllParams(ctx context.Context) ([]models.Param, error) {
	q := r.sb.Select("cod_param", "nom_param", "valor").
		From("param").
		OrderBy("cod_param ASC")

	return selectAll[models.Param](ctx, r.db, q, "get all params")
}

// GetParam retrieves a parameter by code
func (r *ParamRepository) GetParam(ctx context.Context, code int32) (*models.Param, error) {
	q := r.sb.Select("cod_param", "nom_param", "valor").
		From("param").
		Where(squirrel.Eq{"cod_param": code})

	return selectOne[models.Param](ctx, r.db, q, "get param")
}

// UpdateParamValue sets the value of a parameter
func (r *ParamRepository) UpdateParamValue(ctx context.Context, code int32, value string) (int64, error) {
	q := r.sb.Update("param").
		Set("valor", value).
		Where(squirrel.Eq{"cod_param": code})

	return execute(ctx, r.db, q, "update param")
}

// GetAllPeriods lists the academic periods
func (r *ParamRepository) GetAllPeriods(ctx context.Context) ([]models.AcademicPeriod, error) {
	q := r.sb.Select("cod_periodo_academ", "nom_periodo_academ", "nom_periodo_academ_abrev").
		From("periodo_academ").
		OrderBy("cod_periodo_academ ASC")

	return selectAll[models.AcademicPeriod](ctx, r.db, q, "get all periods")
}

// GetPeriod retrieves an academic period by code
func (r *ParamRepository) GetPeriod(ctx context.Context, code int32) (*models.AcademicPeriod, error) {
	q := r.sb.Select("cod_periodo_academ", "nom_periodo_academ", "nom_periodo_academ_abrev").
		From("periodo_academ").
		Where(squirrel.Eq{"cod_periodo_academ": code})

	return selectOne[models.AcademicPeriod](ctx, r.db, q, "get period")
}
