package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/tallerdev/admtaller/internal/db"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
	"github.com/tallerdev/admtaller/internal/pkg/logger"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = apperrors.ErrResourceNotFound

// Repositories holds all the repository instances
type Repositories struct {
	ProfileRepository   *ProfileRepository
	SubjectRepository   *SubjectRepository
	WorkshopRepository  *WorkshopRepository
	ProductRepository   *ProductRepository
	ProgramRepository   *ProgramRepository
	UserRepository      *UserRepository
	ScheduleRepository  *ScheduleRepository
	RecordRepository    *RecordRepository
	ParamRepository     *ParamRepository
	CatalogRepository   *CatalogRepository
	DashboardRepository *DashboardRepository
	ReportRepository    *ReportRepository
}

// NewRepositories initializes all repositories over one pool. Statements
// borrow a pooled connection each; tx runs the multi-statement writes.
func NewRepositories(conn db.DBTX, tx db.Transactor) *Repositories {
	return &Repositories{
		ProfileRepository:   NewProfileRepository(conn),
		SubjectRepository:   NewSubjectRepository(conn),
		WorkshopRepository:  NewWorkshopRepository(conn),
		ProductRepository:   NewProductRepository(conn),
		ProgramRepository:   NewProgramRepository(conn),
		UserRepository:      NewUserRepository(conn),
		ScheduleRepository:  NewScheduleRepository(conn),
		RecordRepository:    NewRecordRepository(conn, tx),
		ParamRepository:     NewParamRepository(conn),
		CatalogRepository:   NewCatalogRepository(conn),
		DashboardRepository: NewDashboardRepository(conn),
		ReportRepository:    NewReportRepository(conn),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// selectAll runs a query and maps every row onto T by column name.
func selectAll[T any](ctx context.Context, conn db.DBTX, q squirrel.Sqlizer, op string) ([]T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", op)
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error executing %s query", op)
		return nil, fmt.Errorf("error querying %s: %w", op, dberrors.Classify(err))
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		logger.Error().Err(err).Msgf("Error mapping %s rows", op)
		return nil, fmt.Errorf("error reading %s: %w", op, dberrors.Classify(err))
	}
	return items, nil
}

// selectOne runs a query expected to return at most one row. No row
// yields ErrNotFound.
func selectOne[T any](ctx context.Context, conn db.DBTX, q squirrel.Sqlizer, op string) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", op)
		return nil, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error executing %s query", op)
		return nil, fmt.Errorf("error querying %s: %w", op, dberrors.Classify(err))
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msgf("Error mapping %s row", op)
		return nil, fmt.Errorf("error reading %s: %w", op, dberrors.Classify(err))
	}
	return item, nil
}

// execute runs a write and returns the number of affected rows.
func execute(ctx context.Context, conn db.DBTX, q squirrel.Sqlizer, op string) (int64, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", op)
		return 0, fmt.Errorf("failed to build %s query: %w", op, err)
	}

	tag, err := conn.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error executing %s", op)
		return 0, fmt.Errorf("error executing %s: %w", op, dberrors.Classify(err))
	}
	return tag.RowsAffected(), nil
}

// insertReturning runs an INSERT ... RETURNING and scans the returned
// columns into dest.
func insertReturning(ctx context.Context, conn db.DBTX, q squirrel.Sqlizer, op string, dest ...any) error {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", op)
		return fmt.Errorf("failed to build %s query: %w", op, err)
	}

	if err := conn.QueryRow(ctx, sql, args...).Scan(dest...); err != nil {
		logger.Error().Err(err).Msgf("Error executing %s", op)
		return fmt.Errorf("error executing %s: %w", op, dberrors.Classify(err))
	}
	return nil
}

// costExpr is the cost of a set of configured product lines: every line
// rounded to whole currency units, then summed.
const costExpr = "SUM(ROUND(ct.cantidad * p.precio, 0))::bigint"
