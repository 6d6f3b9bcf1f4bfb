package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/tallerdev/admtaller/internal/app/migrations"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/db"
	"github.com/tallerdev/admtaller/internal/pkg/apperrors"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
)

// setupTestDB starts a PostgreSQL container and applies the migrations.
func setupTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("admtaller_test"),
		postgres.WithUsername("admtaller"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	if err := migrations.NewMigrator(connString).Up(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	return &db.PostgresDB{Pool: pool}
}

type fixture struct {
	repos        *Repositories
	itAdmin      int64
	programAdmin int64
	instructor   int64
	productID    int64
	workshopID   int64
}

func int32Ptr(v int32) *int32 { return &v }

// seed creates two programs with one subject each, three users of
// program 10 or none, and one configured workshop on GAS101.
func seed(t *testing.T, pg *db.PostgresDB) fixture {
	t.Helper()
	ctx := context.Background()

	if _, err := pg.Pool.Exec(ctx, `INSERT INTO carrera (cod_carrera, nom_carrera, nom_carrera_abrev)
		VALUES (10, 'Gastronomía', 'GAS'), (20, 'Pastelería', 'PAS')`); err != nil {
		t.Fatalf("seed carrera: %v", err)
	}

	repos := NewRepositories(pg.Pool, pg)
	f := fixture{repos: repos}

	users := []struct {
		dst  *int64
		user models.User
	}{
		{&f.itAdmin, models.User{Login: "ti", FirstSurname: "Admin", GivenName: "TI", Role: models.RoleITAdmin}},
		{&f.programAdmin, models.User{Login: "jefe", FirstSurname: "Rojas", GivenName: "Ana", Role: models.RoleProgramAdmin, ProgramCode: int32Ptr(10)}},
		{&f.instructor, models.User{Login: "docente", FirstSurname: "Soto", GivenName: "Luis", Role: models.RoleInstructor, ProgramCode: int32Ptr(10)}},
	}
	for _, u := range users {
		id, err := repos.UserRepository.CreateUser(ctx, &u.user, "hash")
		if err != nil {
			t.Fatalf("CreateUser(%s): %v", u.user.Login, err)
		}
		*u.dst = id
	}

	for _, s := range []models.Subject{
		{Code: "GAS101", Name: "Cocina básica", ProgramCode: 10},
		{Code: "PAS201", Name: "Masas", ProgramCode: 20},
	} {
		if err := repos.SubjectRepository.CreateSubject(ctx, &s); err != nil {
			t.Fatalf("CreateSubject(%s): %v", s.Code, err)
		}
	}

	var err error
	f.productID, err = repos.ProductRepository.CreateProduct(ctx, &models.Product{
		Name: "Harina", Price: 1001, UnitCode: 1, CategoryCode: 1,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	f.workshopID, err = repos.WorkshopRepository.CreateWorkshop(ctx, &models.Workshop{
		Title: "Pan", Week: 1, SubjectCode: "GAS101",
	})
	if err != nil {
		t.Fatalf("CreateWorkshop: %v", err)
	}

	if err := repos.WorkshopRepository.CreateWorkshopProduct(ctx, &models.WorkshopProduct{
		WorkshopID: f.workshopID, ProductID: f.productID, GroupCode: 1, Quantity: 1.5,
	}); err != nil {
		t.Fatalf("CreateWorkshopProduct: %v", err)
	}

	return f
}

func TestSubjectListingByRole(t *testing.T) {
	pg := setupTestDB(t)
	f := seed(t, pg)
	ctx := context.Background()
	repo := f.repos.SubjectRepository

	all, err := repo.GetAllSubjects(ctx, models.RoleITAdmin, f.itAdmin)
	if err != nil {
		t.Fatalf("GetAllSubjects(IT) error = %v", err)
	}
	if len(all) != 2 || all[0].Code != "GAS101" || all[1].Code != "PAS201" {
		t.Fatalf("GetAllSubjects(IT) = %+v, want GAS101, PAS201", all)
	}
	// 1.5 * 1001 = 1501.5, rounded per line.
	if all[0].TotalCost != 1502 {
		t.Errorf("GAS101 cost = %d, want 1502", all[0].TotalCost)
	}
	if all[1].TotalCost != 0 {
		t.Errorf("PAS201 cost = %d, want 0", all[1].TotalCost)
	}

	scoped, err := repo.GetAllSubjects(ctx, models.RoleProgramAdmin, f.programAdmin)
	if err != nil {
		t.Fatalf("GetAllSubjects(PA) error = %v", err)
	}
	if len(scoped) != 1 || scoped[0].Code != "GAS101" {
		t.Errorf("GetAllSubjects(PA) = %+v, want only GAS101", scoped)
	}
}

func TestListingsDeniedAndUnsupported(t *testing.T) {
	pg := setupTestDB(t)
	f := seed(t, pg)
	ctx := context.Background()

	users, err := f.repos.UserRepository.GetAllUsers(ctx, models.RoleInstructor, f.instructor)
	if err != nil || len(users) != 0 {
		t.Errorf("GetAllUsers(instructor) = %v, %v; want empty", users, err)
	}

	subjects, err := f.repos.SubjectRepository.GetAllSubjects(ctx, models.RoleInstructor, f.instructor)
	if err != nil || len(subjects) != 0 {
		t.Errorf("GetAllSubjects(instructor) = %v, %v; want empty", subjects, err)
	}

	products, err := f.repos.ProductRepository.GetAllProducts(ctx, models.RoleInstructor, f.instructor)
	if err != nil || len(products) != 0 {
		t.Errorf("GetAllProducts(instructor) = %v, %v; want empty", products, err)
	}

	if _, err := f.repos.ProgramRepository.GetAllPrograms(ctx, models.RoleWarehouseLead, 1); !errors.Is(err, apperrors.ErrUnsupportedRole) {
		t.Errorf("GetAllPrograms(warehouse lead) error = %v, want unsupported role", err)
	}

	scoped, err := f.repos.UserRepository.GetAllUsers(ctx, models.RoleProgramAdmin, f.programAdmin)
	if err != nil {
		t.Fatalf("GetAllUsers(PA) error = %v", err)
	}
	for _, u := range scoped {
		if u.Role == models.RoleITAdmin {
			t.Errorf("program admin sees IT admin %q", u.Login)
		}
	}
	if len(scoped) != 2 {
		t.Errorf("GetAllUsers(PA) returned %d users, want 2", len(scoped))
	}
}

func TestDeleteReferencedProduct(t *testing.T) {
	pg := setupTestDB(t)
	f := seed(t, pg)
	ctx := context.Background()

	_, err := f.repos.ProductRepository.DeleteProduct(ctx, f.productID)
	if !dberrors.IsForeignKeyViolation(err) {
		t.Fatalf("DeleteProduct() error = %v, want foreign key violation", err)
	}

	if _, err := f.repos.ProductRepository.GetProductByID(ctx, f.productID); err != nil {
		t.Errorf("product removed after failed delete: %v", err)
	}
}

func TestDuplicateSectionIsConflict(t *testing.T) {
	pg := setupTestDB(t)
	f := seed(t, pg)
	ctx := context.Background()
	key := models.SectionKey{Year: 2026, PeriodCode: 1, SubjectCode: "GAS101", Section: 1}

	if err := f.repos.ScheduleRepository.CreateSection(ctx, key); err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	err := f.repos.ScheduleRepository.CreateSection(ctx, key)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("second CreateSection() error = %v, want conflict", err)
	}

	sections, err := f.repos.ScheduleRepository.GetSectionsByYear(ctx, models.RoleITAdmin, f.itAdmin, 2026)
	if err != nil || len(sections) != 1 {
		t.Errorf("GetSectionsByYear() = %v, %v; want one section", sections, err)
	}
}

func TestRegisterExecution(t *testing.T) {
	pg := setupTestDB(t)
	f := seed(t, pg)
	ctx := context.Background()
	key := models.SectionKey{Year: 2026, PeriodCode: 1, SubjectCode: "GAS101", Section: 1}
	date := time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC)

	if err := f.repos.ScheduleRepository.CreateSection(ctx, key); err != nil {
		t.Fatalf("CreateSection() error = %v", err)
	}
	if err := f.repos.ScheduleRepository.CreateWorkshopSchedule(ctx, key, f.workshopID, date, &f.instructor); err != nil {
		t.Fatalf("CreateWorkshopSchedule() error = %v", err)
	}

	mine, err := f.repos.RecordRepository.GetAssignedSections(ctx, models.RoleInstructor, f.instructor, 2026)
	if err != nil || len(mine) != 1 {
		t.Fatalf("GetAssignedSections(instructor) = %v, %v; want one", mine, err)
	}
	others, err := f.repos.RecordRepository.GetAssignedSections(ctx, models.RoleInstructor, f.programAdmin, 2026)
	if err != nil || len(others) != 0 {
		t.Errorf("GetAssignedSections(other actor) = %v, %v; want empty", others, err)
	}

	pending, err := f.repos.RecordRepository.GetSectionWorkshops(ctx, key, f.instructor)
	if err != nil || len(pending) != 1 {
		t.Fatalf("GetSectionWorkshops() = %v, %v", pending, err)
	}
	if pending[0].UserIndicator != 0 || pending[0].RecordIndicator != 0 || pending[0].Notes != models.MsgRecordPending {
		t.Errorf("pending workshop = %+v", pending[0])
	}
	if pending[0].Date != "2026-04-14" {
		t.Errorf("Date = %q, want 2026-04-14", pending[0].Date)
	}

	rec := &models.ExecutionRecord{SectionKey: key, WorkshopID: f.workshopID, UserID: f.instructor}
	if err := f.repos.RecordRepository.RegisterExecution(ctx, rec, date); err != nil {
		t.Fatalf("RegisterExecution() error = %v", err)
	}

	var lines int
	if err := pg.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM det_regis_taller").Scan(&lines); err != nil || lines != 1 {
		t.Errorf("detail lines = %d, %v; want 1", lines, err)
	}

	// A second registration fails as a whole.
	err = f.repos.RecordRepository.RegisterExecution(ctx, rec, date)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("second RegisterExecution() error = %v, want conflict", err)
	}

	done, err := f.repos.RecordRepository.GetSectionWorkshops(ctx, key, f.programAdmin)
	if err != nil || len(done) != 1 {
		t.Fatalf("GetSectionWorkshops() = %v, %v", done, err)
	}
	if done[0].UserIndicator != 1 || done[0].RecordIndicator != 1 {
		t.Errorf("recorded workshop = %+v", done[0])
	}

	summary, err := f.repos.ReportRepository.GetProductConsumption(ctx, models.RoleWarehouseLead, 0, date, date)
	if err != nil || len(summary) != 1 {
		t.Fatalf("GetProductConsumption() = %v, %v", summary, err)
	}
	if summary[0].TotalPrice != 1502 || summary[0].TotalQuantity != 1.5 {
		t.Errorf("consumption = %+v", summary[0])
	}
}

func TestDashboardFigures(t *testing.T) {
	pg := setupTestDB(t)
	f := seed(t, pg)
	ctx := context.Background()

	figures, err := f.repos.DashboardRepository.GetProgramFigures(ctx, models.RoleITAdmin, f.itAdmin)
	if err != nil || len(figures) != 2 {
		t.Fatalf("GetProgramFigures() = %v, %v", figures, err)
	}
	gas := figures[0]
	if gas.ProgramName != "Gastronomía" || gas.Subjects != 1 || gas.Workshops != 1 || gas.Products != 1 || gas.Instructors != 1 {
		t.Errorf("Gastronomía figures = %+v", gas)
	}

	year, err := f.repos.ParamRepository.GetParam(ctx, models.ParamAcademicYear)
	if err != nil || year.Value == "" {
		t.Errorf("GetParam(academic year) = %v, %v", year, err)
	}
}
