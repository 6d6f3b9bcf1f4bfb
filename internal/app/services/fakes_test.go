package services

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tallerdev/admtaller/internal/app/models"
	"github.com/tallerdev/admtaller/internal/app/repositories"
	"github.com/tallerdev/admtaller/internal/pkg/dberrors"
)

// Actors known to stubResolver.
const (
	itAdmin       int64 = 1
	programAdmin  int64 = 2
	instructor    int64 = 3
	warehouseLead int64 = 4
	noProfile     int64 = 99
)

type stubResolver map[int64]models.Role

func (r stubResolver) Resolve(_ context.Context, actorID int64) (*models.Profile, error) {
	role, ok := r[actorID]
	if !ok {
		return nil, nil
	}
	return &models.Profile{Code: role}, nil
}

func newResolver() stubResolver {
	return stubResolver{
		itAdmin:       models.RoleITAdmin,
		programAdmin:  models.RoleProgramAdmin,
		instructor:    models.RoleInstructor,
		warehouseLead: models.RoleWarehouseLead,
	}
}

func fkViolation() error {
	return dberrors.Classify(&pgconn.PgError{Code: dberrors.CodeForeignKeyViolation, Message: "violates foreign key constraint"})
}

func uniqueViolation() error {
	return dberrors.Classify(&pgconn.PgError{Code: dberrors.CodeUniqueViolation, Message: "duplicate key value"})
}

type fakeSubjectStore struct {
	subjects   map[string]*models.Subject
	deleteErr  error
	listRole   *models.Role
	listCalled bool
	deleted    []string
}

func (f *fakeSubjectStore) GetAllSubjects(_ context.Context, role models.Role, _ int64) ([]models.Subject, error) {
	f.listCalled = true
	f.listRole = &role
	out := []models.Subject{}
	for _, s := range f.subjects {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeSubjectStore) GetSubjectByCode(_ context.Context, code string) (*models.Subject, error) {
	s, ok := f.subjects[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s, nil
}

func (f *fakeSubjectStore) CreateSubject(_ context.Context, s *models.Subject) error {
	if _, ok := f.subjects[s.Code]; ok {
		return uniqueViolation()
	}
	f.subjects[s.Code] = s
	return nil
}

func (f *fakeSubjectStore) UpdateSubject(_ context.Context, s *models.Subject) (int64, error) {
	if _, ok := f.subjects[s.Code]; !ok {
		return 0, nil
	}
	f.subjects[s.Code] = s
	return 1, nil
}

func (f *fakeSubjectStore) DeleteSubject(_ context.Context, code string) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	if _, ok := f.subjects[code]; !ok {
		return 0, nil
	}
	delete(f.subjects, code)
	f.deleted = append(f.deleted, code)
	return 1, nil
}

type fakeCredentialStore struct {
	creds   map[string]*models.Credentials
	updated map[int64]string
}

func (f *fakeCredentialStore) GetCredentialsByLogin(_ context.Context, login string) (*models.Credentials, error) {
	c, ok := f.creds[login]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}

func (f *fakeCredentialStore) UpdatePassword(_ context.Context, id int64, hash string) (int64, error) {
	for _, c := range f.creds {
		if c.ID == id {
			f.updated[id] = hash
			return 1, nil
		}
	}
	return 0, nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateAccessToken(userID int64, login string, _ int32) (string, int, error) {
	return "token-" + login, 3600, nil
}

type fakeParamStore struct {
	params  map[int32]*models.Param
	periods map[int32]*models.AcademicPeriod
	readErr error
}

func (f *fakeParamStore) GetAllParams(context.Context) ([]models.Param, error) {
	out := []models.Param{}
	for _, p := range f.params {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeParamStore) GetParam(_ context.Context, code int32) (*models.Param, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	p, ok := f.params[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeParamStore) UpdateParamValue(_ context.Context, code int32, value string) (int64, error) {
	p, ok := f.params[code]
	if !ok {
		return 0, nil
	}
	p.Value = value
	return 1, nil
}

func (f *fakeParamStore) GetAllPeriods(context.Context) ([]models.AcademicPeriod, error) {
	return []models.AcademicPeriod{}, nil
}

func (f *fakeParamStore) GetPeriod(_ context.Context, code int32) (*models.AcademicPeriod, error) {
	p, ok := f.periods[code]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return p, nil
}

type fakeDashboardStore struct {
	figures      []models.ProgramFigures
	instructor   *models.InstructorFigures
	requestedFor int32
}

func (f *fakeDashboardStore) GetProgramFigures(context.Context, models.Role, int64) ([]models.ProgramFigures, error) {
	return f.figures, nil
}

func (f *fakeDashboardStore) GetInstructorFigures(_ context.Context, _ int64, year int32) (*models.InstructorFigures, error) {
	f.requestedFor = year
	return f.instructor, nil
}

type fixedYear int32

func (y fixedYear) CurrentYear(context.Context) int32 { return int32(y) }

type fakeScheduleStore struct {
	schedules map[string]*models.WorkshopSchedule
	deleteErr error
	deletes   int
}

func scheduleKey(key models.SectionKey, workshopID int64, date time.Time) string {
	return key.SubjectCode + "/" + date.Format("2006-01-02") + "/" + strconv.FormatInt(workshopID, 10)
}

func (f *fakeScheduleStore) GetSectionsByYear(context.Context, models.Role, int64, int32) ([]models.SubjectSection, error) {
	return []models.SubjectSection{{SectionKey: models.SectionKey{Year: 2026, SubjectCode: "GAS101", Section: 1}}}, nil
}

func (f *fakeScheduleStore) CreateSection(context.Context, models.SectionKey) error { return nil }

func (f *fakeScheduleStore) DeleteSection(context.Context, models.SectionKey) (int64, error) {
	f.deletes++
	return 0, f.deleteErr
}

func (f *fakeScheduleStore) GetWorkshopSchedules(context.Context, models.SectionKey) ([]models.WorkshopSchedule, error) {
	return []models.WorkshopSchedule{}, nil
}

func (f *fakeScheduleStore) GetWorkshopSchedule(_ context.Context, key models.SectionKey, workshopID int64, date time.Time) (*models.WorkshopSchedule, error) {
	ws, ok := f.schedules[scheduleKey(key, workshopID, date)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return ws, nil
}

func (f *fakeScheduleStore) CreateWorkshopSchedule(_ context.Context, key models.SectionKey, workshopID int64, date time.Time, userID *int64) error {
	k := scheduleKey(key, workshopID, date)
	if _, ok := f.schedules[k]; ok {
		return uniqueViolation()
	}
	f.schedules[k] = &models.WorkshopSchedule{Date: date.Format("2006-01-02"), SectionKey: key, WorkshopID: workshopID, UserID: userID}
	return nil
}

func (f *fakeScheduleStore) UpdateWorkshopInstructor(_ context.Context, key models.SectionKey, workshopID int64, date time.Time, userID *int64) (int64, error) {
	ws, ok := f.schedules[scheduleKey(key, workshopID, date)]
	if !ok {
		return 0, nil
	}
	ws.UserID = userID
	return 1, nil
}

func (f *fakeScheduleStore) DeleteWorkshopSchedule(_ context.Context, key models.SectionKey, workshopID int64, date time.Time) (int64, error) {
	f.deletes++
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	k := scheduleKey(key, workshopID, date)
	if _, ok := f.schedules[k]; !ok {
		return 0, nil
	}
	delete(f.schedules, k)
	return 1, nil
}

type fakeRecordStore struct {
	registered []*models.ExecutionRecord
	err        error
}

func (f *fakeRecordStore) GetAssignedSections(context.Context, models.Role, int64, int32) ([]models.SubjectSection, error) {
	return []models.SubjectSection{}, nil
}

func (f *fakeRecordStore) GetSectionWorkshops(context.Context, models.SectionKey, int64) ([]models.SectionWorkshop, error) {
	return []models.SectionWorkshop{}, nil
}

func (f *fakeRecordStore) RegisterExecution(_ context.Context, rec *models.ExecutionRecord, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, rec)
	return nil
}

type fakeReportStore struct {
	from, to time.Time
	calls    int
}

func (f *fakeReportStore) GetWorkshopValuation(context.Context, models.Role, int64) ([]models.WorkshopValuation, error) {
	f.calls++
	return []models.WorkshopValuation{}, nil
}

func (f *fakeReportStore) GetSubjectBudget(context.Context, models.Role, int64, int32) ([]models.SubjectBudget, error) {
	f.calls++
	return []models.SubjectBudget{}, nil
}

func (f *fakeReportStore) GetInstructorAssignments(context.Context, models.Role, int64, int32) ([]models.InstructorAssignment, error) {
	f.calls++
	return []models.InstructorAssignment{}, nil
}

func (f *fakeReportStore) GetProductConsumption(_ context.Context, _ models.Role, _ int64, from, to time.Time) ([]models.ProductConsumption, error) {
	f.calls++
	f.from, f.to = from, to
	return []models.ProductConsumption{}, nil
}
