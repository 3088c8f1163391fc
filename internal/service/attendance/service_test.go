package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/pkg/clock"
)

type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records map[string]attendance.Attendance // keyed by employeeID
	nextID  int

	// createErrs and setLeftAtErrs are consumed one error per call,
	// allowing tests to simulate lost races before a successful attempt.
	createErrs    []error
	setLeftAtErrs []error
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDateForUpdate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	// While a simulated race is pending, the winner's row is not yet
	// visible to the locked lookup.
	if len(f.createErrs) > 0 {
		return nil, nil
	}

	rec, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return attendance.Attendance{}, err
		}
	}

	f.nextID++
	att.ID = string(rune('a' + f.nextID))
	f.records[recordKey(att.EmployeeID, att.Date)] = att
	return att, nil
}

func (f *fakeAttendanceRepo) SetLeftAt(_ context.Context, id string, leftAt time.Time) (attendance.Attendance, error) {
	if len(f.setLeftAtErrs) > 0 {
		err := f.setLeftAtErrs[0]
		f.setLeftAtErrs = f.setLeftAtErrs[1:]
		if err != nil {
			return attendance.Attendance{}, err
		}
	}

	for key, rec := range f.records {
		if rec.ID == id && rec.LeftAt == nil {
			rec.LeftAt = &leftAt
			f.records[key] = rec
			return rec, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

type recordingDispatcher struct {
	events []attendance.RecordedEvent
}

func (d *recordingDispatcher) AttendanceRecorded(event attendance.RecordedEvent) {
	d.events = append(d.events, event)
}

type registerFixture struct {
	service        attendance.AttendanceService
	attendanceRepo *fakeAttendanceRepo
	dispatcher     *recordingDispatcher
	now            time.Time
}

func newRegisterFixture(t *testing.T) *registerFixture {
	t.Helper()

	loc, err := time.LoadLocation("Africa/Kigali")
	require.NoError(t, err)

	now := time.Date(2026, 3, 9, 8, 30, 0, 0, loc)

	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Code: "EMP1234", Name: "Alice Uwase", Email: "alice@nexhr.test"},
	}}
	dispatcher := &recordingDispatcher{}

	service := NewAttendanceService(attendanceRepo, employeeRepo, fakeTxManager{}, dispatcher, clock.Fixed(now), loc)

	return &registerFixture{
		service:        service,
		attendanceRepo: attendanceRepo,
		dispatcher:     dispatcher,
		now:            now,
	}
}

func TestRegisterFirstCallRecordsArrival(t *testing.T) {
	f := newRegisterFixture(t)

	resp, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeArrived, resp.Outcome)
	assert.Equal(t, "2026-03-09", resp.Attendance.Date)
	assert.Nil(t, resp.Attendance.LeftAt)

	require.Len(t, f.dispatcher.events, 1)
	assert.Equal(t, attendance.OutcomeArrived, f.dispatcher.events[0].Outcome)
	assert.Equal(t, "emp-1", f.dispatcher.events[0].Employee.ID)
}

func TestRegisterSecondCallRecordsDeparture(t *testing.T) {
	f := newRegisterFixture(t)

	_, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	resp, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeDeparted, resp.Outcome)
	require.NotNil(t, resp.Attendance.LeftAt)

	require.Len(t, f.dispatcher.events, 2)
	assert.Equal(t, attendance.OutcomeDeparted, f.dispatcher.events[1].Outcome)
}

func TestRegisterThirdCallIsTerminal(t *testing.T) {
	f := newRegisterFixture(t)

	for i := 0; i < 2; i++ {
		_, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
	}

	resp, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeAlreadyComplete, resp.Outcome)
	require.NotNil(t, resp.Attendance.LeftAt)

	// terminal outcome must not dispatch another event
	assert.Len(t, f.dispatcher.events, 2)
}

func TestRegisterUnknownEmployee(t *testing.T) {
	f := newRegisterFixture(t)

	_, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "nobody"})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, f.dispatcher.events)
}

func TestRegisterEmptyEmployeeID(t *testing.T) {
	f := newRegisterFixture(t)

	_, err := f.service.Register(context.Background(), attendance.RegisterRequest{})

	assert.Error(t, err)
	assert.Empty(t, f.dispatcher.events)
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendances_employee_date"}
}

func checkViolation() error {
	return &pgconn.PgError{Code: "23514", ConstraintName: "attendances_left_after_arrival"}
}

// stepClock advances by step on every reading.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestRegisterRetriesAfterLostInsertRace(t *testing.T) {
	f := newRegisterFixture(t)

	// First attempt loses the race; on retry the winner's row is visible
	// through the locked lookup, so the call lands on the departure branch.
	f.attendanceRepo.createErrs = []error{uniqueViolation()}
	f.attendanceRepo.records[recordKey("emp-1", attendance.DayOf(f.now, f.now.Location()))] = attendance.Attendance{
		ID:         "race-winner",
		EmployeeID: "emp-1",
		Date:       attendance.DayOf(f.now, f.now.Location()),
		ArrivedAt:  f.now.Add(-time.Second),
	}

	resp, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeDeparted, resp.Outcome)
}

func TestRegisterRetriesEqualInstantDeparture(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Kigali")
	require.NoError(t, err)

	start := time.Date(2026, 3, 9, 8, 30, 0, 0, loc)
	clk := &stepClock{now: start, step: time.Second}

	attendanceRepo := &fakeAttendanceRepo{records: map[string]attendance.Attendance{}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Code: "EMP1234", Name: "Alice Uwase", Email: "alice@nexhr.test"},
	}}
	dispatcher := &recordingDispatcher{}
	service := NewAttendanceService(attendanceRepo, employeeRepo, fakeTxManager{}, dispatcher, clk, loc)

	_, err = service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	// The departure collides with the arrival's timestamp constraint once;
	// the replay reads a later clock instant and succeeds.
	attendanceRepo.setLeftAtErrs = []error{checkViolation()}

	resp, err := service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})

	require.NoError(t, err)
	assert.Equal(t, attendance.OutcomeDeparted, resp.Outcome)
	require.NotNil(t, resp.Attendance.LeftAt)

	// arrival at +1s, failed departure at +2s, successful replay at +3s
	assert.Equal(t, "2026-03-09 08:30:03", *resp.Attendance.LeftAt)
	assert.Greater(t, *resp.Attendance.LeftAt, resp.Attendance.ArrivedAt)
}

func TestRegisterExhaustsRetries(t *testing.T) {
	f := newRegisterFixture(t)

	// The lookup keeps missing and every insert keeps colliding.
	f.attendanceRepo.createErrs = []error{uniqueViolation(), uniqueViolation(), uniqueViolation()}

	_, err := f.service.Register(context.Background(), attendance.RegisterRequest{EmployeeID: "emp-1"})

	assert.ErrorIs(t, err, attendance.ErrConflictRetryExhausted)
	assert.Empty(t, f.dispatcher.events)
}
