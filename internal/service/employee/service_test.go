package employee

import (
	"context"
	"regexp"
	"testing"
	"time"

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

	byID          map[string]employee.Employee
	nextID        int
	takenCodes    map[string]bool
	deletedIDs    []string
	searchResults []employee.Employee
	searchTotal   int64
	searchedToday time.Time
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		byID:       map[string]employee.Employee{},
		takenCodes: map[string]bool{},
	}
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.byID {
		if emp.Code == code {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	return f.takenCodes[code], nil
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.nextID++
	emp.ID = "id-" + emp.Code
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	f.byID[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	if _, ok := f.byID[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.byID[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.byID, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeEmployeeRepo) Search(_ context.Context, _ employee.SearchFilter, today time.Time) ([]employee.Employee, int64, error) {
	f.searchedToday = today
	return f.searchResults, f.searchTotal, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	deletedEmployees []string
}

func (f *fakeAttendanceRepo) DeleteByEmployee(_ context.Context, employeeID string) error {
	f.deletedEmployees = append(f.deletedEmployees, employeeID)
	return nil
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "Alice Uwase",
		Email:      "alice@nexhr.test",
		Phone:      "250788123456",
		NationalID: "1199012345678901",
		DOB:        "1990-05-12",
		Position:   "developer",
		Status:     "active",
	}
}

func TestCreateGeneratesEmployeeCode(t *testing.T) {
	repo := newFakeEmployeeRepo()
	service := NewEmployeeService(repo, &fakeAttendanceRepo{}, fakeTxManager{}, clock.System(), time.UTC)

	resp, err := service.Create(context.Background(), validCreateRequest())

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^EMP\d{4}$`), resp.Code)
	assert.Equal(t, "Alice Uwase", resp.Name)
	assert.Equal(t, "1990-05-12", resp.DOB)
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	repo := newFakeEmployeeRepo()
	service := NewEmployeeService(repo, &fakeAttendanceRepo{}, fakeTxManager{}, clock.System(), time.UTC)

	req := validCreateRequest()
	req.Phone = "0788123456" // missing country prefix

	_, err := service.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Empty(t, repo.byID)
}

func TestDeleteRemovesAttendanceHistory(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.byID["emp-1"] = employee.Employee{ID: "emp-1", Code: "EMP0001", Name: "Alice Uwase"}
	attendanceRepo := &fakeAttendanceRepo{}
	service := NewEmployeeService(repo, attendanceRepo, fakeTxManager{}, clock.System(), time.UTC)

	resp, err := service.Delete(context.Background(), "EMP0001")

	require.NoError(t, err)
	assert.Equal(t, "EMP0001", resp.Code)
	assert.Equal(t, []string{"emp-1"}, attendanceRepo.deletedEmployees)
	assert.Equal(t, []string{"emp-1"}, repo.deletedIDs)
}

func TestDeleteUnknownCode(t *testing.T) {
	service := NewEmployeeService(newFakeEmployeeRepo(), &fakeAttendanceRepo{}, fakeTxManager{}, clock.System(), time.UTC)

	_, err := service.Delete(context.Background(), "EMP9999")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSearchClampsLimit(t *testing.T) {
	repo := newFakeEmployeeRepo()
	service := NewEmployeeService(repo, &fakeAttendanceRepo{}, fakeTxManager{}, clock.System(), time.UTC)

	resp, err := service.Search(context.Background(), employee.SearchFilter{Page: 1, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Limit)

	resp, err = service.Search(context.Background(), employee.SearchFilter{Page: 1, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.Limit)
}

func TestSearchPassesLocalDayAndPaginates(t *testing.T) {
	loc, err := time.LoadLocation("Africa/Kigali")
	require.NoError(t, err)

	// 23:30 UTC is already the next calendar day in Kigali (UTC+2).
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)

	repo := newFakeEmployeeRepo()
	repo.searchResults = []employee.Employee{{ID: "emp-1", Code: "EMP0001", Name: "Alice Uwase"}}
	repo.searchTotal = 31
	service := NewEmployeeService(repo, &fakeAttendanceRepo{}, fakeTxManager{}, clock.Fixed(now), loc)

	resp, err := service.Search(context.Background(), employee.SearchFilter{Page: 2, Limit: 15})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", repo.searchedToday.Format("2006-01-02"))
	assert.Equal(t, int64(31), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.Page)
	assert.Len(t, resp.Employees, 1)
}
