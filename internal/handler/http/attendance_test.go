package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/domain/employee"
	"github.com/nexhr/attendance-backend-go/internal/handler/http/response"
)

type fakeAttendanceService struct {
	resp attendance.RegisterResponse
	err  error

	gotEmployeeID string
}

func (f *fakeAttendanceService) Register(_ context.Context, req attendance.RegisterRequest) (attendance.RegisterResponse, error) {
	f.gotEmployeeID = req.EmployeeID
	if f.err != nil {
		return attendance.RegisterResponse{}, f.err
	}
	return f.resp, nil
}

func postRegister(t *testing.T, handler AttendanceHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/register-attendance", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)
	return rec
}

func TestRegisterHandlerArrival(t *testing.T) {
	service := &fakeAttendanceService{
		resp: attendance.RegisterResponse{
			Outcome: attendance.OutcomeArrived,
			Attendance: attendance.AttendanceResponse{
				ID:         "att-1",
				EmployeeID: "emp-1",
				Date:       "2026-03-09",
				ArrivedAt:  "2026-03-09 08:30:00",
			},
		},
	}
	handler := NewAttendanceHandler(service)

	rec := postRegister(t, handler, attendance.RegisterRequest{EmployeeID: "emp-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "emp-1", service.gotEmployeeID)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Arrival recorded", resp.Message)
}

func TestRegisterHandlerDeparture(t *testing.T) {
	service := &fakeAttendanceService{
		resp: attendance.RegisterResponse{Outcome: attendance.OutcomeDeparted},
	}
	handler := NewAttendanceHandler(service)

	rec := postRegister(t, handler, attendance.RegisterRequest{EmployeeID: "emp-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterHandlerAlreadyComplete(t *testing.T) {
	service := &fakeAttendanceService{
		resp: attendance.RegisterResponse{Outcome: attendance.OutcomeAlreadyComplete},
	}
	handler := NewAttendanceHandler(service)

	rec := postRegister(t, handler, attendance.RegisterRequest{EmployeeID: "emp-1"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Attendance already complete for today", resp.Message)
}

func TestRegisterHandlerUnknownEmployee(t *testing.T) {
	service := &fakeAttendanceService{err: employee.ErrEmployeeNotFound}
	handler := NewAttendanceHandler(service)

	rec := postRegister(t, handler, attendance.RegisterRequest{EmployeeID: "ghost"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterHandlerRetryExhausted(t *testing.T) {
	service := &fakeAttendanceService{err: attendance.ErrConflictRetryExhausted}
	handler := NewAttendanceHandler(service)

	rec := postRegister(t, handler, attendance.RegisterRequest{EmployeeID: "emp-1"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRegisterHandlerMalformedBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employees/register-attendance", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
