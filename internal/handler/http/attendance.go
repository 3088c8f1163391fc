package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nexhr/attendance-backend-go/internal/domain/attendance"
	"github.com/nexhr/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Register implements AttendanceHandler. One endpoint covers both check-in
// and check-out; the outcome in the response tells the caller which step
// happened.
func (h *AttendanceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq attendance.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.attendanceService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	switch resp.Outcome {
	case attendance.OutcomeArrived:
		response.Created(w, "Arrival recorded", resp)
	case attendance.OutcomeDeparted:
		response.SuccessWithMessage(w, "Departure recorded", resp)
	default:
		response.SuccessWithMessage(w, "Attendance already complete for today", resp)
	}
}
