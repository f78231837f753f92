package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := markReq.Validate(); err != nil {
		slog.Error("Mark attendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "employee_id", result.EmployeeID, "date", result.Date)
	response.Created(w, "Attendance marked successfully", result)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.List(r.Context())
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
