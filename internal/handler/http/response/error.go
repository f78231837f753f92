package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore/hrms-backend-go/internal/domain/ai"
	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/gemini"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors first
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream AI failures carry the upstream message
	var upstreamErr *gemini.UpstreamError
	if errors.As(err, &upstreamErr) {
		BadGateway(w, upstreamErr.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Not authorized, token failed")
	case errors.Is(err, auth.ErrNoToken):
		Unauthorized(w, "Not authorized, no token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRoleAccessRequired):
		Forbidden(w, "Not authorized to access this route")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileNotFound):
		NotFound(w, "Employee profile not found for this user")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrUserAlreadyLinked):
		Conflict(w, "User already has an employee profile")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this employee today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// AI domain errors
	case errors.Is(err, ai.ErrNoReviews):
		NotFound(w, "No performance reviews found to analyze")
	case errors.Is(err, ai.ErrMissingFile):
		BadRequest(w, "No file uploaded", nil)
	case errors.Is(err, ai.ErrMissingJobDesc):
		BadRequest(w, "No job description provided", nil)
	case errors.Is(err, gemini.ErrEmptyResponse):
		BadGateway(w, "No content returned from AI")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
