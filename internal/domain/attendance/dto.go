package attendance

import (
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
	CheckIn    string `json:"check_in,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Status == "" {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Present, Absent or Leave"})
	}
	if r.CheckIn != "" {
		if _, ok := validator.IsValidDateTime(r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be an ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"`
	Status     Status     `json:"status"`
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	EmployeeFirstName string `json:"employee_first_name,omitempty"`
	EmployeeLastName  string `json:"employee_last_name,omitempty"`
	EmployeeJobTitle  string `json:"employee_job_title,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		Date:              a.Date.Format("2006-01-02"),
		Status:            a.Status,
		CheckIn:           a.CheckIn,
		CheckOut:          a.CheckOut,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
		EmployeeFirstName: a.EmployeeFirstName,
		EmployeeLastName:  a.EmployeeLastName,
		EmployeeJobTitle:  a.EmployeeJobTitle,
	}
}
