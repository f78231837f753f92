package employee

import (
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Email       string           `json:"email"`
	Password    string           `json:"password"`
	JobTitle    string           `json:"job_title"`
	Department  Department       `json:"department"`
	Salary      *decimal.Decimal `json:"salary"`
	JoiningDate string           `json:"joining_date"`
	Role        user.Role        `json:"role,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters long"})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "job_title is required"})
	}
	if !IsValidDepartment(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of Engineering, HR, Marketing, Sales, Management"})
	}
	if r.Salary == nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary is required"})
	} else if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
	}
	if validator.IsEmpty(r.JoiningDate) {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "joining_date is required"})
	} else if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "joining_date must be in YYYY-MM-DD format"})
	}
	if r.Role != "" && !user.IsValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of admin, hr, manager, employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest uses pointer fields so "field omitted" and "field set to
// its zero value" stay distinguishable. A nil field keeps the stored value.
type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	FirstName  *string          `json:"first_name,omitempty"`
	LastName   *string          `json:"last_name,omitempty"`
	Email      *string          `json:"email,omitempty"`
	JobTitle   *string          `json:"job_title,omitempty"`
	Department *Department      `json:"department,omitempty"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.JobTitle != nil && validator.IsEmpty(*r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "job_title", Message: "job_title must not be empty"})
	}
	if r.Department != nil && !IsValidDepartment(*r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of Engineering, HR, Marketing, Sales, Management"})
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	EmployeeCode string          `json:"employee_code"`
	JobTitle     string          `json:"job_title"`
	Department   Department      `json:"department"`
	Salary       decimal.Decimal `json:"salary"`
	JoiningDate  string          `json:"joining_date"`
	Role         user.Role       `json:"role,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		EmployeeCode: e.EmployeeCode,
		JobTitle:     e.JobTitle,
		Department:   e.Department,
		Salary:       e.Salary,
		JoiningDate:  e.JoiningDate.Format("2006-01-02"),
		Role:         e.Role,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
