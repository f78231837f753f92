package payroll

import (
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employee_id"`
	PeriodStart string           `json:"period_start"`
	PeriodEnd   string           `json:"period_end"`
	GrossSalary *decimal.Decimal `json:"gross_salary"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start is required"})
	} else if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end is required"})
	} else if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be in YYYY-MM-DD format"})
	}
	if r.GrossSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "gross_salary is required"})
	} else if r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "gross_salary must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "deductions must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePayrollRequest uses pointer fields; nil keeps the stored value. Net
// salary is recomputed whenever gross or deductions change.
type UpdatePayrollRequest struct {
	ID          string           `json:"-"`
	GrossSalary *decimal.Decimal `json:"gross_salary,omitempty"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
	Status      *Status          `json:"status,omitempty"`
}

func (r *UpdatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GrossSalary != nil && r.GrossSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "gross_salary", Message: "gross_salary must be non-negative"})
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "deductions must be non-negative"})
	}
	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Pending or Paid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	GrossSalary decimal.Decimal `json:"gross_salary"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"net_salary"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	EmployeeFirstName string `json:"employee_first_name,omitempty"`
	EmployeeLastName  string `json:"employee_last_name,omitempty"`
	EmployeeEmail     string `json:"employee_email,omitempty"`
	EmployeeJobTitle  string `json:"employee_job_title,omitempty"`
}

func ToResponse(p Payroll) PayrollResponse {
	return PayrollResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		PeriodStart:       p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         p.PeriodEnd.Format("2006-01-02"),
		GrossSalary:       p.GrossSalary,
		Deductions:        p.Deductions,
		NetSalary:         p.NetSalary,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		EmployeeFirstName: p.EmployeeFirstName,
		EmployeeLastName:  p.EmployeeLastName,
		EmployeeEmail:     p.EmployeeEmail,
		EmployeeJobTitle:  p.EmployeeJobTitle,
	}
}
