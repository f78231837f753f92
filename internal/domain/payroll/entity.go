package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusPaid    Status = "Paid"
)

func IsValidStatus(s Status) bool {
	return s == StatusPending || s == StatusPaid
}

type Payroll struct {
	ID          string
	EmployeeID  string
	PeriodStart time.Time
	PeriodEnd   time.Time
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join
	EmployeeFirstName string
	EmployeeLastName  string
	EmployeeEmail     string
	EmployeeJobTitle  string
}

// ComputeNet keeps the derived net salary consistent with gross and
// deductions. Call before every persist that touches either field.
func (p *Payroll) ComputeNet() {
	p.NetSalary = p.GrossSalary.Sub(p.Deductions)
}
