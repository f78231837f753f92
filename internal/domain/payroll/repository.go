package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, newPayroll Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)
	List(ctx context.Context) ([]Payroll, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payroll, error)
	Update(ctx context.Context, p Payroll) (Payroll, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
