package payroll

import "context"

type PayrollService interface {
	Create(ctx context.Context, req CreatePayrollRequest) (PayrollResponse, error)
	List(ctx context.Context) ([]PayrollResponse, error)
	Update(ctx context.Context, req UpdatePayrollRequest) (PayrollResponse, error)
	MyPayslips(ctx context.Context) ([]PayrollResponse, error)
}
