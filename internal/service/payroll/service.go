package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrms-backend-go/internal/requestctx"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	periodStart, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to parse period start: %w", err)
	}
	periodEnd, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to parse period end: %w", err)
	}

	deductions := decimal.Zero
	if req.Deductions != nil {
		deductions = *req.Deductions
	}

	p := payroll.Payroll{
		EmployeeID:  req.EmployeeID,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		GrossSalary: *req.GrossSalary,
		Deductions:  deductions,
		Status:      payroll.StatusPending,
	}
	p.ComputeNet()

	created, err := s.payrollRepo.Create(ctx, p)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return payroll.ToResponse(created), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.payrollRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.ToResponse(p))
	}

	return responses, nil
}

// Update implements payroll.PayrollService. Net salary is recomputed whenever
// gross or deductions change, so the derived field never drifts.
func (s *PayrollServiceImpl) Update(ctx context.Context, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if req.GrossSalary != nil {
		p.GrossSalary = *req.GrossSalary
	}
	if req.Deductions != nil {
		p.Deductions = *req.Deductions
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	p.ComputeNet()

	updated, err := s.payrollRepo.Update(ctx, p)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(updated), nil
}

// MyPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyPayslips(ctx context.Context) ([]payroll.PayrollResponse, error) {
	account, ok := requestctx.Account(ctx)
	if !ok {
		return nil, employee.ErrProfileNotFound
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	payrolls, err := s.payrollRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.ToResponse(p))
	}

	return responses, nil
}
