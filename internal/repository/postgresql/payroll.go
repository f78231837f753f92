package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, newPayroll payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, employee_id, period_start, period_end,
			gross_salary, deductions, net_salary, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, period_start, period_end,
				  gross_salary, deductions, net_salary, status, created_at, updated_at
	`

	var created payroll.Payroll
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newPayroll.EmployeeID,
		newPayroll.PeriodStart,
		newPayroll.PeriodEnd,
		newPayroll.GrossSalary,
		newPayroll.Deductions,
		newPayroll.NetSalary,
		newPayroll.Status,
	).Scan(
		&created.ID, &created.EmployeeID, &created.PeriodStart, &created.PeriodEnd,
		&created.GrossSalary, &created.Deductions, &created.NetSalary, &created.Status,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}

	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_start, period_end,
			   gross_salary, deductions, net_salary, status, created_at, updated_at
		FROM payrolls
		WHERE id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
		&p.GrossSalary, &p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}

	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.period_start, p.period_end,
			   p.gross_salary, p.deductions, p.net_salary, p.status, p.created_at, p.updated_at,
			   e.first_name, e.last_name, e.email, e.job_title
		FROM payrolls p
		JOIN employees e ON e.id = p.employee_id
		ORDER BY p.period_start DESC, p.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
			&p.GrossSalary, &p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeFirstName, &p.EmployeeLastName, &p.EmployeeEmail, &p.EmployeeJobTitle,
		); err != nil {
			return nil, err
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, rows.Err()
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_start, period_end,
			   gross_salary, deductions, net_salary, status, created_at, updated_at
		FROM payrolls
		WHERE employee_id = $1
		ORDER BY period_start DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodStart, &p.PeriodEnd,
			&p.GrossSalary, &p.Deductions, &p.NetSalary, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		payrolls = append(payrolls, p)
	}

	return payrolls, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET gross_salary = $1, deductions = $2, net_salary = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, employee_id, period_start, period_end,
				  gross_salary, deductions, net_salary, status, created_at, updated_at
	`

	var updated payroll.Payroll
	err := q.QueryRow(ctx, query,
		p.GrossSalary, p.Deductions, p.NetSalary, p.Status, p.ID,
	).Scan(
		&updated.ID, &updated.EmployeeID, &updated.PeriodStart, &updated.PeriodEnd,
		&updated.GrossSalary, &updated.Deductions, &updated.NetSalary, &updated.Status,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}

	return updated, nil
}

// DeleteByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM payrolls WHERE employee_id = $1`, employeeID)
	return err
}
