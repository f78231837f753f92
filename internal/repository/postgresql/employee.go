package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.first_name, e.last_name, e.email, e.employee_code,
	e.job_title, e.department, e.salary, e.joining_date, e.created_at, e.updated_at,
	u.role
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.UserID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.EmployeeCode,
		&emp.JobTitle, &emp.Department, &emp.Salary, &emp.JoiningDate, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.Role,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, first_name, last_name, email, employee_code,
			job_title, department, salary, joining_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, user_id, first_name, last_name, email, employee_code,
				  job_title, department, salary, joining_date, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newEmployee.UserID,
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		newEmployee.EmployeeCode,
		newEmployee.JobTitle,
		newEmployee.Department,
		newEmployee.Salary,
		newEmployee.JoiningDate,
	).Scan(
		&created.ID, &created.UserID, &created.FirstName, &created.LastName,
		&created.Email, &created.EmployeeCode, &created.JobTitle, &created.Department,
		&created.Salary, &created.JoiningDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			switch {
			case strings.Contains(pgErr.ConstraintName, "user_id"):
				return employee.Employee{}, employee.ErrUserAlreadyLinked
			case strings.Contains(pgErr.ConstraintName, "employee_code"):
				return employee.Employee{}, employee.ErrEmployeeCodeExists
			default:
				return employee.Employee{}, employee.ErrEmailExists
			}
		}
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN users u ON u.id = e.user_id
		WHERE e.user_id = $1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrProfileNotFound
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN users u ON u.id = e.user_id
		ORDER BY e.employee_code
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, job_title = $4,
			department = $5, salary = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, user_id, first_name, last_name, email, employee_code,
				  job_title, department, salary, joining_date, created_at, updated_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.JobTitle,
		emp.Department, emp.Salary, emp.ID,
	).Scan(
		&updated.ID, &updated.UserID, &updated.FirstName, &updated.LastName,
		&updated.Email, &updated.EmployeeCode, &updated.JobTitle, &updated.Department,
		&updated.Salary, &updated.JoiningDate, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, err
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// NextEmployeeCode implements employee.EmployeeRepository. The database
// sequence is the single allocator, so concurrent creates never collide.
func (r *employeeRepositoryImpl) NextEmployeeCode(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	var ordinal int64
	if err := q.QueryRow(ctx, `SELECT nextval('employee_code_seq')`).Scan(&ordinal); err != nil {
		return "", err
	}

	return fmt.Sprintf("EMP%04d", ordinal), nil
}
