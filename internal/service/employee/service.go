package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/payroll"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
	"github.com/peoplecore/hrms-backend-go/internal/repository/postgresql"
	"github.com/peoplecore/hrms-backend-go/internal/requestctx"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	userRepo       user.UserRepository
	payrollRepo    payroll.PayrollRepository
	reviewRepo     performance.ReviewRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	payrollRepo payroll.PayrollRepository,
	reviewRepo performance.ReviewRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		userRepo:       userRepo,
		payrollRepo:    payrollRepo,
		reviewRepo:     reviewRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Create implements employee.EmployeeService. The user login, the employee
// profile and the first payroll record are written in one transaction, so a
// failure partway through cannot leave an orphaned login.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}

	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse joining date: %w", err)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		newUser, err := s.userRepo.Create(txCtx, user.User{
			Name:         req.FirstName + " " + req.LastName,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
		})
		if err != nil {
			return err
		}

		code, err := s.employeeRepo.NextEmployeeCode(txCtx)
		if err != nil {
			return fmt.Errorf("failed to allocate employee code: %w", err)
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			UserID:       newUser.ID,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Email:        req.Email,
			EmployeeCode: code,
			JobTitle:     req.JobTitle,
			Department:   req.Department,
			Salary:       *req.Salary,
			JoiningDate:  joiningDate,
		})
		if err != nil {
			return err
		}

		// Seed the first payroll period: one month from the joining date,
		// gross = salary, no deductions yet.
		seeded := payroll.Payroll{
			EmployeeID:  created.ID,
			PeriodStart: joiningDate,
			PeriodEnd:   joiningDate.AddDate(0, 1, 0),
			GrossSalary: *req.Salary,
			Deductions:  decimal.Zero,
			Status:      payroll.StatusPending,
		}
		seeded.ComputeNet()
		if _, err := s.payrollRepo.Create(txCtx, seeded); err != nil {
			return fmt.Errorf("failed to seed payroll: %w", err)
		}

		created.Role = newUser.Role
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return responses, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.EmployeeResponse, error) {
	account, ok := requestctx.Account(ctx)
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrProfileNotFound
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, account.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService. Only fields present in the
// request change; name and email changes cascade to the linked user login.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.JobTitle != nil {
		emp.JobTitle = *req.JobTitle
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}

	var updated employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		updated, err = s.employeeRepo.Update(txCtx, emp)
		if err != nil {
			return err
		}

		name := updated.FirstName + " " + updated.LastName
		if err := s.userRepo.Update(txCtx, updated.UserID, name, updated.Email); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated.Role = emp.Role
	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService. Children first, then the login,
// then the profile, all inside one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.payrollRepo.DeleteByEmployee(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to delete payroll records: %w", err)
		}
		if err := s.reviewRepo.DeleteByEmployee(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to delete performance reviews: %w", err)
		}
		if err := s.reviewRepo.DeleteByReviewer(txCtx, emp.UserID); err != nil {
			return fmt.Errorf("failed to delete authored reviews: %w", err)
		}
		if err := s.attendanceRepo.DeleteByEmployee(txCtx, emp.ID); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		if err := s.employeeRepo.Delete(txCtx, emp.ID); err != nil {
			return err
		}
		if err := s.userRepo.Delete(txCtx, emp.UserID); err != nil {
			return err
		}
		return nil
	})
}
