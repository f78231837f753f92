package employee

import (
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Department string

const (
	DepartmentEngineering Department = "Engineering"
	DepartmentHR          Department = "HR"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentManagement  Department = "Management"
)

// ValidDepartments lists every department an employee may belong to.
var ValidDepartments = []Department{
	DepartmentEngineering,
	DepartmentHR,
	DepartmentMarketing,
	DepartmentSales,
	DepartmentManagement,
}

func IsValidDepartment(d Department) bool {
	for _, dep := range ValidDepartments {
		if dep == d {
			return true
		}
	}
	return false
}

type Employee struct {
	ID           string
	UserID       string
	FirstName    string
	LastName     string
	Email        string
	EmployeeCode string
	JobTitle     string
	Department   Department
	Salary       decimal.Decimal
	JoiningDate  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	Role user.Role
}
