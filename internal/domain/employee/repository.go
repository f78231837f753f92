package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// NextEmployeeCode allocates the next code from an atomic database
	// sequence, so concurrent creates can never observe the same ordinal.
	NextEmployeeCode(ctx context.Context) (string, error)
}
