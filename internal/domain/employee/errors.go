package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrProfileNotFound    = errors.New("employee profile not found for this user")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrUserAlreadyLinked  = errors.New("user already has an employee profile")
)
