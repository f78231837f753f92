package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserEmailExists    = errors.New("email already registered")
	ErrRoleAccessRequired = errors.New("role not permitted for this resource")
)
