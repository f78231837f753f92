package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so the
	// two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoToken            = errors.New("authorization token required")
)
