package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
}
