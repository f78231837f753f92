package user

import (
	"context"
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}
