package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/domain/user"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	exists, err := a.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.AuthResponse{}, user.ErrUserEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = user.RoleEmployee
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(created.ID, created.Email, created.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		ID:             created.ID,
		Name:           created.Name,
		Email:          created.Email,
		Role:           created.Role,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

// Login implements auth.AuthService. Unknown email and wrong password both
// surface as ErrInvalidCredentials.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AuthResponse{
		ID:             userData.ID,
		Name:           userData.Name,
		Email:          userData.Email,
		Role:           userData.Role,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}
