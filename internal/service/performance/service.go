package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/auth"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/requestctx"
)

type PerformanceServiceImpl struct {
	reviewRepo   performance.ReviewRepository
	employeeRepo employee.EmployeeRepository
}

func NewPerformanceService(reviewRepo performance.ReviewRepository, employeeRepo employee.EmployeeRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements performance.PerformanceService. The reviewer is always
// the authenticated caller.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	account, ok := requestctx.Account(ctx)
	if !ok {
		return performance.ReviewResponse{}, auth.ErrInvalidToken
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.ReviewResponse{}, err
	}

	reviewDate := time.Now()
	if req.ReviewDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ReviewDate)
		if err != nil {
			return performance.ReviewResponse{}, fmt.Errorf("failed to parse review date: %w", err)
		}
		reviewDate = parsed
	}

	created, err := s.reviewRepo.Create(ctx, performance.Review{
		EmployeeID: req.EmployeeID,
		ReviewerID: account.ID,
		Rating:     req.Rating,
		Comments:   req.Comments,
		ReviewDate: reviewDate,
	})
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to create review: %w", err)
	}

	return performance.ToResponse(created), nil
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context) ([]performance.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		responses = append(responses, performance.ToResponse(rev))
	}

	return responses, nil
}

// MyReviews implements performance.PerformanceService.
func (s *PerformanceServiceImpl) MyReviews(ctx context.Context) ([]performance.ReviewResponse, error) {
	account, ok := requestctx.Account(ctx)
	if !ok {
		return nil, employee.ErrProfileNotFound
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, rev := range reviews {
		responses = append(responses, performance.ToResponse(rev))
	}

	return responses, nil
}
