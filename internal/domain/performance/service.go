package performance

import "context"

type PerformanceService interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	List(ctx context.Context) ([]ReviewResponse, error)
	MyReviews(ctx context.Context) ([]ReviewResponse, error)
}
