package performance

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, newReview Review) (Review, error)
	List(ctx context.Context) ([]Review, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Review, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
	DeleteByReviewer(ctx context.Context, reviewerID string) error
}
