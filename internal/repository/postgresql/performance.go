package postgresql

import (
	"context"

	"github.com/google/uuid"
	"github.com/peoplecore/hrms-backend-go/internal/domain/performance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, newReview performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (id, employee_id, reviewer_id, rating, comments, review_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, reviewer_id, rating, comments, review_date, created_at, updated_at
	`

	var created performance.Review
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newReview.EmployeeID,
		newReview.ReviewerID,
		newReview.Rating,
		newReview.Comments,
		newReview.ReviewDate,
	).Scan(
		&created.ID, &created.EmployeeID, &created.ReviewerID, &created.Rating,
		&created.Comments, &created.ReviewDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return performance.Review{}, err
	}

	return created, nil
}

// List implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) List(ctx context.Context) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.rating, pr.comments,
			   pr.review_date, pr.created_at, pr.updated_at,
			   e.first_name, e.last_name, e.job_title,
			   u.name, u.email
		FROM performance_reviews pr
		JOIN employees e ON e.id = pr.employee_id
		JOIN users u ON u.id = pr.reviewer_id
		ORDER BY pr.review_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var rev performance.Review
		if err := rows.Scan(
			&rev.ID, &rev.EmployeeID, &rev.ReviewerID, &rev.Rating, &rev.Comments,
			&rev.ReviewDate, &rev.CreatedAt, &rev.UpdatedAt,
			&rev.EmployeeFirstName, &rev.EmployeeLastName, &rev.EmployeeJobTitle,
			&rev.ReviewerName, &rev.ReviewerEmail,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}

// ListByEmployee implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.rating, pr.comments,
			   pr.review_date, pr.created_at, pr.updated_at,
			   u.name, u.email
		FROM performance_reviews pr
		JOIN users u ON u.id = pr.reviewer_id
		WHERE pr.employee_id = $1
		ORDER BY pr.review_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var rev performance.Review
		if err := rows.Scan(
			&rev.ID, &rev.EmployeeID, &rev.ReviewerID, &rev.Rating, &rev.Comments,
			&rev.ReviewDate, &rev.CreatedAt, &rev.UpdatedAt,
			&rev.ReviewerName, &rev.ReviewerEmail,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}

// DeleteByEmployee implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE employee_id = $1`, employeeID)
	return err
}

// DeleteByReviewer implements performance.ReviewRepository. Needed before a
// user row can go; reviewer_id carries a foreign key to users.
func (r *reviewRepositoryImpl) DeleteByReviewer(ctx context.Context, reviewerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE reviewer_id = $1`, reviewerID)
	return err
}
