package performance

import (
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID string `json:"employee_id"`
	Rating     int    `json:"rating"`
	Comments   string `json:"comments"`
	ReviewDate string `json:"review_date,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be an integer between 1 and 5"})
	}
	if validator.IsEmpty(r.Comments) {
		errs = append(errs, validator.ValidationError{Field: "comments", Message: "comments is required"})
	}
	if r.ReviewDate != "" {
		if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	ReviewerID string    `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comments   string    `json:"comments"`
	ReviewDate string    `json:"review_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	EmployeeFirstName string `json:"employee_first_name,omitempty"`
	EmployeeLastName  string `json:"employee_last_name,omitempty"`
	EmployeeJobTitle  string `json:"employee_job_title,omitempty"`
	ReviewerName      string `json:"reviewer_name,omitempty"`
	ReviewerEmail     string `json:"reviewer_email,omitempty"`
}

func ToResponse(r Review) ReviewResponse {
	return ReviewResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		ReviewerID:        r.ReviewerID,
		Rating:            r.Rating,
		Comments:          r.Comments,
		ReviewDate:        r.ReviewDate.Format("2006-01-02"),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
		EmployeeFirstName: r.EmployeeFirstName,
		EmployeeLastName:  r.EmployeeLastName,
		EmployeeJobTitle:  r.EmployeeJobTitle,
		ReviewerName:      r.ReviewerName,
		ReviewerEmail:     r.ReviewerEmail,
	}
}
