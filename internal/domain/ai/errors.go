package ai

import "errors"

var (
	ErrNoReviews      = errors.New("no performance reviews found to analyze")
	ErrMissingFile    = errors.New("no file uploaded")
	ErrMissingJobDesc = errors.New("no job description provided")
)
