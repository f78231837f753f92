package performance

import "time"

type Review struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Rating     int
	Comments   string
	ReviewDate time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeFirstName string
	EmployeeLastName  string
	EmployeeJobTitle  string
	ReviewerName      string
	ReviewerEmail     string
}
