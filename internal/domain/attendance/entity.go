package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
)

func IsValidStatus(s Status) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusLeave
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CheckIn    *time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Join
	EmployeeFirstName string
	EmployeeLastName  string
	EmployeeJobTitle  string
}
