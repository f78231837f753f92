package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	// ErrAlreadyMarked covers both the pre-insert range check and the unique
	// index on (employee_id, date); callers cannot tell the two apart.
	ErrAlreadyMarked = errors.New("attendance already marked for this employee today")
)
