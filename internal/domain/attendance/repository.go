package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
