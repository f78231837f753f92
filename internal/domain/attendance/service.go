package attendance

import "context"

type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context) ([]AttendanceResponse, error)
}
