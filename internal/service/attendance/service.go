package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Mark implements attendance.AttendanceService. The same-day check runs before
// the insert; the unique index on (employee_id, date) catches the race between
// the check and the write.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	exists, err := s.attendanceRepo.ExistsByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyMarked
	}

	checkIn := time.Now()
	if req.CheckIn != "" {
		parsed, err := time.Parse(time.RFC3339, req.CheckIn)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse check-in time: %w", err)
		}
		checkIn = parsed
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     req.Status,
		CheckIn:    &checkIn,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.ToResponse(a))
	}

	return responses, nil
}
