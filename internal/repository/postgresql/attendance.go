package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplecore/hrms-backend-go/internal/domain/attendance"
	"github.com/peoplecore/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. A unique index on
// (employee_id, date) backs up the service-level pre-check.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status, check_in, check_out)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, employee_id, date, status, check_in, check_out, created_at, updated_at
	`

	var created attendance.Attendance
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.Status,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Status,
		&created.CheckIn, &created.CheckOut, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, err
	}

	return created, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in, a.check_out,
			   a.created_at, a.updated_at,
			   e.first_name, e.last_name, e.job_title
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, e.first_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut,
			&a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeFirstName, &a.EmployeeLastName, &a.EmployeeJobTitle,
		); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM attendance_records WHERE employee_id = $1 AND date = $2)`,
		employeeID, date,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE employee_id = $1`, employeeID)
	return err
}
