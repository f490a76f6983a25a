package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/jackc/pgx/v5"
)

const sessionColumns = `id, employee_id, date, check_in_time, check_out_time, daily_hours, created_at, updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanSession(row pgx.Row) (attendance.Session, error) {
	var s attendance.Session
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.CheckInTime, &s.CheckOutTime,
		&s.DailyHours, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func collectSessions(rows pgx.Rows) ([]attendance.Session, error) {
	defer rows.Close()

	sessions := []attendance.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_sessions (employee_id, date, check_in_time, daily_hours, created_at, updated_at)
		VALUES ($1, $2, $3, 0, NOW(), NOW())
		RETURNING ` + sessionColumns

	created, err := scanSession(q.QueryRow(ctx, query,
		session.EmployeeID, period.Day(session.Date), session.CheckInTime,
	))
	if err != nil {
		if pgErrorCode(err) == codeForeignKeyViolation {
			return attendance.Session{}, employee.ErrEmployeeNotFound
		}
		return attendance.Session{}, err
	}
	return created, nil
}

// CloseOpenSessions implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CloseOpenSessions(ctx context.Context, employeeID int64, date time.Time, checkOut time.Time) ([]attendance.Session, error) {
	var closed []attendance.Session

	err := WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, a.db)

		rows, err := q.Query(txCtx, `
			SELECT `+sessionColumns+`
			FROM attendance_sessions
			WHERE employee_id = $1 AND date = $2 AND check_out_time IS NULL
			ORDER BY check_in_time
			FOR UPDATE
		`, employeeID, period.Day(date))
		if err != nil {
			return err
		}
		open, err := collectSessions(rows)
		if err != nil {
			return err
		}
		if len(open) == 0 {
			return attendance.ErrNoActiveSession
		}

		for _, s := range open {
			hours := attendance.SessionHours(s.CheckInTime, checkOut)
			updated, err := scanSession(q.QueryRow(txCtx, `
				UPDATE attendance_sessions
				SET check_out_time = $1, daily_hours = $2, updated_at = NOW()
				WHERE id = $3
				RETURNING `+sessionColumns,
				checkOut, hours, s.ID,
			))
			if err != nil {
				return fmt.Errorf("failed to close session %d: %w", s.ID, err)
			}
			closed = append(closed, updated)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM attendance_sessions
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, check_in_time
	`, employeeID, period.Day(from), period.Day(to))
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// CloseStaleSessions implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CloseStaleSessions(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE attendance_sessions
		SET check_out_time = check_in_time, daily_hours = 0, updated_at = NOW()
		WHERE check_out_time IS NULL AND date < $1
	`, period.Day(before))
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}
