package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance sessions.
type AttendanceRepository interface {
	// Create inserts a new open session
	Create(ctx context.Context, session Session) (Session, error)

	// CloseOpenSessions closes, atomically, every open session of the employee
	// on the given day with checkOut, computing DailyHours per session.
	// Returns ErrNoActiveSession when nothing was open.
	CloseOpenSessions(ctx context.Context, employeeID int64, date time.Time, checkOut time.Time) ([]Session, error)

	// ListByEmployeeAndRange returns sessions with from <= date < to,
	// ordered by date then check-in time
	ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]Session, error)

	// CloseStaleSessions closes sessions dated before the cutoff that are still
	// open, with zero hours and check-out equal to check-in
	CloseStaleSessions(ctx context.Context, before time.Time) (int64, error)
}
