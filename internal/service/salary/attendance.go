package salary

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// AttendanceAggregator sums an employee's recorded work for a month.
type AttendanceAggregator struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceAggregator(attendanceRepo attendance.AttendanceRepository) *AttendanceAggregator {
	return &AttendanceAggregator{attendanceRepo: attendanceRepo}
}

// ClosedSessions returns the month's sessions that have been checked out.
func (a *AttendanceAggregator) ClosedSessions(ctx context.Context, employeeID int64, month period.Month) ([]attendance.Session, error) {
	sessions, err := a.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, month.Start(), month.End())
	if err != nil {
		return nil, err
	}
	return closedIn(sessions, month), nil
}

// TotalHoursForMonth is zero, not an error, when nothing was recorded.
func (a *AttendanceAggregator) TotalHoursForMonth(ctx context.Context, employeeID int64, month period.Month) (decimal.Decimal, error) {
	sessions, err := a.ClosedSessions(ctx, employeeID, month)
	if err != nil {
		return decimal.Zero, err
	}
	return attendance.TotalHours(sessions), nil
}

func closedIn(sessions []attendance.Session, month period.Month) []attendance.Session {
	out := make([]attendance.Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsOpen() && month.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}
