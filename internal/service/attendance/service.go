package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

const DefaultStaleAfterDays = 2

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	staleAfterDays int
	now            func() time.Time
}

type Option func(*AttendanceServiceImpl)

// WithStaleAfterDays sets how long a session may stay open before the
// cleanup job closes it.
func WithStaleAfterDays(days int) Option {
	return func(s *AttendanceServiceImpl) {
		if days > 0 {
			s.staleAfterDays = days
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *AttendanceServiceImpl) {
		s.now = now
	}
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository, opts ...Option) *AttendanceServiceImpl {
	s := &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		staleAfterDays: DefaultStaleAfterDays,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// resolveInstant parses an ISO8601 timestamp or falls back to now.
func (s *AttendanceServiceImpl) resolveInstant(value string) time.Time {
	if value == "" {
		return s.now().UTC()
	}
	t, _ := time.Parse(time.RFC3339Nano, value)
	return t.UTC()
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.SessionResponse{}, err
	}

	date, err := period.ParseDate(req.Date, s.now())
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	session, err := s.attendanceRepo.Create(ctx, attendance.Session{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		CheckInTime: s.resolveInstant(req.CheckInTime),
		DailyHours:  decimal.Zero,
	})
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	slog.Info("Check-in recorded", "employee_id", session.EmployeeID, "session_id", session.ID, "date", period.FormatDate(session.Date))
	return attendance.NewSessionResponse(session), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	date, err := period.ParseDate(req.Date, s.now())
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	closed, err := s.attendanceRepo.CloseOpenSessions(ctx, req.EmployeeID, date, s.resolveInstant(req.CheckOutTime))
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	total := attendance.TotalHours(closed)
	slog.Info("Check-out recorded", "employee_id", req.EmployeeID, "sessions_closed", len(closed), "hours", total.String())
	return attendance.CheckOutResponse{
		ClosedSessions: attendance.NewSessionResponses(closed),
		TotalHours:     total,
	}, nil
}

// ListByMonth implements attendance.AttendanceService. Newest sessions come first.
func (s *AttendanceServiceImpl) ListByMonth(ctx context.Context, employeeID int64, month string) ([]attendance.SessionResponse, error) {
	m, err := period.Resolve(month, s.now())
	if err != nil {
		return nil, err
	}

	sessions, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	slices.Reverse(sessions)
	return attendance.NewSessionResponses(sessions), nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, employeeID int64) ([]attendance.SessionResponse, error) {
	today := period.Day(s.now())

	sessions, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.NewSessionResponses(sessions), nil
}

// MonthlyTotal implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyTotal(ctx context.Context, employeeID int64, month string) (attendance.MonthlyTotalResponse, error) {
	m, err := period.Resolve(month, s.now())
	if err != nil {
		return attendance.MonthlyTotalResponse{}, err
	}

	sessions, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return attendance.MonthlyTotalResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	closedCount := 0
	days := make(map[string]struct{})
	for _, session := range sessions {
		if session.IsOpen() {
			continue
		}
		closedCount++
		days[period.FormatDate(session.Date)] = struct{}{}
	}

	total := attendance.TotalHours(sessions)
	avg := decimal.Zero
	if len(days) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(days)))).Round(2)
	}

	return attendance.MonthlyTotalResponse{
		EmployeeID:     employeeID,
		Month:          m,
		TotalSessions:  closedCount,
		TotalHours:     total,
		DaysWorked:     len(days),
		AvgHoursPerDay: avg,
	}, nil
}

// CloseStaleSessions implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CloseStaleSessions(ctx context.Context) (int64, error) {
	cutoff := period.Day(s.now()).AddDate(0, 0, -s.staleAfterDays)

	closed, err := s.attendanceRepo.CloseStaleSessions(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to close stale sessions: %w", err)
	}
	return closed, nil
}
