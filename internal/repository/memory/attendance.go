package memory

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timestamp()
	s.ID = r.store.nextID()
	s.Date = period.Day(s.Date)
	s.CreatedAt = now
	s.UpdatedAt = now
	r.store.sessions[s.ID] = s
	return s, nil
}

// CloseOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepository) CloseOpenSessions(ctx context.Context, employeeID int64, date time.Time, checkOut time.Time) ([]attendance.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	day := period.Day(date)
	now := r.store.timestamp()
	var closed []attendance.Session
	for id, s := range r.store.sessions {
		if s.EmployeeID != employeeID || !s.Date.Equal(day) || !s.IsOpen() {
			continue
		}
		out := checkOut
		s.CheckOutTime = &out
		s.DailyHours = attendance.SessionHours(s.CheckInTime, checkOut)
		s.UpdatedAt = now
		r.store.sessions[id] = s
		closed = append(closed, s)
	}

	if len(closed) == 0 {
		return nil, attendance.ErrNoActiveSession
	}
	sortSessions(closed)
	return closed, nil
}

// ListByEmployeeAndRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID int64, from, to time.Time) ([]attendance.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := []attendance.Session{}
	for _, s := range r.store.sessions {
		if s.EmployeeID == employeeID && !s.Date.Before(from) && s.Date.Before(to) {
			out = append(out, s)
		}
	}
	sortSessions(out)
	return out, nil
}

// CloseStaleSessions implements attendance.AttendanceRepository.
func (r *attendanceRepository) CloseStaleSessions(ctx context.Context, before time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timestamp()
	var count int64
	for id, s := range r.store.sessions {
		if !s.IsOpen() || !s.Date.Before(before) {
			continue
		}
		out := s.CheckInTime
		s.CheckOutTime = &out
		s.DailyHours = decimal.Zero
		s.UpdatedAt = now
		r.store.sessions[id] = s
		count++
	}
	return count, nil
}

func sortSessions(sessions []attendance.Session) {
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.Before(sessions[j].Date)
		}
		if !sessions[i].CheckInTime.Equal(sessions[j].CheckInTime) {
			return sessions[i].CheckInTime.Before(sessions[j].CheckInTime)
		}
		return sessions[i].ID < sessions[j].ID
	})
}
