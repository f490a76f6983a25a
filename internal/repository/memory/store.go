package memory

import (
	"sync"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
)

// Store is a process-local database shared by every memory repository, so
// that cascades and joins behave like their PostgreSQL counterparts.
type Store struct {
	mu  sync.RWMutex
	seq int64
	now func() time.Time

	employees        map[int64]employee.Employee
	sessions         map[int64]attendance.Session
	templates        map[int64]task.Template
	assignments      map[int64]task.Assignment
	responsibilities map[int64]responsibility.Responsibility
	deductions       map[int64]deduction.Rule
	notes            map[int64]note.Note
	settings         *settings.AdminSettings
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a store whose timestamps come from now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		now:              now,
		employees:        make(map[int64]employee.Employee),
		sessions:         make(map[int64]attendance.Session),
		templates:        make(map[int64]task.Template),
		assignments:      make(map[int64]task.Assignment),
		responsibilities: make(map[int64]responsibility.Responsibility),
		deductions:       make(map[int64]deduction.Rule),
		notes:            make(map[int64]note.Note),
	}
}

// nextID must be called with mu held for writing.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}
