package task

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// Template is a reusable task definition with its payout.
type Template struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Factor      *decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TemplateWithStats carries the number of assignments not yet done.
type TemplateWithStats struct {
	Template
	ActiveAssignments int64
}

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
	StatusCompleted  Status = "Completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether the status counts as completed work.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCompleted
}

// Assignment is one template instance assigned to one employee.
type Assignment struct {
	ID             int64
	TemplateID     int64
	EmployeeID     int64
	Status         Status
	DueDate        *time.Time
	Notes          *string
	CompletedAt    *time.Time
	CompletedMonth *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AssignmentDetail is an assignment joined with its template and employee.
type AssignmentDetail struct {
	Assignment
	TemplateName string
	EmployeeName string
	Price        decimal.Decimal
	Factor       *decimal.Decimal
}

// CompletedAssignment is the payroll view of a finished assignment.
type CompletedAssignment struct {
	AssignmentID   int64
	EmployeeID     int64
	TemplateName   string
	Status         Status
	Price          decimal.Decimal
	Factor         *decimal.Decimal
	CompletedAt    *time.Time
	CompletedMonth string
}

type TemplatePatch struct {
	ID          int64
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Factor      *decimal.Decimal
	IsActive    *bool
}

type AssignmentFilter struct {
	EmployeeID *int64
	Status     *Status
	// Date matches assignments due on, or completed on, that day.
	Date *time.Time
}

// TransitionTo moves the assignment to status s. Completion is stamped on the
// first arrival at a terminal status and kept on later updates; a terminal
// assignment cannot move back to Pending or In Progress.
func (a Assignment) TransitionTo(s Status, now time.Time) (Assignment, error) {
	if a.Status.IsTerminal() && !s.IsTerminal() {
		return a, ErrInvalidStatusTransition
	}
	if s.IsTerminal() && a.CompletedAt == nil {
		completedAt := now.UTC()
		month := period.Of(completedAt).String()
		a.CompletedAt = &completedAt
		a.CompletedMonth = &month
	}
	a.Status = s
	return a, nil
}
