package responsibility

import (
	"time"

	"github.com/shopspring/decimal"
)

// Responsibility is a recurring duty paid once for the month it belongs to.
type Responsibility struct {
	ID           int64
	Name         string
	Description  *string
	MonthlyPrice decimal.Decimal
	EmployeeID   int64
	Factor       *decimal.Decimal
	Status       Status
	Month        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type Patch struct {
	ID           int64
	Name         *string
	Description  *string
	MonthlyPrice *decimal.Decimal
	EmployeeID   *int64
	Factor       *decimal.Decimal
	Status       *Status
	Month        *string
}

type Filter struct {
	EmployeeID *int64
	Month      *string
}

// Detail is a responsibility joined with its employee's name.
type Detail struct {
	Responsibility
	EmployeeName string
}
