package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeFixed Type = "fixed"
	// TypePercentage is kept for rules created before fixed amounts became the only option.
	TypePercentage Type = "percentage"
)

func (t Type) IsValid() bool {
	return t == TypeFixed || t == TypePercentage
}

// Rule is a charge against salary for one month. A nil EmployeeID makes the
// rule company-wide.
type Rule struct {
	ID            int64
	Name          string
	Description   *string
	Type          Type
	Amount        decimal.Decimal
	EmployeeID    *int64
	IsActive      bool
	Month         string
	HoursDeducted *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r Rule) IsCompanyWide() bool {
	return r.EmployeeID == nil
}

// AppliesTo reports whether the rule charges employeeID in month.
func (r Rule) AppliesTo(employeeID int64, month string) bool {
	if !r.IsActive || r.Month != month {
		return false
	}
	return r.EmployeeID == nil || *r.EmployeeID == employeeID
}

// IsHourBased reports whether the rule is priced from deducted hours.
func (r Rule) IsHourBased() bool {
	return r.HoursDeducted != nil && r.HoursDeducted.IsPositive()
}

type Patch struct {
	ID            int64
	Name          *string
	Description   *string
	Type          *Type
	Amount        *decimal.Decimal
	EmployeeID    *int64
	CompanyWide   bool
	IsActive      *bool
	Month         *string
	HoursDeducted *decimal.Decimal
}

type Filter struct {
	Month *string
	// EmployeeID restricts the list to the employee's own rules plus company-wide rules.
	EmployeeID *int64
}

// Detail is a rule joined with the name of the employee it targets.
type Detail struct {
	Rule
	EmployeeName *string
}
