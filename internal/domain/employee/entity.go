package employee

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           int64
	Name         string
	Username     string
	Email        *string
	PasswordHash string
	EmployeeType EmployeeType
	BaseSalary   decimal.Decimal

	// Optional pay overrides. A nil value means the admin settings apply.
	MonthlyFactor        *decimal.Decimal
	OvertimeFactor       *decimal.Decimal
	NormalHourRate       *decimal.Decimal
	OvertimeHourRate     *decimal.Decimal
	RequiredMonthlyHours *decimal.Decimal
	HourlyRate           *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmployeeType string

const (
	TypeAdmin      EmployeeType = "Admin"
	TypeManagerial EmployeeType = "Managerial"
	TypeEmployee   EmployeeType = "Employee"
)

func (t EmployeeType) IsValid() bool {
	switch t {
	case TypeAdmin, TypeManagerial, TypeEmployee:
		return true
	}
	return false
}

// Role is the authorization role derived from the employee type.
func (t EmployeeType) Role() Role {
	return Role(strings.ToLower(string(t)))
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManagerial Role = "managerial"
	RoleEmployee   Role = "employee"
)

// CanManage reports whether the role may act on other employees' records.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManagerial
}

// Patch holds the fields of an update; nil fields are left untouched.
type Patch struct {
	ID           int64
	Name         *string
	Username     *string
	Email        *string
	PasswordHash *string
	EmployeeType *EmployeeType
	BaseSalary   *decimal.Decimal

	MonthlyFactor        *decimal.Decimal
	OvertimeFactor       *decimal.Decimal
	NormalHourRate       *decimal.Decimal
	OvertimeHourRate     *decimal.Decimal
	RequiredMonthlyHours *decimal.Decimal
	HourlyRate           *decimal.Decimal

	// ResetRates clears every pay override so the admin settings apply again.
	ResetRates bool
}

// Apply returns e with the patch applied.
func (p Patch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Username != nil {
		e.Username = *p.Username
	}
	if p.Email != nil {
		e.Email = p.Email
	}
	if p.PasswordHash != nil {
		e.PasswordHash = *p.PasswordHash
	}
	if p.EmployeeType != nil {
		e.EmployeeType = *p.EmployeeType
	}
	if p.BaseSalary != nil {
		e.BaseSalary = *p.BaseSalary
	}
	if p.ResetRates {
		e.MonthlyFactor = nil
		e.OvertimeFactor = nil
		e.NormalHourRate = nil
		e.OvertimeHourRate = nil
		e.RequiredMonthlyHours = nil
		e.HourlyRate = nil
	}
	if p.MonthlyFactor != nil {
		e.MonthlyFactor = p.MonthlyFactor
	}
	if p.OvertimeFactor != nil {
		e.OvertimeFactor = p.OvertimeFactor
	}
	if p.NormalHourRate != nil {
		e.NormalHourRate = p.NormalHourRate
	}
	if p.OvertimeHourRate != nil {
		e.OvertimeHourRate = p.OvertimeHourRate
	}
	if p.RequiredMonthlyHours != nil {
		e.RequiredMonthlyHours = p.RequiredMonthlyHours
	}
	if p.HourlyRate != nil {
		e.HourlyRate = p.HourlyRate
	}
	return e
}
