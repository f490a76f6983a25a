package salary

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

type PolicyName string

const (
	PolicyOvertimeSplit PolicyName = "overtime_split"
	PolicyFlatRate      PolicyName = "flat_rate"
)

func (p PolicyName) IsValid() bool {
	return p == PolicyOvertimeSplit || p == PolicyFlatRate
}

// HoursPolicy turns the hours worked in a month into pay.
type HoursPolicy interface {
	Name() PolicyName
	ComputeWorkingHoursPay(totalHours decimal.Decimal, emp employee.Employee, s settings.AdminSettings) HoursPay
}
