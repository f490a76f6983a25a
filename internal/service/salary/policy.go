package salary

import (
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/shopspring/decimal"
)

// NewPolicy returns the HoursPolicy registered under name.
func NewPolicy(name salary.PolicyName) (salary.HoursPolicy, error) {
	switch name {
	case salary.PolicyOvertimeSplit, "":
		return OvertimeSplitPolicy{}, nil
	case salary.PolicyFlatRate:
		return FlatRatePolicy{}, nil
	}
	return nil, fmt.Errorf("%w: %q", salary.ErrUnknownPolicy, name)
}

// OvertimeSplitPolicy pays hours up to the monthly threshold at the normal
// rate and every hour beyond it at the overtime rate.
type OvertimeSplitPolicy struct{}

func (OvertimeSplitPolicy) Name() salary.PolicyName {
	return salary.PolicyOvertimeSplit
}

func (OvertimeSplitPolicy) ComputeWorkingHoursPay(totalHours decimal.Decimal, emp employee.Employee, s settings.AdminSettings) salary.HoursPay {
	threshold := valueOr(emp.RequiredMonthlyHours, s.OvertimeThresholdHours)
	normalRate := valueOr(emp.NormalHourRate, s.NormalHourRate)
	overtimeRate := valueOr(emp.OvertimeHourRate, s.OvertimeHourRate)

	normalHours := decimal.Min(totalHours, threshold)
	overtimeHours := decimal.Max(decimal.Zero, totalHours.Sub(threshold))
	normalPay := normalHours.Mul(normalRate)
	overtimePay := overtimeHours.Mul(overtimeRate)

	return salary.HoursPay{
		NormalHours:     normalHours,
		OvertimeHours:   overtimeHours,
		ThresholdHours:  threshold,
		NormalRate:      normalRate,
		OvertimeRate:    overtimeRate,
		NormalPay:       normalPay,
		OvertimePay:     overtimePay,
		WorkingHoursPay: normalPay.Add(overtimePay),
		DeductionRate:   normalRate,
	}
}

// FlatRatePolicy pays every hour at a single hourly rate.
type FlatRatePolicy struct{}

func (FlatRatePolicy) Name() salary.PolicyName {
	return salary.PolicyFlatRate
}

func (FlatRatePolicy) ComputeWorkingHoursPay(totalHours decimal.Decimal, emp employee.Employee, s settings.AdminSettings) salary.HoursPay {
	rate := valueOr(emp.HourlyRate, s.NormalHourRate)
	pay := totalHours.Mul(rate)

	return salary.HoursPay{
		NormalHours:     totalHours,
		OvertimeHours:   decimal.Zero,
		ThresholdHours:  decimal.Zero,
		NormalRate:      rate,
		OvertimeRate:    decimal.Zero,
		NormalPay:       pay,
		OvertimePay:     decimal.Zero,
		WorkingHoursPay: pay,
		DeductionRate:   rate,
	}
}

// valueOr substitutes fallback only when the employee-level value is unset.
func valueOr(v *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if v == nil {
		return fallback
	}
	return *v
}
