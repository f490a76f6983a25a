package salary

import (
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy(t *testing.T) {
	cases := []struct {
		name    salary.PolicyName
		want    salary.PolicyName
		wantErr bool
	}{
		{"", salary.PolicyOvertimeSplit, false},
		{salary.PolicyOvertimeSplit, salary.PolicyOvertimeSplit, false},
		{salary.PolicyFlatRate, salary.PolicyFlatRate, false},
		{"piecework", "", true},
	}
	for _, c := range cases {
		p, err := NewPolicy(c.name)
		if c.wantErr {
			assert.ErrorIs(t, err, salary.ErrUnknownPolicy)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, p.Name())
	}
}

func TestOvertimeSplitPolicy(t *testing.T) {
	cases := []struct {
		hours, normal, overtime, pay string
	}{
		{"0", "0", "0", "0"},
		{"120.5", "120.5", "0", "1205"},
		{"160", "160", "0", "1600"},
		{"170", "160", "10", "1750"},
	}
	for _, c := range cases {
		got := OvertimeSplitPolicy{}.ComputeWorkingHoursPay(dec(c.hours), employee.Employee{}, settings.Defaults())
		assertDecimal(t, c.normal, got.NormalHours, "normal hours for "+c.hours)
		assertDecimal(t, c.overtime, got.OvertimeHours, "overtime hours for "+c.hours)
		assertDecimal(t, c.pay, got.WorkingHoursPay, "pay for "+c.hours)
		assertDecimal(t, "10", got.DeductionRate, "deduction rate")
	}
}

func TestOvertimeSplitPolicy_ZeroOverrideIsNotAFallback(t *testing.T) {
	emp := employee.Employee{NormalHourRate: decPtr("0")}

	got := OvertimeSplitPolicy{}.ComputeWorkingHoursPay(dec("10"), emp, settings.Defaults())

	assertDecimal(t, "0", got.NormalRate, "normal rate")
	assertDecimal(t, "0", got.WorkingHoursPay, "pay")
}

func TestFlatRatePolicy(t *testing.T) {
	t.Run("falls back to the normal rate", func(t *testing.T) {
		got := FlatRatePolicy{}.ComputeWorkingHoursPay(dec("170"), employee.Employee{}, settings.Defaults())
		assertDecimal(t, "1700", got.WorkingHoursPay, "pay")
		assertDecimal(t, "0", got.OvertimePay, "overtime pay")
	})

	t.Run("uses the employee hourly rate", func(t *testing.T) {
		emp := employee.Employee{HourlyRate: decPtr("7.5")}
		got := FlatRatePolicy{}.ComputeWorkingHoursPay(dec("10"), emp, settings.Defaults())
		assertDecimal(t, "75", got.WorkingHoursPay, "pay")
		assertDecimal(t, "7.5", got.DeductionRate, "deduction rate")
	})
}
