package salary

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolveDeductions prices each applicable rule against the pre-deduction
// gross, so the total does not depend on rule order.
func ResolveDeductions(rules []deduction.Rule, employeeID int64, month string, grossPreDeduction, hourlyRate decimal.Decimal) salary.DeductionBreakdown {
	out := salary.DeductionBreakdown{
		Total:   decimal.Zero,
		Details: make([]salary.DeductionDetail, 0, len(rules)),
	}

	for _, rule := range rules {
		if !rule.AppliesTo(employeeID, month) {
			continue
		}

		var amount decimal.Decimal
		switch {
		case rule.IsHourBased():
			amount = rule.HoursDeducted.Mul(hourlyRate)
		case rule.Type == deduction.TypePercentage:
			amount = rule.Amount.Div(hundred).Mul(grossPreDeduction)
		default:
			amount = rule.Amount
		}

		out.Details = append(out.Details, salary.DeductionDetail{
			ID:               rule.ID,
			Name:             rule.Name,
			Type:             rule.Type,
			Value:            rule.Amount,
			HoursDeducted:    rule.HoursDeducted,
			CompanyWide:      rule.IsCompanyWide(),
			CalculatedAmount: amount,
		})
		out.Total = out.Total.Add(amount)
	}

	return out
}
