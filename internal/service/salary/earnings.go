package salary

import (
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// factorOf resolves item factor, then the employee's monthly factor, then 1.
func factorOf(item *decimal.Decimal, emp employee.Employee) decimal.Decimal {
	if item != nil {
		return *item
	}
	if emp.MonthlyFactor != nil {
		return *emp.MonthlyFactor
	}
	return one
}

// TaskLines prices the employee's assignments completed in month.
func TaskLines(tasks []task.CompletedAssignment, emp employee.Employee, s settings.AdminSettings, month string) []salary.EarningLine {
	var overtimeFactor *decimal.Decimal
	if s.AllowTaskOvertimeFactor && emp.OvertimeFactor != nil && emp.OvertimeFactor.IsPositive() {
		overtimeFactor = emp.OvertimeFactor
	}

	lines := make([]salary.EarningLine, 0, len(tasks))
	for _, t := range tasks {
		if !t.Status.IsTerminal() || t.CompletedMonth != month {
			continue
		}
		factor := factorOf(t.Factor, emp)
		amount := t.Price.Mul(factor)
		if overtimeFactor != nil {
			amount = amount.Mul(*overtimeFactor)
		}
		lines = append(lines, salary.EarningLine{
			ID:             t.AssignmentID,
			Name:           t.TemplateName,
			Price:          t.Price,
			Factor:         factor,
			OvertimeFactor: overtimeFactor,
			Amount:         amount,
			CompletedAt:    t.CompletedAt,
		})
	}
	return lines
}

// ResponsibilityLines prices every responsibility of month, whatever its status.
func ResponsibilityLines(items []responsibility.Responsibility, emp employee.Employee, month string) []salary.EarningLine {
	lines := make([]salary.EarningLine, 0, len(items))
	for _, r := range items {
		if r.Month != month {
			continue
		}
		factor := factorOf(r.Factor, emp)
		lines = append(lines, salary.EarningLine{
			ID:     r.ID,
			Name:   r.Name,
			Price:  r.MonthlyPrice,
			Factor: factor,
			Amount: r.MonthlyPrice.Mul(factor),
		})
	}
	return lines
}

// Breakdown totals a set of earning lines.
func Breakdown(lines []salary.EarningLine) salary.EarningsBreakdown {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return salary.EarningsBreakdown{Count: len(lines), TotalEarnings: total}
}
