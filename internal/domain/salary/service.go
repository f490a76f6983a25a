package salary

import "context"

type SalaryService interface {
	// CalculateSalaryForEmployee computes the report for month ("YYYY-MM",
	// empty for the current month). A missing employee aborts the report.
	CalculateSalaryForEmployee(ctx context.Context, employeeID int64, month string) (SalaryReport, error)

	// CalculateAllSalaries computes a summary per employee, in employee order
	CalculateAllSalaries(ctx context.Context, month string) ([]SalarySummary, error)

	// GenerateEmployeeInvoice explains the same figures as the report
	GenerateEmployeeInvoice(ctx context.Context, employeeID int64, month string) (Invoice, error)
}
