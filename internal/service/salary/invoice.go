package salary

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/google/uuid"
)

// buildInvoice lays out the snapshot behind report line by line. Totals are
// copied from report, never recomputed.
func buildInvoice(snap snapshot, report salary.SalaryReport, now time.Time) (salary.Invoice, error) {
	number, err := uuid.NewV7()
	if err != nil {
		return salary.Invoice{}, fmt.Errorf("failed to generate invoice number: %w", err)
	}

	sessions := make([]salary.InvoiceSession, 0, len(snap.sessions))
	for _, s := range snap.sessions {
		sessions = append(sessions, salary.InvoiceSession{
			Date:     period.FormatDate(s.Date),
			CheckIn:  s.CheckInTime,
			CheckOut: *s.CheckOutTime,
			Hours:    s.DailyHours,
		})
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date < sessions[j].Date
		}
		return sessions[i].CheckIn.Before(sessions[j].CheckIn)
	})

	month := snap.month.String()
	emp := snap.employee

	return salary.Invoice{
		InvoiceNumber: number.String(),
		GeneratedAt:   now.UTC(),
		Period:        snap.month,
		Employee: salary.InvoiceEmployee{
			ID:           emp.ID,
			Name:         emp.Name,
			Username:     emp.Username,
			EmployeeType: string(emp.EmployeeType),
		},
		Sessions:         sessions,
		Attendance:       report.Attendance,
		Tasks:            TaskLines(snap.tasks, emp, snap.settings, month),
		Responsibilities: ResponsibilityLines(snap.responsibilities, emp, month),
		Deductions:       report.Deductions.Details,
		Salary: salary.InvoiceSalary{
			Base:                   report.BaseSalary,
			WorkingHoursPay:        report.Attendance.WorkingHoursPay,
			TaskEarnings:           report.Tasks.TotalEarnings,
			ResponsibilityEarnings: report.Responsibilities.TotalEarnings,
			Gross:                  report.GrossSalary,
			Deductions:             report.Deductions.Total,
			Net:                    report.NetSalary,
		},
	}, nil
}
