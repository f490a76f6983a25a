// Package payslip renders salary invoices as printable PDF documents.
package payslip

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
	pageWidth  = 190.0
)

// Render writes the invoice as an A4 PDF to w.
func Render(w io.Writer, inv salary.Invoice) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payslip %s %s", inv.Employee.Name, inv.Period), true)
	pdf.AddPage()

	header(pdf, inv)
	sessions(pdf, inv.Sessions, inv.Attendance)
	earnings(pdf, "Tasks", inv.Tasks)
	earnings(pdf, "Responsibilities", inv.Responsibilities)
	deductions(pdf, inv.Deductions)
	totals(pdf, inv.Salary)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render payslip: %w", err)
	}
	return pdf.Output(w)
}

func header(pdf *gofpdf.Fpdf, inv salary.Invoice) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont(fontFamily, "", 10)
	rows := [][2]string{
		{"Invoice", inv.InvoiceNumber},
		{"Generated", inv.GeneratedAt.Format("2006-01-02 15:04 MST")},
		{"Period", inv.Period.String()},
		{"Employee", fmt.Sprintf("%s (%s)", inv.Employee.Name, inv.Employee.Username)},
		{"Type", inv.Employee.EmployeeType},
	}
	for _, row := range rows {
		pdf.CellFormat(35, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(0, 9, title, "B", 1, "L", false, 0, "")
	pdf.SetFont(fontFamily, "", 10)
}

func tableHeader(pdf *gofpdf.Fpdf, widths []float64, titles ...string) {
	pdf.SetFont(fontFamily, "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, title := range titles {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], lineHeight, title, "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 10)
}

func tableRow(pdf *gofpdf.Fpdf, widths []float64, cells ...string) {
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], lineHeight, cell, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func sessions(pdf *gofpdf.Fpdf, items []salary.InvoiceSession, att salary.AttendanceBreakdown) {
	section(pdf, "Attendance")
	widths := []float64{55, 45, 45, 45}

	if len(items) == 0 {
		pdf.CellFormat(0, lineHeight, "No closed sessions this month.", "", 1, "L", false, 0, "")
	} else {
		tableHeader(pdf, widths, "Date", "Check in", "Check out", "Hours")
		for _, s := range items {
			tableRow(pdf, widths, s.Date, s.CheckIn.Format("15:04"), s.CheckOut.Format("15:04"), s.Hours.StringFixed(2))
		}
	}

	pdf.Ln(2)
	summary := [][2]string{
		{"Total hours", att.TotalHours.StringFixed(2)},
		{"Normal hours", fmt.Sprintf("%s x %s = %s", att.NormalHours.StringFixed(2), money(att.NormalRate), money(att.NormalPay))},
		{"Overtime hours", fmt.Sprintf("%s x %s = %s", att.OvertimeHours.StringFixed(2), money(att.OvertimeRate), money(att.OvertimePay))},
		{"Working hours pay", money(att.WorkingHoursPay)},
	}
	for _, row := range summary {
		pdf.CellFormat(55, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, lineHeight, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func earnings(pdf *gofpdf.Fpdf, title string, lines []salary.EarningLine) {
	if len(lines) == 0 {
		return
	}
	section(pdf, title)
	widths := []float64{85, 35, 35, 35}
	tableHeader(pdf, widths, "Name", "Price", "Factor", "Amount")
	for _, line := range lines {
		tableRow(pdf, widths, line.Name, money(line.Price), line.Factor.String(), money(line.Amount))
	}
	pdf.Ln(4)
}

func deductions(pdf *gofpdf.Fpdf, details []salary.DeductionDetail) {
	if len(details) == 0 {
		return
	}
	section(pdf, "Deductions")
	widths := []float64{85, 35, 35, 35}
	tableHeader(pdf, widths, "Name", "Type", "Hours", "Amount")
	for _, d := range details {
		hours := "-"
		if d.HoursDeducted != nil {
			hours = d.HoursDeducted.StringFixed(2)
		}
		name := d.Name
		if d.CompanyWide {
			name += " (company)"
		}
		tableRow(pdf, widths, name, string(d.Type), hours, money(d.CalculatedAmount))
	}
	pdf.Ln(4)
}

func totals(pdf *gofpdf.Fpdf, s salary.InvoiceSalary) {
	section(pdf, "Salary")
	rows := [][2]string{
		{"Base salary", money(s.Base)},
		{"Working hours pay", money(s.WorkingHoursPay)},
		{"Task earnings", money(s.TaskEarnings)},
		{"Responsibility earnings", money(s.ResponsibilityEarnings)},
		{"Gross salary", money(s.Gross)},
		{"Deductions", "-" + money(s.Deductions)},
	}
	for _, row := range rows {
		pdf.CellFormat(pageWidth-50, lineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(50, lineHeight, row[1], "", 1, "R", false, 0, "")
	}

	pdf.SetFont(fontFamily, "B", 12)
	pdf.CellFormat(pageWidth-50, 9, "Net salary", "T", 0, "L", false, 0, "")
	pdf.CellFormat(50, 9, money(s.Net), "T", 1, "R", false, 0, "")
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
