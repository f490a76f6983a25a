// Package export writes payroll summaries as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var columns = []string{"Employee ID", "Employee", "Gross salary", "Deductions", "Net salary"}

// SheetName is the name of the only sheet in an exported workbook.
func SheetName(m period.Month) string {
	return "Payroll " + m.String()
}

// FileName is the attachment name used for the month's export.
func FileName(m period.Month) string {
	return fmt.Sprintf("payroll-%s.xlsx", m)
}

// WritePayroll writes one row per summary followed by a totals row.
func WritePayroll(w io.Writer, m period.Month, summaries []salary.SalarySummary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(m)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	moneyFmt := "#,##0.00"
	money, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	gross, deductions, net := decimal.Zero, decimal.Zero, decimal.Zero
	for i, s := range summaries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{s.EmployeeID, s.EmployeeName, s.GrossSalary.InexactFloat64(), s.Deductions.InexactFloat64(), s.NetSalary.InexactFloat64()}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		gross = gross.Add(s.GrossSalary)
		deductions = deductions.Add(s.Deductions)
		net = net.Add(s.NetSalary)
	}

	last := len(summaries) + 2
	totalCell, _ := excelize.CoordinatesToCellName(1, last)
	totals := []interface{}{"Total", len(summaries), gross.InexactFloat64(), deductions.InexactFloat64(), net.InexactFloat64()}
	if err := f.SetSheetRow(sheet, totalCell, &totals); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}

	endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, bold); err != nil {
		return err
	}
	endCell, _ = excelize.CoordinatesToCellName(len(columns), last)
	if err := f.SetCellStyle(sheet, "C2", endCell, money); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, totalCell, totalCell, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "E", 16); err != nil {
		return err
	}

	return f.Write(w)
}
