package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWritePayroll(t *testing.T) {
	// Setup
	m := period.Month{Year: 2025, Month: time.November}
	summaries := []salary.SalarySummary{
		{EmployeeID: 1, EmployeeName: "Jane", GrossSalary: decimal.NewFromInt(3000), Deductions: decimal.NewFromInt(275), NetSalary: decimal.NewFromInt(2725), Period: m},
		{EmployeeID: 2, EmployeeName: "John", GrossSalary: decimal.RequireFromString("1750.50"), Deductions: decimal.Zero, NetSalary: decimal.RequireFromString("1750.50"), Period: m},
	}
	var buf bytes.Buffer

	// Act
	err := WritePayroll(&buf, m, summaries)
	require.NoError(t, err)

	// Assert
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payroll 2025-11", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "Jane", rows[1][1])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "2", rows[3][1])
	assert.Equal(t, "4750.5", rows[3][2])
	assert.Equal(t, "4475.5", rows[3][4])
}

func TestWritePayroll_Empty(t *testing.T) {
	var buf bytes.Buffer
	m := period.Month{Year: 2025, Month: time.October}

	require.NoError(t, WritePayroll(&buf, m, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName(m), excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Total", rows[1][0])
	assert.Equal(t, "payroll-2025-10.xlsx", FileName(m))
}
