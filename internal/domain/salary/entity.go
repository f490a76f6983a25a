package salary

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

// SalaryReport is the computed pay of one employee for one month.
type SalaryReport struct {
	EmployeeID       int64               `json:"employee_id"`
	EmployeeName     string              `json:"employee_name"`
	Period           period.Month        `json:"period"`
	Policy           PolicyName          `json:"policy"`
	BaseSalary       decimal.Decimal     `json:"base_salary"`
	Attendance       AttendanceBreakdown `json:"attendance"`
	Tasks            EarningsBreakdown   `json:"tasks"`
	Responsibilities EarningsBreakdown   `json:"responsibilities"`
	Deductions       DeductionBreakdown  `json:"deductions"`
	GrossSalary      decimal.Decimal     `json:"gross_salary"`
	NetSalary        decimal.Decimal     `json:"net_salary"`
}

type AttendanceBreakdown struct {
	SessionCount int             `json:"session_count"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	HoursPay
}

// HoursPay is the outcome of a HoursPolicy.
type HoursPay struct {
	NormalHours     decimal.Decimal `json:"normal_hours"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	ThresholdHours  decimal.Decimal `json:"threshold_hours"`
	NormalRate      decimal.Decimal `json:"normal_rate"`
	OvertimeRate    decimal.Decimal `json:"overtime_rate"`
	NormalPay       decimal.Decimal `json:"normal_pay"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	WorkingHoursPay decimal.Decimal `json:"working_hours_pay"`
	// DeductionRate prices hour-based deduction rules.
	DeductionRate decimal.Decimal `json:"deduction_rate"`
}

type EarningsBreakdown struct {
	Count         int             `json:"count"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
}

// EarningLine is one task or responsibility that contributed to the month.
type EarningLine struct {
	ID             int64            `json:"id"`
	Name           string           `json:"name"`
	Price          decimal.Decimal  `json:"price"`
	Factor         decimal.Decimal  `json:"factor"`
	OvertimeFactor *decimal.Decimal `json:"overtime_factor,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
}

type DeductionBreakdown struct {
	Total   decimal.Decimal   `json:"total"`
	Details []DeductionDetail `json:"details"`
}

type DeductionDetail struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Type             deduction.Type   `json:"type"`
	Value            decimal.Decimal  `json:"value"`
	HoursDeducted    *decimal.Decimal `json:"hours_deducted,omitempty"`
	CompanyWide      bool             `json:"company_wide"`
	CalculatedAmount decimal.Decimal  `json:"calculated_amount"`
}

// SalarySummary is the flattened row returned for batch payroll.
type SalarySummary struct {
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Period       period.Month    `json:"period"`
}

func (r SalaryReport) Summary() SalarySummary {
	return SalarySummary{
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		GrossSalary:  r.GrossSalary,
		Deductions:   r.Deductions.Total,
		NetSalary:    r.NetSalary,
		Period:       r.Period,
	}
}

// Invoice explains a SalaryReport line by line.
type Invoice struct {
	InvoiceNumber    string              `json:"invoice_number"`
	GeneratedAt      time.Time           `json:"generated_at"`
	Period           period.Month        `json:"period"`
	Employee         InvoiceEmployee     `json:"employee"`
	Sessions         []InvoiceSession    `json:"sessions"`
	Attendance       AttendanceBreakdown `json:"attendance"`
	Tasks            []EarningLine       `json:"tasks"`
	Responsibilities []EarningLine       `json:"responsibilities"`
	Deductions       []DeductionDetail   `json:"deductions"`
	Salary           InvoiceSalary       `json:"salary"`
}

type InvoiceEmployee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	EmployeeType string `json:"employee_type"`
}

type InvoiceSession struct {
	Date     string          `json:"date"`
	CheckIn  time.Time       `json:"check_in"`
	CheckOut time.Time       `json:"check_out"`
	Hours    decimal.Decimal `json:"hours"`
}

type InvoiceSalary struct {
	Base                   decimal.Decimal `json:"base"`
	WorkingHoursPay        decimal.Decimal `json:"working_hours_pay"`
	TaskEarnings           decimal.Decimal `json:"task_earnings"`
	ResponsibilityEarnings decimal.Decimal `json:"responsibility_earnings"`
	Gross                  decimal.Decimal `json:"gross"`
	Deductions             decimal.Decimal `json:"deductions"`
	Net                    decimal.Decimal `json:"net"`
}
