package salary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/salary"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.November, 20, 12, 0, 0, 0, time.UTC)

type fixture struct {
	employees        employee.EmployeeRepository
	settings         settings.SettingsRepository
	attendance       attendance.AttendanceRepository
	templates        task.TemplateRepository
	assignments      task.AssignmentRepository
	responsibilities responsibility.ResponsibilityRepository
	deductions       deduction.DeductionRepository
}

func newFixture() fixture {
	store := memory.NewStoreWithClock(func() time.Time { return fixedNow })
	return fixture{
		employees:        memory.NewEmployeeRepository(store),
		settings:         memory.NewSettingsRepository(store),
		attendance:       memory.NewAttendanceRepository(store),
		templates:        memory.NewTemplateRepository(store),
		assignments:      memory.NewAssignmentRepository(store),
		responsibilities: memory.NewResponsibilityRepository(store),
		deductions:       memory.NewDeductionRepository(store),
	}
}

// settingsProvider serves defaults until settings are saved.
type settingsProvider struct {
	repo settings.SettingsRepository
}

func (p settingsProvider) Get(ctx context.Context) (settings.AdminSettings, error) {
	s, err := p.repo.Get(ctx)
	if errors.Is(err, settings.ErrSettingsNotFound) {
		return settings.Defaults(), nil
	}
	return s, err
}

func (f fixture) service(t *testing.T, policy salary.PolicyName) *SalaryServiceImpl {
	t.Helper()
	p, err := NewPolicy(policy)
	require.NoError(t, err)
	return NewSalaryService(
		f.employees,
		settingsProvider{repo: f.settings},
		f.attendance,
		f.assignments,
		f.responsibilities,
		f.deductions,
		p,
		WithWorkers(2),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func (f fixture) employee(t *testing.T, username string, base int64) employee.Employee {
	t.Helper()
	e, err := f.employees.Create(context.Background(), employee.Employee{
		Name:         username,
		Username:     username,
		PasswordHash: "x",
		EmployeeType: employee.TypeEmployee,
		BaseSalary:   decimal.NewFromInt(base),
	})
	require.NoError(t, err)
	return e
}

// work records one closed session of hours on the given day of November 2025.
func (f fixture) work(t *testing.T, employeeID int64, day int, hours int) {
	t.Helper()
	ctx := context.Background()
	date := time.Date(2025, time.November, day, 0, 0, 0, 0, time.UTC)
	in := date.Add(8 * time.Hour)
	_, err := f.attendance.Create(ctx, attendance.Session{EmployeeID: employeeID, Date: date, CheckInTime: in})
	require.NoError(t, err)
	_, err = f.attendance.CloseOpenSessions(ctx, employeeID, date, in.Add(time.Duration(hours)*time.Hour))
	require.NoError(t, err)
}

func (f fixture) completedTask(t *testing.T, employeeID int64, price int64, factor *decimal.Decimal, month string) {
	t.Helper()
	ctx := context.Background()
	tpl, err := f.templates.Create(ctx, task.Template{Name: "Inventory audit", Price: decimal.NewFromInt(price), Factor: factor, IsActive: true})
	require.NoError(t, err)

	completedAt := fixedNow
	_, err = f.assignments.Create(ctx, task.Assignment{
		TemplateID:     tpl.ID,
		EmployeeID:     employeeID,
		Status:         task.StatusDone,
		CompletedAt:    &completedAt,
		CompletedMonth: &month,
	})
	require.NoError(t, err)
}

func (f fixture) rule(t *testing.T, rule deduction.Rule) {
	t.Helper()
	rule.IsActive = true
	if rule.Type == "" {
		rule.Type = deduction.TypeFixed
	}
	_, err := f.deductions.Create(context.Background(), rule)
	require.NoError(t, err)
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, what string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", what, want, got.String())
}

func TestCalculateSalaryForEmployee_NoActivityPaysBaseSalary(t *testing.T) {
	// Setup
	f := newFixture()
	emp := f.employee(t, "alice", 2500)
	svc := f.service(t, salary.PolicyOvertimeSplit)

	// Act
	report, err := svc.CalculateSalaryForEmployee(context.Background(), emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assertDecimal(t, "2500", report.GrossSalary, "gross")
	assertDecimal(t, "2500", report.NetSalary, "net")
	assertDecimal(t, "0", report.Attendance.TotalHours, "hours")
	assertDecimal(t, "0", report.Deductions.Total, "deductions")
	assert.Equal(t, 0, report.Tasks.Count)
	assert.Equal(t, 0, report.Responsibilities.Count)
	assert.Empty(t, report.Deductions.Details)
	assert.Equal(t, "2025-11", report.Period.String())
	assert.Equal(t, salary.PolicyOvertimeSplit, report.Policy)
}

func TestCalculateSalaryForEmployee_OvertimeAboveThreshold(t *testing.T) {
	// Setup: 17 days of 10 hours against the default 160h threshold
	f := newFixture()
	emp := f.employee(t, "bob", 0)
	for day := 1; day <= 17; day++ {
		f.work(t, emp.ID, day, 10)
	}
	svc := f.service(t, salary.PolicyOvertimeSplit)

	// Act
	report, err := svc.CalculateSalaryForEmployee(context.Background(), emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 17, report.Attendance.SessionCount)
	assertDecimal(t, "170", report.Attendance.TotalHours, "total hours")
	assertDecimal(t, "160", report.Attendance.NormalHours, "normal hours")
	assertDecimal(t, "10", report.Attendance.OvertimeHours, "overtime hours")
	assertDecimal(t, "1600", report.Attendance.NormalPay, "normal pay")
	assertDecimal(t, "150", report.Attendance.OvertimePay, "overtime pay")
	assertDecimal(t, "1750", report.Attendance.WorkingHoursPay, "working hours pay")
	assertDecimal(t, "1750", report.GrossSalary, "gross")
}

func TestCalculateSalaryForEmployee_OnlyClosedSessionsOfTheMonthCount(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "carol", 0)
	f.work(t, emp.ID, 3, 8)

	nov4 := time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC)
	_, err := f.attendance.Create(ctx, attendance.Session{EmployeeID: emp.ID, Date: nov4, CheckInTime: nov4.Add(8 * time.Hour)})
	require.NoError(t, err)

	oct31 := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)
	_, err = f.attendance.Create(ctx, attendance.Session{EmployeeID: emp.ID, Date: oct31, CheckInTime: oct31.Add(8 * time.Hour)})
	require.NoError(t, err)
	_, err = f.attendance.CloseOpenSessions(ctx, emp.ID, oct31, oct31.Add(16*time.Hour))
	require.NoError(t, err)

	// Act
	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, report.Attendance.SessionCount)
	assertDecimal(t, "8", report.Attendance.TotalHours, "total hours")
}

func TestCalculateSalaryForEmployee_EmployeeRatesOverrideSettings(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "dave", 0)
	_, err := f.employees.Update(ctx, employee.Patch{
		ID:                   emp.ID,
		NormalHourRate:       decPtr("20"),
		OvertimeHourRate:     decPtr("30"),
		RequiredMonthlyHours: decPtr("8"),
	})
	require.NoError(t, err)
	f.work(t, emp.ID, 5, 10)

	// Act
	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert: 8h at 20 plus 2h at 30
	require.NoError(t, err)
	assertDecimal(t, "8", report.Attendance.ThresholdHours, "threshold")
	assertDecimal(t, "160", report.Attendance.NormalPay, "normal pay")
	assertDecimal(t, "60", report.Attendance.OvertimePay, "overtime pay")
	assertDecimal(t, "220", report.GrossSalary, "gross")
}

func TestCalculateSalaryForEmployee_SavedSettingsApply(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "erin", 0)
	f.work(t, emp.ID, 5, 4)
	_, err := f.settings.Upsert(ctx, settings.AdminSettings{
		NormalHourRate:         dec("12.5"),
		OvertimeHourRate:       dec("20"),
		OvertimeThresholdHours: dec("160"),
	})
	require.NoError(t, err)

	// Act
	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assertDecimal(t, "50", report.Attendance.WorkingHoursPay, "working hours pay")
}

func TestCalculateSalaryForEmployee_TasksAndResponsibilities(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "frank", 1000)
	f.completedTask(t, emp.ID, 200, decPtr("1.5"), "2025-11")
	f.completedTask(t, emp.ID, 100, nil, "2025-11")
	f.completedTask(t, emp.ID, 999, nil, "2025-10")

	_, err := f.responsibilities.Create(ctx, responsibility.Responsibility{
		Name:         "Team lead",
		MonthlyPrice: dec("500"),
		EmployeeID:   emp.ID,
		Factor:       decPtr("1.2"),
		Status:       responsibility.StatusInactive,
		Month:        "2025-11",
	})
	require.NoError(t, err)
	_, err = f.responsibilities.Create(ctx, responsibility.Responsibility{
		Name:         "Fire warden",
		MonthlyPrice: dec("80"),
		EmployeeID:   emp.ID,
		Status:       responsibility.StatusActive,
		Month:        "2025-12",
	})
	require.NoError(t, err)

	// Act
	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, report.Tasks.Count)
	assertDecimal(t, "400", report.Tasks.TotalEarnings, "task earnings")
	assert.Equal(t, 1, report.Responsibilities.Count, "status does not gate responsibilities")
	assertDecimal(t, "600", report.Responsibilities.TotalEarnings, "responsibility earnings")
	assertDecimal(t, "2000", report.GrossSalary, "gross")
}

func TestCalculateSalaryForEmployee_MonthlyFactorIsTheFallbackFactor(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "gina", 0)
	_, err := f.employees.Update(ctx, employee.Patch{ID: emp.ID, MonthlyFactor: decPtr("2")})
	require.NoError(t, err)
	f.completedTask(t, emp.ID, 100, nil, "2025-11")

	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	require.NoError(t, err)
	assertDecimal(t, "200", report.Tasks.TotalEarnings, "task earnings")
}

func TestCalculateSalaryForEmployee_TaskOvertimeFactorWhenAllowed(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "hank", 0)
	_, err := f.employees.Update(ctx, employee.Patch{ID: emp.ID, OvertimeFactor: decPtr("1.5")})
	require.NoError(t, err)
	f.completedTask(t, emp.ID, 100, nil, "2025-11")
	svc := f.service(t, salary.PolicyOvertimeSplit)

	// Act: off by default
	before, err := svc.CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")
	require.NoError(t, err)

	s := settings.Defaults()
	s.AllowTaskOvertimeFactor = true
	_, err = f.settings.Upsert(ctx, s)
	require.NoError(t, err)
	after, err := svc.CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assertDecimal(t, "100", before.Tasks.TotalEarnings, "without overtime factor")
	assertDecimal(t, "150", after.Tasks.TotalEarnings, "with overtime factor")
}

func TestCalculateSalaryForEmployee_Deductions(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "ivan", 3000)
	other := f.employee(t, "judy", 3000)

	f.rule(t, deduction.Rule{Name: "Health insurance", Amount: dec("150"), EmployeeID: &emp.ID, Month: "2025-11"})
	f.rule(t, deduction.Rule{Name: "Unpaid leave", HoursDeducted: decPtr("5"), EmployeeID: &emp.ID, Month: "2025-11"})
	f.rule(t, deduction.Rule{Name: "Canteen", Amount: dec("25"), Month: "2025-11"})
	f.rule(t, deduction.Rule{Name: "Canteen", Amount: dec("25"), Month: "2025-10"})
	f.rule(t, deduction.Rule{Name: "Uniform", Amount: dec("40"), EmployeeID: &other.ID, Month: "2025-11"})
	_, err := f.deductions.Create(ctx, deduction.Rule{Name: "Disabled", Type: deduction.TypeFixed, Amount: dec("999"), EmployeeID: &emp.ID, Month: "2025-11"})
	require.NoError(t, err)

	_, err = f.employees.Update(ctx, employee.Patch{ID: emp.ID, NormalHourRate: decPtr("20")})
	require.NoError(t, err)

	// Act
	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert: 150 fixed + 5h at 20 + 25 company-wide
	require.NoError(t, err)
	require.Len(t, report.Deductions.Details, 3)
	assertDecimal(t, "275", report.Deductions.Total, "deduction total")

	sum := decimal.Zero
	for _, d := range report.Deductions.Details {
		sum = sum.Add(d.CalculatedAmount)
		switch d.Name {
		case "Health insurance":
			assertDecimal(t, "150", d.CalculatedAmount, "fixed deduction")
			assert.False(t, d.CompanyWide)
		case "Unpaid leave":
			assertDecimal(t, "100", d.CalculatedAmount, "hour-based deduction")
		case "Canteen":
			assert.True(t, d.CompanyWide)
		}
	}
	assert.True(t, sum.Equal(report.Deductions.Total), "total is the sum of the details")
	assertDecimal(t, "2725", report.NetSalary, "net")
}

func TestCalculateSalaryForEmployee_PercentageDeductionUsesGross(t *testing.T) {
	f := newFixture()
	emp := f.employee(t, "kate", 2000)
	f.rule(t, deduction.Rule{Name: "Pension", Type: deduction.TypePercentage, Amount: dec("5"), EmployeeID: &emp.ID, Month: "2025-11"})
	f.rule(t, deduction.Rule{Name: "Parking", Amount: dec("50"), EmployeeID: &emp.ID, Month: "2025-11"})

	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(context.Background(), emp.ID, "2025-11")

	require.NoError(t, err)
	assertDecimal(t, "150", report.Deductions.Total, "5% of 2000 plus 50")
}

func TestCalculateSalaryForEmployee_FlatRatePolicy(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "leo", 0)
	_, err := f.employees.Update(ctx, employee.Patch{ID: emp.ID, HourlyRate: decPtr("12")})
	require.NoError(t, err)
	for day := 1; day <= 17; day++ {
		f.work(t, emp.ID, day, 10)
	}
	f.rule(t, deduction.Rule{Name: "Late", HoursDeducted: decPtr("2"), EmployeeID: &emp.ID, Month: "2025-11"})

	// Act
	report, err := f.service(t, salary.PolicyFlatRate).CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, salary.PolicyFlatRate, report.Policy)
	assertDecimal(t, "0", report.Attendance.OvertimeHours, "overtime hours")
	assertDecimal(t, "2040", report.Attendance.WorkingHoursPay, "170h at 12")
	assertDecimal(t, "24", report.Deductions.Total, "2h at the flat rate")
}

func TestCalculateSalaryForEmployee_IsIdempotent(t *testing.T) {
	f := newFixture()
	emp := f.employee(t, "mia", 1200)
	f.work(t, emp.ID, 2, 7)
	f.completedTask(t, emp.ID, 50, nil, "2025-11")
	f.rule(t, deduction.Rule{Name: "Insurance", Amount: dec("30"), EmployeeID: &emp.ID, Month: "2025-11"})
	svc := f.service(t, salary.PolicyOvertimeSplit)

	first, err := svc.CalculateSalaryForEmployee(context.Background(), emp.ID, "2025-11")
	require.NoError(t, err)
	second, err := svc.CalculateSalaryForEmployee(context.Background(), emp.ID, "2025-11")
	require.NoError(t, err)

	assert.True(t, first.GrossSalary.Equal(second.GrossSalary))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
	assert.True(t, first.Deductions.Total.Equal(second.Deductions.Total))
}

func TestCalculateSalaryForEmployee_DefaultsToCurrentMonth(t *testing.T) {
	f := newFixture()
	emp := f.employee(t, "nina", 100)

	report, err := f.service(t, salary.PolicyOvertimeSplit).CalculateSalaryForEmployee(context.Background(), emp.ID, "")

	require.NoError(t, err)
	assert.Equal(t, "2025-11", report.Period.String())
}

func TestCalculateSalaryForEmployee_Errors(t *testing.T) {
	f := newFixture()
	emp := f.employee(t, "omar", 100)
	svc := f.service(t, salary.PolicyOvertimeSplit)

	t.Run("unknown employee", func(t *testing.T) {
		_, err := svc.CalculateSalaryForEmployee(context.Background(), 9999, "2025-11")
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("malformed month", func(t *testing.T) {
		_, err := svc.CalculateSalaryForEmployee(context.Background(), emp.ID, "2025-13")
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "month")
	})
}

func TestCalculateAllSalaries_OneSummaryPerEmployeeInOrder(t *testing.T) {
	// Setup
	f := newFixture()
	first := f.employee(t, "pat", 1000)
	second := f.employee(t, "quinn", 2000)
	third := f.employee(t, "rosa", 3000)
	f.rule(t, deduction.Rule{Name: "Canteen", Amount: dec("10"), Month: "2025-11"})
	f.work(t, second.ID, 10, 5)

	// Act
	summaries, err := f.service(t, salary.PolicyOvertimeSplit).CalculateAllSalaries(context.Background(), "2025-11")

	// Assert
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, []int64{first.ID, second.ID, third.ID}, []int64{summaries[0].EmployeeID, summaries[1].EmployeeID, summaries[2].EmployeeID})
	assertDecimal(t, "990", summaries[0].NetSalary, "first net")
	assertDecimal(t, "2050", summaries[1].GrossSalary, "second gross")
	assertDecimal(t, "10", summaries[2].Deductions, "third deductions")
	for _, s := range summaries {
		assert.Equal(t, "2025-11", s.Period.String())
	}
}

func TestCalculateAllSalaries_NoEmployees(t *testing.T) {
	f := newFixture()

	summaries, err := f.service(t, salary.PolicyOvertimeSplit).CalculateAllSalaries(context.Background(), "2025-11")

	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGenerateEmployeeInvoice_MatchesReport(t *testing.T) {
	// Setup
	ctx := context.Background()
	f := newFixture()
	emp := f.employee(t, "sam", 1500)
	f.work(t, emp.ID, 7, 6)
	f.work(t, emp.ID, 3, 9)
	f.completedTask(t, emp.ID, 120, nil, "2025-11")
	f.rule(t, deduction.Rule{Name: "Insurance", Amount: dec("75"), EmployeeID: &emp.ID, Month: "2025-11"})
	svc := f.service(t, salary.PolicyOvertimeSplit)

	// Act
	report, err := svc.CalculateSalaryForEmployee(ctx, emp.ID, "2025-11")
	require.NoError(t, err)
	invoice, err := svc.GenerateEmployeeInvoice(ctx, emp.ID, "2025-11")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, invoice.InvoiceNumber)
	assert.Equal(t, fixedNow, invoice.GeneratedAt)
	assert.Equal(t, emp.Username, invoice.Employee.Username)
	assert.True(t, report.NetSalary.Equal(invoice.Salary.Net), "net")
	assert.True(t, report.GrossSalary.Equal(invoice.Salary.Gross), "gross")
	assert.True(t, report.Deductions.Total.Equal(invoice.Salary.Deductions), "deductions")

	require.Len(t, invoice.Sessions, 2)
	assert.Equal(t, "2025-11-03", invoice.Sessions[0].Date)
	assert.Equal(t, "2025-11-07", invoice.Sessions[1].Date)
	require.Len(t, invoice.Tasks, 1)
	require.Len(t, invoice.Deductions, 1)
}

func TestGenerateEmployeeInvoice_UnknownEmployee(t *testing.T) {
	f := newFixture()

	_, err := f.service(t, salary.PolicyOvertimeSplit).GenerateEmployeeInvoice(context.Background(), 42, "2025-11")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
