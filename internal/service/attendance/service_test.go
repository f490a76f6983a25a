package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func setupAttendance(t *testing.T, start time.Time) (*AttendanceServiceImpl, *clock, int64) {
	t.Helper()
	c := &clock{now: start}
	store := memory.NewStoreWithClock(c.Now)
	employees := memory.NewEmployeeRepository(store)

	emp, err := employees.Create(context.Background(), employee.Employee{
		Name:         "Eve",
		Username:     "eve",
		PasswordHash: "x",
		EmployeeType: employee.TypeEmployee,
	})
	require.NoError(t, err)

	svc := NewAttendanceService(memory.NewAttendanceRepository(store), employees, WithClock(c.Now), WithStaleAfterDays(2))
	return svc, c, emp.ID
}

func TestAttendanceService_CheckInCheckOut_UsesClock(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, c, empID := setupAttendance(t, time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC))

	// Act
	in, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID})
	require.NoError(t, err)
	c.now = c.now.Add(8*time.Hour + 30*time.Minute)
	out, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empID})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2025-11-03", in.Date)
	assert.True(t, in.IsOpen)
	require.Len(t, out.ClosedSessions, 1)
	assert.False(t, out.ClosedSessions[0].IsOpen)
	assert.True(t, decimal.RequireFromString("8.5").Equal(out.TotalHours))
}

func TestAttendanceService_CheckOut_ClosesEveryOpenSessionOfTheDay(t *testing.T) {
	// Setup: two open sessions on 2025-11-03, one on the 4th
	ctx := context.Background()
	svc, _, empID := setupAttendance(t, time.Date(2025, time.November, 5, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: "2025-11-03", CheckInTime: "2025-11-03T08:00:00Z"})
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: "2025-11-03", CheckInTime: "2025-11-03T13:00:00Z"})
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: "2025-11-04", CheckInTime: "2025-11-04T08:00:00Z"})
	require.NoError(t, err)

	// Act
	out, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empID, Date: "2025-11-03", CheckOutTime: "2025-11-03T17:00:00Z"})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.ClosedSessions, 2)
	assert.True(t, decimal.NewFromInt(9).Equal(out.ClosedSessions[0].DailyHours))
	assert.True(t, decimal.NewFromInt(4).Equal(out.ClosedSessions[1].DailyHours))
	assert.True(t, decimal.NewFromInt(13).Equal(out.TotalHours))

	sessions, err := svc.ListByMonth(ctx, empID, "2025-11")
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.True(t, sessions[0].IsOpen, "the 4th stays open")

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empID, Date: "2025-11-03"})
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)
}

func TestAttendanceService_CheckOut_BeforeCheckInClampsToZero(t *testing.T) {
	ctx := context.Background()
	svc, _, empID := setupAttendance(t, time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, CheckInTime: "2025-11-03T10:00:00Z"})
	require.NoError(t, err)

	out, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empID, CheckOutTime: "2025-11-03T09:00:00Z"})

	require.NoError(t, err)
	assert.True(t, out.TotalHours.IsZero())
}

func TestAttendanceService_Errors(t *testing.T) {
	ctx := context.Background()
	svc, _, empID := setupAttendance(t, time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: 999})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empID})
	assert.ErrorIs(t, err, attendance.ErrNoActiveSession)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: "03/11/2025"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestAttendanceService_TodayAndMonthlyTotal(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, c, empID := setupAttendance(t, time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC))

	record := func(date, in, out string) {
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: date, CheckInTime: in})
		require.NoError(t, err)
		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: empID, Date: date, CheckOutTime: out})
		require.NoError(t, err)
	}
	record("2025-11-03", "2025-11-03T08:00:00Z", "2025-11-03T12:00:00Z")
	record("2025-11-03", "2025-11-03T13:00:00Z", "2025-11-03T17:00:00Z")
	record("2025-11-04", "2025-11-04T08:00:00Z", "2025-11-04T15:00:00Z")
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: "2025-11-05", CheckInTime: "2025-11-05T08:00:00Z"})
	require.NoError(t, err)

	// Act
	c.now = time.Date(2025, time.November, 3, 18, 0, 0, 0, time.UTC)
	today, err := svc.Today(ctx, empID)
	require.NoError(t, err)
	total, err := svc.MonthlyTotal(ctx, empID, "2025-11")
	require.NoError(t, err)

	// Assert
	assert.Len(t, today, 2)
	assert.Equal(t, 3, total.TotalSessions)
	assert.Equal(t, 2, total.DaysWorked)
	assert.True(t, decimal.NewFromInt(15).Equal(total.TotalHours))
	assert.True(t, decimal.RequireFromString("7.5").Equal(total.AvgHoursPerDay))
	assert.Equal(t, "2025-11", total.Month.String())
}

func TestAttendanceService_MonthlyTotal_Empty(t *testing.T) {
	svc, _, empID := setupAttendance(t, time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC))

	total, err := svc.MonthlyTotal(context.Background(), empID, "")

	require.NoError(t, err)
	assert.Equal(t, 0, total.DaysWorked)
	assert.True(t, total.AvgHoursPerDay.IsZero())
	assert.Equal(t, "2025-11", total.Month.String())
}

func TestAttendanceService_CloseStaleSessions(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, c, empID := setupAttendance(t, time.Date(2025, time.November, 1, 8, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID})
	require.NoError(t, err)
	c.now = time.Date(2025, time.November, 3, 8, 0, 0, 0, time.UTC)
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID})
	require.NoError(t, err)

	// Act: two days later the 1st is not yet stale
	closed, err := svc.CloseStaleSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), closed)

	c.now = time.Date(2025, time.November, 4, 8, 0, 0, 0, time.UTC)
	closed, err = svc.CloseStaleSessions(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	sessions, err := svc.ListByMonth(ctx, empID, "2025-11")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].IsOpen)
	assert.False(t, sessions[1].IsOpen)
	assert.True(t, sessions[1].DailyHours.IsZero())
	assert.Equal(t, sessions[1].CheckInTime, *sessions[1].CheckOutTime)
}

func TestAttendanceService_ListByMonth_NewestFirst(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, _, empID := setupAttendance(t, time.Date(2025, time.November, 20, 9, 0, 0, 0, time.UTC))
	for _, in := range []string{"2025-11-03T08:00:00Z", "2025-11-10T13:00:00Z", "2025-11-10T08:00:00Z", "2025-11-05T08:00:00Z"} {
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: empID, Date: in[:10], CheckInTime: in})
		require.NoError(t, err)
	}

	// Act
	sessions, err := svc.ListByMonth(ctx, empID, "2025-11")

	// Assert
	require.NoError(t, err)
	require.Len(t, sessions, 4)
	got := make([]string, 0, len(sessions))
	for _, s := range sessions {
		got = append(got, s.CheckInTime.UTC().Format(time.RFC3339))
	}
	assert.Equal(t, []string{
		"2025-11-10T13:00:00Z",
		"2025-11-10T08:00:00Z",
		"2025-11-05T08:00:00Z",
		"2025-11-03T08:00:00Z",
	}, got)
}
