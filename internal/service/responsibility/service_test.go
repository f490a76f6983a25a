package responsibility

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupResponsibilities(t *testing.T) (responsibility.ResponsibilityService, int64) {
	t.Helper()
	now := func() time.Time { return time.Date(2025, time.November, 12, 9, 0, 0, 0, time.UTC) }
	store := memory.NewStoreWithClock(now)
	employees := memory.NewEmployeeRepository(store)
	emp, err := employees.Create(context.Background(), employee.Employee{Name: "Lena", Username: "lena", PasswordHash: "x", EmployeeType: employee.TypeEmployee})
	require.NoError(t, err)
	return NewResponsibilityService(memory.NewResponsibilityRepository(store), employees, now), emp.ID
}

func TestResponsibilityService_Create_DefaultsMonthAndStatus(t *testing.T) {
	// Setup
	svc, empID := setupResponsibilities(t)
	price := decimal.NewFromInt(500)

	// Act
	resp, err := svc.Create(context.Background(), responsibility.CreateResponsibilityRequest{
		Name:         " Team lead ",
		MonthlyPrice: &price,
		EmployeeID:   empID,
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Team lead", resp.Name)
	assert.Equal(t, "2025-11", resp.Month)
	assert.Equal(t, responsibility.StatusActive, resp.Status)
	assert.Equal(t, "Lena", resp.EmployeeName)
}

func TestResponsibilityService_Create_Errors(t *testing.T) {
	svc, _ := setupResponsibilities(t)
	price := decimal.NewFromInt(100)

	_, err := svc.Create(context.Background(), responsibility.CreateResponsibilityRequest{Name: "Lead", MonthlyPrice: &price, EmployeeID: 404})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Create(context.Background(), responsibility.CreateResponsibilityRequest{Name: "Lead", MonthlyPrice: &price, EmployeeID: 1, Month: "11-2025"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "month")
}

func TestResponsibilityService_UpdateListDelete(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, empID := setupResponsibilities(t)
	price := decimal.NewFromInt(500)
	created, err := svc.Create(ctx, responsibility.CreateResponsibilityRequest{Name: "Lead", MonthlyPrice: &price, EmployeeID: empID, Month: "2025-10"})
	require.NoError(t, err)

	// Act
	inactive := responsibility.StatusInactive
	month := "2025-12"
	updated, err := svc.Update(ctx, responsibility.UpdateResponsibilityRequest{ID: created.ID, Status: &inactive, Month: &month})
	require.NoError(t, err)
	december, err := svc.List(ctx, responsibility.ListResponsibilitiesRequest{Month: "2025-12"})
	require.NoError(t, err)
	october, err := svc.List(ctx, responsibility.ListResponsibilitiesRequest{Month: "2025-10", EmployeeID: &empID})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, responsibility.StatusInactive, updated.Status)
	assert.Len(t, december, 1)
	assert.Empty(t, october)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, responsibility.ErrResponsibilityNotFound)
}
