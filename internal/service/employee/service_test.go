package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService() (employee.EmployeeService, employee.EmployeeRepository, *memory.Store) {
	store := memory.NewStore()
	repo := memory.NewEmployeeRepository(store)
	return NewEmployeeService(repo), repo, store
}

func strPtr(s string) *string { return &s }

func createRequest(username string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:     "Test " + username,
		Username: username,
		Password: "secret123",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, repo, _ := newService()
	base := decimal.NewFromInt(3000)
	req := createRequest("jdoe")
	req.Email = strPtr("  JDoe@Example.com ")
	req.BaseSalary = &base

	// Act
	resp, err := svc.Create(ctx, req)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, employee.TypeEmployee, resp.EmployeeType, "type defaults to Employee")
	assert.Equal(t, employee.RoleEmployee, resp.Role)
	assert.Equal(t, "jdoe@example.com", *resp.Email)
	assert.True(t, base.Equal(resp.BaseSalary))
	assert.Nil(t, resp.NormalHourRate)

	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestEmployeeService_Create_Duplicates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService()
	first := createRequest("jdoe")
	first.Email = strPtr("jdoe@example.com")
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("JDOE"))
	assert.ErrorIs(t, err, employee.ErrUsernameExists)

	second := createRequest("other")
	second.Email = strPtr("JDOE@example.com")
	_, err = svc.Create(ctx, second)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc, _, _ := newService()
	negative := decimal.NewFromInt(-5)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Username:     "x",
		Password:     "123",
		EmployeeType: "Intern",
		BaseSalary:   &negative,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	for _, f := range []string{"name", "username", "password", "employee_type", "base_salary"} {
		assert.Contains(t, fields, f)
	}
}

func TestEmployeeService_Update(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, repo, _ := newService()
	created, err := svc.Create(ctx, createRequest("jdoe"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createRequest("taken"))
	require.NoError(t, err)

	rate := decimal.NewFromInt(25)
	managerial := employee.TypeManagerial

	// Act
	resp, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:             created.ID,
		Name:           strPtr("Jane Doe"),
		EmployeeType:   &managerial,
		NormalHourRate: &rate,
		Password:       strPtr("newsecret"),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, employee.RoleManagerial, resp.Role)
	require.NotNil(t, resp.NormalHourRate)
	assert.True(t, rate.Equal(*resp.NormalHourRate))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newsecret")))

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Username: strPtr("taken")})
	assert.ErrorIs(t, err, employee.ErrUsernameExists)

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Username: strPtr("jdoe")})
	assert.NoError(t, err, "keeping your own username is not a conflict")

	reset, err := svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, ResetRates: true})
	require.NoError(t, err)
	assert.Nil(t, reset.NormalHourRate)
}

func TestEmployeeService_EmailIsTrimmedBeforeValidation(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, _, _ := newService()
	req := createRequest("padded")
	req.Email = strPtr(" Padded@Example.com")

	// Act
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	updated, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:    created.ID,
		Email: strPtr("Renamed@Example.com   "),
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, created.Email)
	assert.Equal(t, "padded@example.com", *created.Email)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "renamed@example.com", *updated.Email)

	_, err = svc.Update(ctx, employee.UpdateEmployeeRequest{ID: created.ID, Email: strPtr("  not-an-email ")})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "email")
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: 77, Name: strPtr("Ghost")})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete_Cascades(t *testing.T) {
	// Setup
	ctx := context.Background()
	svc, _, store := newService()
	admin, err := svc.Create(ctx, createRequest("admin"))
	require.NoError(t, err)
	target, err := svc.Create(ctx, createRequest("leaver"))
	require.NoError(t, err)

	notes := memory.NewNoteRepository(store)
	_, err = notes.Create(ctx, note.Note{EmployeeID: target.ID, Content: "exit interview"})
	require.NoError(t, err)

	// Act
	err = svc.Delete(ctx, target.ID, admin.ID)

	// Assert
	require.NoError(t, err)
	_, err = svc.GetByID(ctx, target.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	remaining, err := notes.ListByEmployee(ctx, target.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestEmployeeService_Delete_Self(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService()
	admin, err := svc.Create(ctx, createRequest("admin"))
	require.NoError(t, err)

	err = svc.Delete(ctx, admin.ID, admin.ID)

	assert.ErrorIs(t, err, employee.ErrCannotDeleteSelf)
}

func TestEmployeeService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService()

	created, err := svc.EnsureAdmin(ctx, createRequest("root"))
	require.NoError(t, err)
	assert.True(t, created)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, employee.TypeAdmin, list[0].EmployeeType)

	created, err = svc.EnsureAdmin(ctx, createRequest("root2"))
	require.NoError(t, err)
	assert.False(t, created, "seeding only happens on an empty table")
}
