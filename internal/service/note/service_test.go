package note

import (
	"context"
	"strings"
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService(t *testing.T) {
	// Setup
	ctx := context.Background()
	store := memory.NewStore()
	employees := memory.NewEmployeeRepository(store)
	author, err := employees.Create(ctx, employee.Employee{Name: "Boss", Username: "boss", PasswordHash: "x", EmployeeType: employee.TypeManagerial})
	require.NoError(t, err)
	subject, err := employees.Create(ctx, employee.Employee{Name: "Sam", Username: "sam", PasswordHash: "x", EmployeeType: employee.TypeEmployee})
	require.NoError(t, err)
	svc := NewNoteService(memory.NewNoteRepository(store), employees)

	// Act
	first, err := svc.Create(ctx, note.CreateNoteRequest{EmployeeID: subject.ID, AuthorID: &author.ID, Content: "Great quarter"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, note.CreateNoteRequest{EmployeeID: subject.ID, Content: "Moved desks"})
	require.NoError(t, err)
	list, err := svc.ListByEmployee(ctx, subject.ID)
	require.NoError(t, err)

	// Assert
	require.NotNil(t, first.AuthorName)
	assert.Equal(t, "Boss", *first.AuthorName)
	require.Len(t, list, 2)
	assert.Equal(t, "Moved desks", list[0].Content, "newest first")

	require.NoError(t, svc.Delete(ctx, first.ID))
	assert.ErrorIs(t, svc.Delete(ctx, first.ID), note.ErrNoteNotFound)
}

func TestNoteService_Errors(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewNoteService(memory.NewNoteRepository(store), memory.NewEmployeeRepository(store))

	_, err := svc.Create(ctx, note.CreateNoteRequest{EmployeeID: 5, Content: "hello"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.ListByEmployee(ctx, 5)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = svc.Create(ctx, note.CreateNoteRequest{EmployeeID: 5, Content: strings.Repeat("a", 2001)})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "content")
}
