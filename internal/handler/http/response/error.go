package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/note"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, jwt.ErrMissingClaims):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrCannotDeleteSelf):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, note.ErrNoteNotFound):
		NotFound(w, "Note not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoActiveSession):
		NotFound(w, "No active check-in found")

	// Task domain errors
	case errors.Is(err, task.ErrTemplateNotFound):
		NotFound(w, "Task template not found")
	case errors.Is(err, task.ErrAssignmentNotFound):
		NotFound(w, "Task assignment not found")
	case errors.Is(err, task.ErrTemplateInactive):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, task.ErrInvalidStatusTransition):
		Conflict(w, err.Error())

	case errors.Is(err, responsibility.ErrResponsibilityNotFound):
		NotFound(w, "Responsibility not found")
	case errors.Is(err, deduction.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
