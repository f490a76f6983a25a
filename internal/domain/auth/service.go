package auth

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, employeeID int64) (employee.EmployeeResponse, error)
}
