package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.ToLower(strings.TrimSpace(*email))
	if e == "" {
		return nil
	}
	return &e
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	email := normalizeEmail(req.Email)

	if err := s.checkUnique(ctx, req.Username, email, 0); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := employee.Employee{
		Name:                 req.Name,
		Username:             req.Username,
		Email:                email,
		PasswordHash:         hash,
		EmployeeType:         req.EmployeeType,
		MonthlyFactor:        req.MonthlyFactor,
		OvertimeFactor:       req.OvertimeFactor,
		NormalHourRate:       req.NormalHourRate,
		OvertimeHourRate:     req.OvertimeHourRate,
		RequiredMonthlyHours: req.RequiredMonthlyHours,
		HourlyRate:           req.HourlyRate,
	}
	if req.BaseSalary != nil {
		newEmployee.BaseSalary = *req.BaseSalary
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created", "employee_id", created.ID, "username", created.Username, "type", created.EmployeeType)
	return employee.NewEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employee.NewEmployeeResponse(e))
	}
	return out, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	patch := employee.Patch{
		ID:                   req.ID,
		Name:                 req.Name,
		EmployeeType:         req.EmployeeType,
		BaseSalary:           req.BaseSalary,
		MonthlyFactor:        req.MonthlyFactor,
		OvertimeFactor:       req.OvertimeFactor,
		NormalHourRate:       req.NormalHourRate,
		OvertimeHourRate:     req.OvertimeHourRate,
		RequiredMonthlyHours: req.RequiredMonthlyHours,
		HourlyRate:           req.HourlyRate,
		ResetRates:           req.ResetRates,
	}

	var username string
	if req.Username != nil {
		username = strings.TrimSpace(*req.Username)
		patch.Username = &username
	}
	if req.Email != nil {
		patch.Email = normalizeEmail(req.Email)
	}
	if err := s.checkUnique(ctx, username, patch.Email, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.employeeRepo.Update(ctx, patch)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64, actorID int64) error {
	if id == actorID {
		return employee.ErrCannotDeleteSelf
	}
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("Employee deleted", "employee_id", id, "deleted_by", actorID)
	return nil
}

// EnsureAdmin implements employee.EmployeeService.
func (s *EmployeeServiceImpl) EnsureAdmin(ctx context.Context, req employee.CreateEmployeeRequest) (bool, error) {
	count, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	req.EmployeeType = employee.TypeAdmin
	if _, err := s.Create(ctx, req); err != nil {
		return false, fmt.Errorf("failed to seed administrator: %w", err)
	}
	return true, nil
}

// checkUnique skips empty values; excludeID is the employee being updated.
func (s *EmployeeServiceImpl) checkUnique(ctx context.Context, username string, email *string, excludeID int64) error {
	if username != "" {
		exists, err := s.employeeRepo.ExistsByUsername(ctx, username, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if exists {
			return employee.ErrUsernameExists
		}
	}
	if email != nil {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, *email, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}
	}
	return nil
}
