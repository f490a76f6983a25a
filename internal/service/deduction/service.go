package deduction

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/deduction"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/shopspring/decimal"
)

type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	employeeRepo  employee.EmployeeRepository
	now           func() time.Time
}

func NewDeductionService(deductionRepo deduction.DeductionRepository, employeeRepo employee.EmployeeRepository, now func() time.Time) deduction.DeductionService {
	if now == nil {
		now = time.Now
	}
	return &DeductionServiceImpl{
		deductionRepo: deductionRepo,
		employeeRepo:  employeeRepo,
		now:           now,
	}
}

// Create implements deduction.DeductionService.
func (s *DeductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}
	month, err := period.Resolve(req.Month, s.now())
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	if req.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return deduction.DeductionResponse{}, err
		}
	}

	rule := deduction.Rule{
		Name:          req.Name,
		Description:   req.Description,
		Type:          req.Type,
		Amount:        decimal.Zero,
		EmployeeID:    req.EmployeeID,
		IsActive:      true,
		Month:         month.String(),
		HoursDeducted: req.HoursDeducted,
	}
	if req.Amount != nil {
		rule.Amount = *req.Amount
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	created, err := s.deductionRepo.Create(ctx, rule)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return s.GetByID(ctx, created.ID)
}

// GetByID implements deduction.DeductionService.
func (s *DeductionServiceImpl) GetByID(ctx context.Context, id int64) (deduction.DeductionResponse, error) {
	d, err := s.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	return deduction.NewDeductionResponse(d), nil
}

// List implements deduction.DeductionService.
func (s *DeductionServiceImpl) List(ctx context.Context, req deduction.ListDeductionsRequest) ([]deduction.DeductionResponse, error) {
	filter := deduction.Filter{EmployeeID: req.EmployeeID}
	if req.Month != "" {
		m, err := period.Parse(req.Month)
		if err != nil {
			return nil, err
		}
		month := m.String()
		filter.Month = &month
	}

	rules, err := s.deductionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}

	out := make([]deduction.DeductionResponse, 0, len(rules))
	for _, d := range rules {
		out = append(out, deduction.NewDeductionResponse(d))
	}
	return out, nil
}

// Update implements deduction.DeductionService.
func (s *DeductionServiceImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}
	if _, err := s.deductionRepo.Update(ctx, req.Patch()); err != nil {
		return deduction.DeductionResponse{}, err
	}
	return s.GetByID(ctx, req.ID)
}

// Delete implements deduction.DeductionService.
func (s *DeductionServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.deductionRepo.Delete(ctx, id)
}
