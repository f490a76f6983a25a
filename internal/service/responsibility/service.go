package responsibility

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/responsibility"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
)

type ResponsibilityServiceImpl struct {
	responsibilityRepo responsibility.ResponsibilityRepository
	employeeRepo       employee.EmployeeRepository
	now                func() time.Time
}

func NewResponsibilityService(responsibilityRepo responsibility.ResponsibilityRepository, employeeRepo employee.EmployeeRepository, now func() time.Time) responsibility.ResponsibilityService {
	if now == nil {
		now = time.Now
	}
	return &ResponsibilityServiceImpl{
		responsibilityRepo: responsibilityRepo,
		employeeRepo:       employeeRepo,
		now:                now,
	}
}

// Create implements responsibility.ResponsibilityService.
func (s *ResponsibilityServiceImpl) Create(ctx context.Context, req responsibility.CreateResponsibilityRequest) (responsibility.ResponsibilityResponse, error) {
	if err := req.Validate(); err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}
	month, err := period.Resolve(req.Month, s.now())
	if err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}

	created, err := s.responsibilityRepo.Create(ctx, responsibility.Responsibility{
		Name:         req.Name,
		Description:  req.Description,
		MonthlyPrice: *req.MonthlyPrice,
		EmployeeID:   req.EmployeeID,
		Factor:       req.Factor,
		Status:       req.Status,
		Month:        month.String(),
	})
	if err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}
	return s.GetByID(ctx, created.ID)
}

// GetByID implements responsibility.ResponsibilityService.
func (s *ResponsibilityServiceImpl) GetByID(ctx context.Context, id int64) (responsibility.ResponsibilityResponse, error) {
	d, err := s.responsibilityRepo.GetByID(ctx, id)
	if err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}
	return responsibility.NewResponsibilityResponse(d), nil
}

// List implements responsibility.ResponsibilityService.
func (s *ResponsibilityServiceImpl) List(ctx context.Context, req responsibility.ListResponsibilitiesRequest) ([]responsibility.ResponsibilityResponse, error) {
	filter := responsibility.Filter{EmployeeID: req.EmployeeID}
	if req.Month != "" {
		m, err := period.Parse(req.Month)
		if err != nil {
			return nil, err
		}
		month := m.String()
		filter.Month = &month
	}

	items, err := s.responsibilityRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list responsibilities: %w", err)
	}

	out := make([]responsibility.ResponsibilityResponse, 0, len(items))
	for _, d := range items {
		out = append(out, responsibility.NewResponsibilityResponse(d))
	}
	return out, nil
}

// Update implements responsibility.ResponsibilityService.
func (s *ResponsibilityServiceImpl) Update(ctx context.Context, req responsibility.UpdateResponsibilityRequest) (responsibility.ResponsibilityResponse, error) {
	if err := req.Validate(); err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}
	if _, err := s.responsibilityRepo.Update(ctx, req.Patch()); err != nil {
		return responsibility.ResponsibilityResponse{}, err
	}
	return s.GetByID(ctx, req.ID)
}

// Delete implements responsibility.ResponsibilityService.
func (s *ResponsibilityServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.responsibilityRepo.Delete(ctx, id)
}
