package responsibility

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateResponsibilityRequest struct {
	Name         string           `json:"name"`
	Description  *string          `json:"description,omitempty"`
	MonthlyPrice *decimal.Decimal `json:"monthly_price"`
	EmployeeID   int64            `json:"employee_id"`
	Factor       *decimal.Decimal `json:"factor,omitempty"`
	Status       Status           `json:"status,omitempty"`
	Month        string           `json:"month,omitempty"`
}

// Validate checks the request; an empty month is resolved by the service.
func (r *CreateResponsibilityRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Status == "" {
		r.Status = StatusActive
	}

	if r.Name == "" {
		errs.Add("name", "is required")
	}
	if r.MonthlyPrice == nil {
		errs.Add("monthly_price", "is required")
	} else if r.MonthlyPrice.IsNegative() {
		errs.Add("monthly_price", "must be non-negative")
	}
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "is required")
	}
	if !validator.IsPositive(r.Factor) {
		errs.Add("factor", "must be greater than zero")
	}
	if !r.Status.IsValid() {
		errs.Add("status", "must be active or inactive")
	}
	if r.Month != "" && !validator.IsValidMonth(r.Month) {
		errs.Add("month", "must be in YYYY-MM format")
	}

	return errs.Err()
}

type UpdateResponsibilityRequest struct {
	ID           int64            `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	MonthlyPrice *decimal.Decimal `json:"monthly_price,omitempty"`
	EmployeeID   *int64           `json:"employee_id,omitempty"`
	Factor       *decimal.Decimal `json:"factor,omitempty"`
	Status       *Status          `json:"status,omitempty"`
	Month        *string          `json:"month,omitempty"`
}

func (r *UpdateResponsibilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "cannot be empty")
	}
	if !validator.IsNonNegative(r.MonthlyPrice) {
		errs.Add("monthly_price", "must be non-negative")
	}
	if r.EmployeeID != nil && *r.EmployeeID <= 0 {
		errs.Add("employee_id", "must be a valid employee id")
	}
	if !validator.IsPositive(r.Factor) {
		errs.Add("factor", "must be greater than zero")
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs.Add("status", "must be active or inactive")
	}
	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs.Add("month", "must be in YYYY-MM format")
	}

	return errs.Err()
}

func (r UpdateResponsibilityRequest) Patch() Patch {
	return Patch{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		MonthlyPrice: r.MonthlyPrice,
		EmployeeID:   r.EmployeeID,
		Factor:       r.Factor,
		Status:       r.Status,
		Month:        r.Month,
	}
}

type ListResponsibilitiesRequest struct {
	EmployeeID *int64
	Month      string
}

type ResponsibilityResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	MonthlyPrice decimal.Decimal  `json:"monthly_price"`
	EmployeeID   int64            `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	Factor       *decimal.Decimal `json:"factor"`
	Status       Status           `json:"status"`
	Month        string           `json:"month"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewResponsibilityResponse(d Detail) ResponsibilityResponse {
	return ResponsibilityResponse{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		MonthlyPrice: d.MonthlyPrice,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Factor:       d.Factor,
		Status:       d.Status,
		Month:        d.Month,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
