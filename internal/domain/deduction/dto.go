package deduction

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDeductionRequest struct {
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	Type          Type             `json:"type,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	EmployeeID    *int64           `json:"employee_id,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Month         string           `json:"month,omitempty"`
	HoursDeducted *decimal.Decimal `json:"hours_deducted,omitempty"`
}

// Validate checks the request; an empty month is resolved by the service.
func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Type == "" {
		r.Type = TypeFixed
	}

	if r.Name == "" {
		errs.Add("name", "is required")
	}
	if !r.Type.IsValid() {
		errs.Add("type", "must be fixed or percentage")
	}
	if r.Amount == nil && r.HoursDeducted == nil {
		errs.Add("amount", "is required unless hours_deducted is set")
	}
	if !validator.IsNonNegative(r.Amount) {
		errs.Add("amount", "must be non-negative")
	}
	if !validator.IsNonNegative(r.HoursDeducted) {
		errs.Add("hours_deducted", "must be non-negative")
	}
	if r.EmployeeID != nil && *r.EmployeeID <= 0 {
		errs.Add("employee_id", "must be a valid employee id")
	}
	if r.Month != "" && !validator.IsValidMonth(r.Month) {
		errs.Add("month", "must be in YYYY-MM format")
	}

	return errs.Err()
}

type UpdateDeductionRequest struct {
	ID            int64            `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Type          *Type            `json:"type,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	EmployeeID    *int64           `json:"employee_id,omitempty"`
	CompanyWide   bool             `json:"company_wide,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Month         *string          `json:"month,omitempty"`
	HoursDeducted *decimal.Decimal `json:"hours_deducted,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "cannot be empty")
	}
	if r.Type != nil && !r.Type.IsValid() {
		errs.Add("type", "must be fixed or percentage")
	}
	if !validator.IsNonNegative(r.Amount) {
		errs.Add("amount", "must be non-negative")
	}
	if !validator.IsNonNegative(r.HoursDeducted) {
		errs.Add("hours_deducted", "must be non-negative")
	}
	if r.EmployeeID != nil && *r.EmployeeID <= 0 {
		errs.Add("employee_id", "must be a valid employee id")
	}
	if r.CompanyWide && r.EmployeeID != nil {
		errs.Add("company_wide", "cannot be combined with employee_id")
	}
	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs.Add("month", "must be in YYYY-MM format")
	}

	return errs.Err()
}

func (r UpdateDeductionRequest) Patch() Patch {
	return Patch{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Type,
		Amount:        r.Amount,
		EmployeeID:    r.EmployeeID,
		CompanyWide:   r.CompanyWide,
		IsActive:      r.IsActive,
		Month:         r.Month,
		HoursDeducted: r.HoursDeducted,
	}
}

type ListDeductionsRequest struct {
	Month      string
	EmployeeID *int64
}

type DeductionResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Description   *string          `json:"description"`
	Type          Type             `json:"type"`
	Amount        decimal.Decimal  `json:"amount"`
	EmployeeID    *int64           `json:"employee_id"`
	EmployeeName  *string          `json:"employee_name"`
	CompanyWide   bool             `json:"company_wide"`
	IsActive      bool             `json:"is_active"`
	Month         string           `json:"month"`
	HoursDeducted *decimal.Decimal `json:"hours_deducted"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func NewDeductionResponse(d Detail) DeductionResponse {
	return DeductionResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		Type:          d.Type,
		Amount:        d.Amount,
		EmployeeID:    d.EmployeeID,
		EmployeeName:  d.EmployeeName,
		CompanyWide:   d.IsCompanyWide(),
		IsActive:      d.IsActive,
		Month:         d.Month,
		HoursDeducted: d.HoursDeducted,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
