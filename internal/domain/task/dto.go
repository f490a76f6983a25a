package task

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== TEMPLATE DTOs ==========

type CreateTemplateRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price"`
	Factor      *decimal.Decimal `json:"factor,omitempty"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		errs.Add("name", "is required")
	}
	if r.Price == nil {
		errs.Add("price", "is required")
	} else if r.Price.IsNegative() {
		errs.Add("price", "must be non-negative")
	}
	if !validator.IsPositive(r.Factor) {
		errs.Add("factor", "must be greater than zero")
	}

	return errs.Err()
}

type UpdateTemplateRequest struct {
	ID          int64            `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Factor      *decimal.Decimal `json:"factor,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (r *UpdateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "cannot be empty")
	}
	if !validator.IsNonNegative(r.Price) {
		errs.Add("price", "must be non-negative")
	}
	if !validator.IsPositive(r.Factor) {
		errs.Add("factor", "must be greater than zero")
	}

	return errs.Err()
}

func (r UpdateTemplateRequest) Patch() TemplatePatch {
	return TemplatePatch{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Factor:      r.Factor,
		IsActive:    r.IsActive,
	}
}

type TemplateResponse struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Description       *string          `json:"description"`
	Price             decimal.Decimal  `json:"price"`
	Factor            *decimal.Decimal `json:"factor"`
	IsActive          bool             `json:"is_active"`
	ActiveAssignments int64            `json:"active_assignments"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func NewTemplateResponse(t Template, activeAssignments int64) TemplateResponse {
	return TemplateResponse{
		ID:                t.ID,
		Name:              t.Name,
		Description:       t.Description,
		Price:             t.Price,
		Factor:            t.Factor,
		IsActive:          t.IsActive,
		ActiveAssignments: activeAssignments,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ========== ASSIGNMENT DTOs ==========

type CreateAssignmentRequest struct {
	TemplateID int64   `json:"template_id"`
	EmployeeID int64   `json:"employee_id"`
	DueDate    string  `json:"due_date,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TemplateID <= 0 {
		errs.Add("template_id", "is required")
	}
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "is required")
	}
	if r.DueDate != "" {
		if _, ok := validator.IsValidDate(r.DueDate); !ok {
			errs.Add("due_date", "must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type UpdateAssignmentRequest struct {
	ID      int64   `json:"-"`
	Status  *Status `json:"status,omitempty"`
	DueDate *string `json:"due_date,omitempty"`
	Notes   *string `json:"notes,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !r.Status.IsValid() {
		errs.Add("status", "must be Pending, In Progress, Done or Completed")
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs.Add("due_date", "must be in YYYY-MM-DD format")
		}
	}

	return errs.Err()
}

type ReassignRequest struct {
	ID         int64 `json:"-"`
	EmployeeID int64 `json:"employee_id"`
}

func (r *ReassignRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "is required")
	}
	return errs.Err()
}

type ListAssignmentsRequest struct {
	EmployeeID *int64
	Status     string
	Date       string
}

func (r ListAssignmentsRequest) Filter() (AssignmentFilter, error) {
	var errs validator.ValidationErrors
	filter := AssignmentFilter{EmployeeID: r.EmployeeID}

	if r.Status != "" {
		s := Status(r.Status)
		if !s.IsValid() {
			errs.Add("status", "must be Pending, In Progress, Done or Completed")
		}
		filter.Status = &s
	}
	if r.Date != "" {
		d, ok := validator.IsValidDate(r.Date)
		if !ok {
			errs.Add("date", "must be in YYYY-MM-DD format")
		}
		filter.Date = &d
	}

	return filter, errs.Err()
}

type AssignmentResponse struct {
	ID             int64            `json:"id"`
	TemplateID     int64            `json:"template_id"`
	TemplateName   string           `json:"template_name"`
	EmployeeID     int64            `json:"employee_id"`
	EmployeeName   string           `json:"employee_name"`
	Price          decimal.Decimal  `json:"price"`
	Factor         *decimal.Decimal `json:"factor"`
	Status         Status           `json:"status"`
	DueDate        *string          `json:"due_date"`
	Notes          *string          `json:"notes"`
	CompletedAt    *time.Time       `json:"completed_at"`
	CompletedMonth *string          `json:"completed_month"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func NewAssignmentResponse(a AssignmentDetail) AssignmentResponse {
	var due *string
	if a.DueDate != nil {
		d := period.FormatDate(*a.DueDate)
		due = &d
	}
	return AssignmentResponse{
		ID:             a.ID,
		TemplateID:     a.TemplateID,
		TemplateName:   a.TemplateName,
		EmployeeID:     a.EmployeeID,
		EmployeeName:   a.EmployeeName,
		Price:          a.Price,
		Factor:         a.Factor,
		Status:         a.Status,
		DueDate:        due,
		Notes:          a.Notes,
		CompletedAt:    a.CompletedAt,
		CompletedMonth: a.CompletedMonth,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
