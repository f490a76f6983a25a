package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const MinPasswordLength = 6

type CreateEmployeeRequest struct {
	Name         string           `json:"name"`
	Username     string           `json:"username"`
	Email        *string          `json:"email,omitempty"`
	Password     string           `json:"password"`
	EmployeeType EmployeeType     `json:"employee_type"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`

	MonthlyFactor        *decimal.Decimal `json:"monthly_factor,omitempty"`
	OvertimeFactor       *decimal.Decimal `json:"overtime_factor,omitempty"`
	NormalHourRate       *decimal.Decimal `json:"normal_hour_rate,omitempty"`
	OvertimeHourRate     *decimal.Decimal `json:"overtime_hour_rate,omitempty"`
	RequiredMonthlyHours *decimal.Decimal `json:"required_monthly_hours,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = trimEmail(r.Email)
	if r.EmployeeType == "" {
		r.EmployeeType = TypeEmployee
	}

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	if validator.IsEmpty(r.Username) {
		errs.Add("username", "is required")
	} else if !validator.IsValidUsername(r.Username) {
		errs.Add("username", "must be 3-50 characters of letters, digits, '.', '_' or '-'")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "must be a valid email address")
	}
	if len(r.Password) < MinPasswordLength {
		errs.Add("password", "must be at least 6 characters")
	}
	if !r.EmployeeType.IsValid() {
		errs.Add("employee_type", "must be Admin, Managerial or Employee")
	}
	validateRates(&errs, r.BaseSalary, r.MonthlyFactor, r.OvertimeFactor, r.NormalHourRate, r.OvertimeHourRate, r.RequiredMonthlyHours, r.HourlyRate)

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID           int64            `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Username     *string          `json:"username,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Password     *string          `json:"password,omitempty"`
	EmployeeType *EmployeeType    `json:"employee_type,omitempty"`
	BaseSalary   *decimal.Decimal `json:"base_salary,omitempty"`

	MonthlyFactor        *decimal.Decimal `json:"monthly_factor,omitempty"`
	OvertimeFactor       *decimal.Decimal `json:"overtime_factor,omitempty"`
	NormalHourRate       *decimal.Decimal `json:"normal_hour_rate,omitempty"`
	OvertimeHourRate     *decimal.Decimal `json:"overtime_hour_rate,omitempty"`
	RequiredMonthlyHours *decimal.Decimal `json:"required_monthly_hours,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	ResetRates           bool             `json:"reset_rates,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = trimEmail(r.Email)

	if r.ID <= 0 {
		errs.Add("id", "is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "cannot be empty")
	}
	if r.Username != nil && !validator.IsValidUsername(*r.Username) {
		errs.Add("username", "must be 3-50 characters of letters, digits, '.', '_' or '-'")
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "must be a valid email address")
	}
	if r.Password != nil && len(*r.Password) < MinPasswordLength {
		errs.Add("password", "must be at least 6 characters")
	}
	if r.EmployeeType != nil && !r.EmployeeType.IsValid() {
		errs.Add("employee_type", "must be Admin, Managerial or Employee")
	}
	validateRates(&errs, r.BaseSalary, r.MonthlyFactor, r.OvertimeFactor, r.NormalHourRate, r.OvertimeHourRate, r.RequiredMonthlyHours, r.HourlyRate)

	return errs.Err()
}

// trimEmail drops surrounding blanks; a blank email counts as absent.
func trimEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.TrimSpace(*email)
	if e == "" {
		return nil
	}
	return &e
}

func validateRates(errs *validator.ValidationErrors, baseSalary, monthlyFactor, overtimeFactor, normalRate, overtimeRate, requiredHours, hourlyRate *decimal.Decimal) {
	if !validator.IsNonNegative(baseSalary) {
		errs.Add("base_salary", "must be non-negative")
	}
	if !validator.IsPositive(monthlyFactor) {
		errs.Add("monthly_factor", "must be greater than zero")
	}
	if !validator.IsNonNegative(overtimeFactor) {
		errs.Add("overtime_factor", "must be non-negative")
	}
	if !validator.IsNonNegative(normalRate) {
		errs.Add("normal_hour_rate", "must be non-negative")
	}
	if !validator.IsNonNegative(overtimeRate) {
		errs.Add("overtime_hour_rate", "must be non-negative")
	}
	if !validator.IsNonNegative(requiredHours) {
		errs.Add("required_monthly_hours", "must be non-negative")
	}
	if !validator.IsNonNegative(hourlyRate) {
		errs.Add("hourly_rate", "must be non-negative")
	}
}

type EmployeeResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Username     string          `json:"username"`
	Email        *string         `json:"email"`
	EmployeeType EmployeeType    `json:"employee_type"`
	Role         Role            `json:"role"`
	BaseSalary   decimal.Decimal `json:"base_salary"`

	MonthlyFactor        *decimal.Decimal `json:"monthly_factor"`
	OvertimeFactor       *decimal.Decimal `json:"overtime_factor"`
	NormalHourRate       *decimal.Decimal `json:"normal_hour_rate"`
	OvertimeHourRate     *decimal.Decimal `json:"overtime_hour_rate"`
	RequiredMonthlyHours *decimal.Decimal `json:"required_monthly_hours"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		Username:             e.Username,
		Email:                e.Email,
		EmployeeType:         e.EmployeeType,
		Role:                 e.EmployeeType.Role(),
		BaseSalary:           e.BaseSalary,
		MonthlyFactor:        e.MonthlyFactor,
		OvertimeFactor:       e.OvertimeFactor,
		NormalHourRate:       e.NormalHourRate,
		OvertimeHourRate:     e.OvertimeHourRate,
		RequiredMonthlyHours: e.RequiredMonthlyHours,
		HourlyRate:           e.HourlyRate,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}
