package settings

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SettingsResponse struct {
	NormalHourRate          decimal.Decimal `json:"normal_hour_rate"`
	OvertimeHourRate        decimal.Decimal `json:"overtime_hour_rate"`
	OvertimeThresholdHours  decimal.Decimal `json:"overtime_threshold_hours"`
	AllowTaskOvertimeFactor bool            `json:"allow_task_overtime_factor"`
	UpdatedAt               *time.Time      `json:"updated_at,omitempty"`
}

func NewSettingsResponse(s AdminSettings) SettingsResponse {
	return SettingsResponse{
		NormalHourRate:          s.NormalHourRate,
		OvertimeHourRate:        s.OvertimeHourRate,
		OvertimeThresholdHours:  s.OvertimeThresholdHours,
		AllowTaskOvertimeFactor: s.AllowTaskOvertimeFactor,
		UpdatedAt:               s.UpdatedAt,
	}
}

type UpdateSettingsRequest struct {
	NormalHourRate          *decimal.Decimal `json:"normal_hour_rate,omitempty"`
	OvertimeHourRate        *decimal.Decimal `json:"overtime_hour_rate,omitempty"`
	OvertimeThresholdHours  *decimal.Decimal `json:"overtime_threshold_hours,omitempty"`
	AllowTaskOvertimeFactor *bool            `json:"allow_task_overtime_factor,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsNonNegative(r.NormalHourRate) {
		errs.Add("normal_hour_rate", "must be non-negative")
	}
	if !validator.IsNonNegative(r.OvertimeHourRate) {
		errs.Add("overtime_hour_rate", "must be non-negative")
	}
	if !validator.IsNonNegative(r.OvertimeThresholdHours) {
		errs.Add("overtime_threshold_hours", "must be non-negative")
	}

	return errs.Err()
}

// Apply returns s with the requested changes.
func (r UpdateSettingsRequest) Apply(s AdminSettings) AdminSettings {
	if r.NormalHourRate != nil {
		s.NormalHourRate = *r.NormalHourRate
	}
	if r.OvertimeHourRate != nil {
		s.OvertimeHourRate = *r.OvertimeHourRate
	}
	if r.OvertimeThresholdHours != nil {
		s.OvertimeThresholdHours = *r.OvertimeThresholdHours
	}
	if r.AllowTaskOvertimeFactor != nil {
		s.AllowTaskOvertimeFactor = *r.AllowTaskOvertimeFactor
	}
	return s
}
