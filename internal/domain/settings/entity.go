package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminSettings is the singleton row of company-wide pay defaults.
type AdminSettings struct {
	NormalHourRate          decimal.Decimal
	OvertimeHourRate        decimal.Decimal
	OvertimeThresholdHours  decimal.Decimal
	AllowTaskOvertimeFactor bool
	UpdatedAt               *time.Time
}

// Defaults returns the settings used until an administrator saves their own.
func Defaults() AdminSettings {
	return AdminSettings{
		NormalHourRate:         decimal.NewFromInt(10),
		OvertimeHourRate:       decimal.NewFromInt(15),
		OvertimeThresholdHours: decimal.NewFromInt(160),
	}
}
