package attendance

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/period"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CheckInRequest struct {
	EmployeeID  int64  `json:"employee_id"`
	Date        string `json:"date,omitempty"`
	CheckInTime string `json:"check_in_time,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "is required")
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "must be in YYYY-MM-DD format")
		}
	}
	if r.CheckInTime != "" {
		if _, ok := validator.IsValidDateTime(r.CheckInTime); !ok {
			errs.Add("check_in_time", "must be an ISO8601 timestamp")
		}
	}

	return errs.Err()
}

type CheckOutRequest struct {
	EmployeeID   int64  `json:"employee_id"`
	Date         string `json:"date,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs.Add("employee_id", "is required")
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs.Add("date", "must be in YYYY-MM-DD format")
		}
	}
	if r.CheckOutTime != "" {
		if _, ok := validator.IsValidDateTime(r.CheckOutTime); !ok {
			errs.Add("check_out_time", "must be an ISO8601 timestamp")
		}
	}

	return errs.Err()
}

type SessionResponse struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employee_id"`
	Date         string          `json:"date"`
	CheckInTime  time.Time       `json:"check_in_time"`
	CheckOutTime *time.Time      `json:"check_out_time"`
	DailyHours   decimal.Decimal `json:"daily_hours"`
	IsOpen       bool            `json:"is_open"`
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		Date:         period.FormatDate(s.Date),
		CheckInTime:  s.CheckInTime,
		CheckOutTime: s.CheckOutTime,
		DailyHours:   s.DailyHours,
		IsOpen:       s.IsOpen(),
	}
}

func NewSessionResponses(sessions []Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewSessionResponse(s))
	}
	return out
}

type CheckOutResponse struct {
	ClosedSessions []SessionResponse `json:"closed_sessions"`
	TotalHours     decimal.Decimal   `json:"total_hours"`
}

type MonthlyTotalResponse struct {
	EmployeeID     int64           `json:"employee_id"`
	Month          period.Month    `json:"month"`
	TotalSessions  int             `json:"total_sessions"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	DaysWorked     int             `json:"days_worked"`
	AvgHoursPerDay decimal.Decimal `json:"avg_hours_per_day"`
}
