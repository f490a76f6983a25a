package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one check-in/check-out interval. An employee may hold several
// sessions on the same day; CheckOutTime stays nil while the session is open.
type Session struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time
	CheckInTime  time.Time
	CheckOutTime *time.Time
	DailyHours   decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Session) IsOpen() bool {
	return s.CheckOutTime == nil
}

var sixty = decimal.NewFromInt(60)

// SessionHours is the worked duration in hours: whole minutes elapsed,
// divided by 60, rounded to 2 decimals and never negative.
func SessionHours(checkIn, checkOut time.Time) decimal.Decimal {
	minutes := int64(checkOut.Sub(checkIn) / time.Minute)
	if minutes <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(minutes).Div(sixty).Round(2)
}

// TotalHours sums DailyHours of the closed sessions.
func TotalHours(sessions []Session) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sessions {
		if !s.IsOpen() {
			total = total.Add(s.DailyHours)
		}
	}
	return total
}
