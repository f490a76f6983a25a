package period

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
)

const (
	MonthLayout = "2006-01"
	DateLayout  = "2006-01-02"
)

// Month is a calendar month, the unit every payroll aggregate is scoped to.
type Month struct {
	Year  int
	Month time.Month
}

// Of returns the month containing t, evaluated in UTC.
func Of(t time.Time) Month {
	t = t.UTC()
	return Month{Year: t.Year(), Month: t.Month()}
}

// Parse parses a "YYYY-MM" identifier.
func Parse(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, validator.ValidationErrors{
			{Field: "month", Message: fmt.Sprintf("must be in YYYY-MM format, got %q", s)},
		}
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Resolve returns the month named by s, or the month containing now when s is empty.
func Resolve(s string, now time.Time) (Month, error) {
	if strings.TrimSpace(s) == "" {
		return Of(now), nil
	}
	return Parse(s)
}

// Start is the first instant of the month (inclusive).
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant of the following month (exclusive).
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

func (m Month) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(m.Start()) && t.Before(m.End())
}

func (m Month) Next() Month {
	return Of(m.End())
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	return m.Start().Format(MonthLayout)
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD, or returns today when s is empty.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return Day(now), nil
	}
	d, ok := validator.IsValidDate(strings.TrimSpace(s))
	if !ok {
		return time.Time{}, validator.ValidationErrors{
			{Field: "date", Message: fmt.Sprintf("must be in YYYY-MM-DD format, got %q", s)},
		}
	}
	return d, nil
}
