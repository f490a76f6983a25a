package period

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.November, 17, 13, 45, 0, 0, time.UTC)

	m, err := Resolve("", now)

	require.NoError(t, err)
	assert.Equal(t, "2025-11", m.String())
}

func TestResolve_ParsesExplicitMonth(t *testing.T) {
	now := time.Date(2025, time.November, 17, 0, 0, 0, 0, time.UTC)

	m, err := Resolve("2024-02", now)

	require.NoError(t, err)
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, time.February, m.Month)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{"2025-13", "2025/11", "11-2025", "november", "2025-1-01"}
	for _, c := range cases {
		_, err := Parse(c)
		var verrs validator.ValidationErrors
		if assert.Error(t, err, c) {
			assert.ErrorAs(t, err, &verrs, c)
			assert.Contains(t, verrs.ToMap(), "month")
		}
	}
}

func TestMonth_Range(t *testing.T) {
	m := Month{Year: 2025, Month: time.December}

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), m.Start())
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), m.End())
	assert.Equal(t, "2026-01", m.Next().String())
}

func TestMonth_Contains(t *testing.T) {
	m := Month{Year: 2025, Month: time.November}
	cases := []struct {
		at   time.Time
		want bool
	}{
		{time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2025, time.November, 30, 23, 59, 59, 0, time.UTC), true},
		{time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2025, time.October, 31, 23, 59, 59, 0, time.UTC), false},
	}
	for _, c := range cases {
		if got := m.Contains(c.at); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.at, got, c.want)
		}
	}
}

func TestMonth_TextRoundTrip(t *testing.T) {
	var m Month
	require.NoError(t, m.UnmarshalText([]byte("2025-03")))

	b, err := m.MarshalText()

	require.NoError(t, err)
	assert.Equal(t, "2025-03", string(b))
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, time.November, 3, 18, 30, 0, 0, time.UTC)

	today, err := ParseDate("", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-11-03", FormatDate(today))

	d, err := ParseDate("2025-10-09", now)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-09", FormatDate(d))

	_, err = ParseDate("09/10/2025", now)
	assert.Error(t, err)
}
