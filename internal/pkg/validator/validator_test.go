package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"admin", "john.doe", "jane_d-1"}
	invalid := []string{"ab", "has space", "semi;colon", ""}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"123456", true},
		{"", false},
		{"12a34", false},
		{" 123", false},
	}
	for _, c := range cases {
		got := IsNumeric(c.input)
		if got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-11-03", true},
		{"2024-02-29", true},
		{"2025-02-30", false},
		{"03-11-2025", false},
		{"", false},
	}
	for _, c := range cases {
		_, got := IsValidDate(c.input)
		if got != c.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"2025-11", true},
		{"2025-00", false},
		{"2025-13", false},
		{"2025-11-01", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsValidMonth(c.input)
		if got != c.want {
			t.Errorf("IsValidMonth(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	if _, ok := IsValidDateTime("2025-11-03T08:00:00Z"); !ok {
		t.Errorf("IsValidDateTime(RFC3339) = false, want true")
	}
	if _, ok := IsValidDateTime("2025-11-03T08:00:00.123+07:00"); !ok {
		t.Errorf("IsValidDateTime(RFC3339Nano) = false, want true")
	}
	if _, ok := IsValidDateTime("2025-11-03 08:00"); ok {
		t.Errorf("IsValidDateTime(no zone) = true, want false")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"fixed", "percentage"}
	if !IsInSlice("fixed", slice) {
		t.Errorf("IsInSlice(fixed) = false, want true")
	}
	if IsInSlice("hourly", slice) {
		t.Errorf("IsInSlice(hourly) = true, want false")
	}
}

func TestIsNonNegativeAndPositive(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	zero := decimal.Zero
	one := decimal.NewFromInt(1)

	if !IsNonNegative(nil) || !IsNonNegative(&zero) || IsNonNegative(&neg) {
		t.Errorf("IsNonNegative returned unexpected result")
	}
	if !IsPositive(nil) || !IsPositive(&one) || IsPositive(&zero) {
		t.Errorf("IsPositive returned unexpected result")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "price", Message: "must be non-negative"},
	}
	want := "name: is required; price: must be non-negative"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	var errs ValidationErrors
	errs.Add("name", "is required")
	errs.Add("month", "must be in YYYY-MM format")

	m := errs.ToMap()
	if m["name"] != "is required" || m["month"] != "must be in YYYY-MM format" {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Errorf("Err() on empty = %v, want nil", errs.Err())
	}
	errs.Add("name", "is required")
	if errs.Err() == nil {
		t.Errorf("Err() on non-empty = nil, want error")
	}
}
