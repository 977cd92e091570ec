package validator

import (
	"testing"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"not-a-uuid",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2024-02-29", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", "", "2023-1-1"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	month, ok := IsValidMonth("2024-06")
	if !ok {
		t.Fatal("IsValidMonth(2024-06) = false, want true")
	}
	if month.Day() != 1 {
		t.Errorf("IsValidMonth(2024-06) day = %d, want 1", month.Day())
	}

	invalid := []string{"2024-13", "2024-6", "2024-06-01", "06-2024", ""}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "06:00", "23:59"}
	invalid := []string{"24:00", "06:60", "0600", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidWorkHours(t *testing.T) {
	valid := []float64{0, 0.5, 8, 24}
	invalid := []float64{-1, 24.5, 100}
	for _, h := range valid {
		if !IsValidWorkHours(h) {
			t.Errorf("IsValidWorkHours(%v) = false, want true", h)
		}
	}
	for _, h := range invalid {
		if IsValidWorkHours(h) {
			t.Errorf("IsValidWorkHours(%v) = true, want false", h)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "month", Message: "month must be YYYY-MM"},
	}
	want := "name: name is required; month: month must be YYYY-MM"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["name"] != "name is required" || m["month"] != "month must be YYYY-MM" {
		t.Errorf("ToMap() = %v", m)
	}
}
