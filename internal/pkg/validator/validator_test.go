package validator

import (
	"testing"
	"time"
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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", "", "not-a-date"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	m, ok := IsValidMonth("2025-03")
	if !ok {
		t.Fatal("IsValidMonth(\"2025-03\") = false, want true")
	}
	if m.Year() != 2025 || m.Month() != time.March {
		t.Errorf("IsValidMonth(\"2025-03\") parsed as %v", m)
	}

	invalid := []string{"2025-13", "2025", "03-2025", "", "2025-3"}
	for _, s := range invalid {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"vacation", "sick", "personal", "other"}
	if !IsInSlice("sick", slice) {
		t.Error("IsInSlice(\"sick\") = false, want true")
	}
	if IsInSlice("holiday", slice) {
		t.Error("IsInSlice(\"holiday\") = true, want false")
	}
}
