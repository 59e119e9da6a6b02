package validator

import (
	"math"
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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-31"); !ok {
		t.Error("IsValidDate(2025-01-31) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "31-01-2025", "2025-01-32", "today", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:00", "17:00", "23:59"}
	invalid := []string{"24:00", "8:0x", "08:60", "0800", ""}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidCoordinates(t *testing.T) {
	if !IsValidLatitude(-6.930917) || !IsValidLongitude(107.620422) {
		t.Error("expected Bandung office coordinates to validate")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(math.NaN()) || IsValidLatitude(math.Inf(1)) {
		t.Error("expected out-of-range latitude to fail")
	}
	if IsValidLongitude(-180.5) || IsValidLongitude(math.NaN()) {
		t.Error("expected out-of-range longitude to fail")
	}
}
