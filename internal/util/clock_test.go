package util

import "testing"

func TestValidClock12(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"9:30 AM", true},
		{"12:00 PM", true},
		{"12:00 AM", true},
		{"1:05 pm", true},
		{" 10:15 AM ", true},
		{"13:00 PM", false},
		{"9:30", false},
		{"09:60 AM", false},
		{"", false},
		{"noon", false},
	}

	for _, tc := range tests {
		if got := ValidClock12(tc.in); got != tc.want {
			t.Errorf("ValidClock12(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeClock12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9:30 am", "9:30 AM"},
		{"09:30 AM", "9:30 AM"},
		{" 12:00 pm ", "12:00 PM"},
		{"not a time", "not a time"},
	}

	for _, tc := range tests {
		if got := NormalizeClock12(tc.in); got != tc.want {
			t.Errorf("NormalizeClock12(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2025-06-15", true},
		{"2025-02-30", false},
		{"15-06-2025", false},
		{"2025/06/15", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := ValidDate(tc.in); got != tc.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateBefore(t *testing.T) {
	if !DateBefore("2025-06-14", "2025-06-15") {
		t.Error("expected 2025-06-14 before 2025-06-15")
	}
	if DateBefore("2025-06-15", "2025-06-15") {
		t.Error("a date is not before itself")
	}
	if DateBefore("2025-07-01", "2025-06-30") {
		t.Error("expected 2025-07-01 not before 2025-06-30")
	}
}
