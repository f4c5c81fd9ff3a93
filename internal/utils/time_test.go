package utils

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tm := time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	if got := DateKey(tm); got != "2026-08-31" {
		t.Errorf("DateKey = %q, want 2026-08-31", got)
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"7am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{420, "07:00"},
		{545, "09:05"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := MinutesToTime(tt.in); got != tt.want {
			t.Errorf("MinutesToTime(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCombineDateAndTime(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation failed: %v", err)
	}

	got, err := CombineDateAndTime("2026-08-31", "09:30", loc)
	if err != nil {
		t.Fatalf("CombineDateAndTime failed: %v", err)
	}
	want := time.Date(2026, 8, 31, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("08/31/2026", "09:30", loc); err == nil {
		t.Error("expected error for invalid date format")
	}
	if _, err := CombineDateAndTime("2026-08-31", "9:30am", loc); err == nil {
		t.Error("expected error for invalid time format")
	}
}

func TestLoadLocation(t *testing.T) {
	for _, tz := range []string{"", "Local"} {
		loc, err := LoadLocation(tz)
		if err != nil {
			t.Errorf("LoadLocation(%q) failed: %v", tz, err)
		}
		if loc != time.Local {
			t.Errorf("LoadLocation(%q) = %v, want Local", tz, loc)
		}
	}

	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestValidators(t *testing.T) {
	if !ValidateTimeFormat("07:00") || ValidateTimeFormat("7:00pm") {
		t.Error("ValidateTimeFormat misbehaved")
	}
	if !ValidateDateFormat("2026-08-31") || ValidateDateFormat("31-08-2026") {
		t.Error("ValidateDateFormat misbehaved")
	}
	if !ValidateTimezone("Local") || !ValidateTimezone("UTC") || ValidateTimezone("Nowhere/Fake") {
		t.Error("ValidateTimezone misbehaved")
	}
}
