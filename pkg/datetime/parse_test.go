package datetime

import (
	"testing"
	"time"
)

func TestMustParseTime(t *testing.T) {
	tests := []struct {
		name     string
		layout   string
		dateStr  string
		expected string
	}{
		{
			name:     "Short date",
			layout:   DateLayout,
			dateStr:  "3/7/2025",
			expected: "3/7/2025",
		},
		{
			name:     "ISO date",
			layout:   "2006-01-02",
			dateStr:  "2030-12-31",
			expected: "2030-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MustParseTime(tt.layout, tt.dateStr)
			if result.Format(tt.layout) != tt.expected {
				t.Errorf("MustParseTime() = %s, expected %s", result.Format(tt.layout), tt.expected)
			}
		})
	}
}

func TestMustParseTimePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseTime() should have panicked with invalid date")
		}
	}()
	MustParseTime(DateLayout, "not-a-date")
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"RFC3339 UTC", "2024-05-01T10:30:00Z", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), false},
		{"RFC3339 offset", "2024-05-01T23:30:00-03:00", time.Date(2024, 5, 2, 2, 30, 0, 0, time.UTC), false},
		{"Fractional seconds", "2024-05-01T10:30:00.123Z", time.Date(2024, 5, 1, 10, 30, 0, 123000000, time.UTC), false},
		{"No zone", "2024-05-01T10:30:00", time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), false},
		{"Date only", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"Surrounding spaces", " 2024-05-01 ", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{"Empty", "", time.Time{}, true},
		{"Garbage", "next tuesday", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseISO(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseISO() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.expected) {
				t.Errorf("ParseISO() = %v, expected %v", got, tt.expected)
			}
			if !tt.wantErr && got.Location() != time.UTC {
				t.Errorf("ParseISO() location = %v, expected UTC", got.Location())
			}
		})
	}
}

func TestFormatUTC(t *testing.T) {
	ts := time.Date(2024, 5, 2, 2, 30, 0, 0, time.UTC)
	if got := FormatUTC(ts, false); got != "5/2/2024" {
		t.Errorf("FormatUTC(date) = %q, expected 5/2/2024", got)
	}
	if got := FormatUTC(ts, true); got != "5/2/2024 02:30" {
		t.Errorf("FormatUTC(time) = %q, expected 5/2/2024 02:30", got)
	}

	local := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("X", -3*3600))
	if got := FormatUTC(local, false); got != "5/2/2024" {
		t.Errorf("FormatUTC(offset) = %q, expected 5/2/2024", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		target   time.Time
		expected int
	}{
		{"Same instant", now, 0},
		{"Exactly two days", now.Add(48 * time.Hour), 2},
		{"Partial day rounds up", now.Add(25 * time.Hour), 2},
		{"Past", now.Add(-48 * time.Hour), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(now, tt.target); got != tt.expected {
				t.Errorf("DaysUntil() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
