package datetext

import (
	"testing"
	"time"
)

func TestFormatRowDate(t *testing.T) {
	got, err := FormatRowDate("2025-01-25")
	if err != nil {
		t.Fatalf("FormatRowDate: %v", err)
	}
	if got != "January 25, 2025" {
		t.Errorf("FormatRowDate = %q", got)
	}
}

func TestParseDateBothForms(t *testing.T) {
	want := time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"January 25, 2025", "2025-01-25"} {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("not a date"); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestDateRoundTrip(t *testing.T) {
	rows := []string{"2025-01-01", "2025-02-28", "2024-02-29", "2025-12-31"}
	for _, row := range rows {
		display, err := FormatRowDate(row)
		if err != nil {
			t.Fatalf("FormatRowDate(%q): %v", row, err)
		}
		back, err := RowDate(display)
		if err != nil {
			t.Fatalf("RowDate(%q): %v", display, err)
		}
		if back != row {
			t.Errorf("round trip %q -> %q -> %q", row, display, back)
		}
	}
}

func TestNormalizeClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"10:00 AM", "10:00:00", false},
		{"10:00 PM", "22:00:00", false},
		{"12:00 PM", "12:00:00", false},
		{"12:00 AM", "00:00:00", false},
		{"9:05 am", "09:05:00", false},
		{"14:30", "14:30:00", false},
		{"14:30:45", "14:30:00", false}, // seconds dropped by contract
		{"3:15", "03:15:00", false},
		{"25:00", "", true},
		{"10:65", "", true},
		{"noon", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeClock(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimeRange(t *testing.T) {
	got, err := FormatTimeRange("10:00:00", "12:00:00")
	if err != nil {
		t.Fatalf("FormatTimeRange: %v", err)
	}
	if got != "10:00 AM - 12:00 PM" {
		t.Errorf("FormatTimeRange = %q", got)
	}

	got, err = FormatTimeRange("19:00:00", "")
	if err != nil {
		t.Fatalf("FormatTimeRange: %v", err)
	}
	if got != "7:00 PM" {
		t.Errorf("FormatTimeRange single = %q", got)
	}
}

// Every display string the formatter can produce must parse back to the
// original row values exactly.
func TestTimeRangeRoundTrip(t *testing.T) {
	pairs := []struct{ start, end string }{
		{"00:00:00", "01:30:00"},
		{"09:00:00", "10:00:00"},
		{"11:00:00", "15:00:00"},
		{"12:00:00", "13:00:00"},
		{"23:45:00", ""},
		{"12:30:00", ""},
	}

	for _, p := range pairs {
		display, err := FormatTimeRange(p.start, p.end)
		if err != nil {
			t.Fatalf("FormatTimeRange(%q, %q): %v", p.start, p.end, err)
		}
		start, end, err := ParseTimeRange(display)
		if err != nil {
			t.Fatalf("ParseTimeRange(%q): %v", display, err)
		}
		if start != p.start || end != p.end {
			t.Errorf("round trip (%q, %q) -> %q -> (%q, %q)", p.start, p.end, display, start, end)
		}
	}
}

func TestParseTimeRangeAcceptsBareForms(t *testing.T) {
	start, end, err := ParseTimeRange("9:00")
	if err != nil {
		t.Fatalf("ParseTimeRange: %v", err)
	}
	if start != "09:00:00" || end != "" {
		t.Errorf("ParseTimeRange(9:00) = (%q, %q)", start, end)
	}
}
