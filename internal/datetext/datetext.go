// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package datetext converts between the row-shaped date/time values kept in
// the store (YYYY-MM-DD dates, HH:MM:SS clock times) and the display shapes
// the site renders ("January 25, 2025", "10:00 AM - 12:00 PM").
//
// The transform is invertible at minute precision: parsing a display string
// produced by this package yields the original row values with seconds
// normalized to :00. Seconds are dropped by contract.
package datetext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DisplayDateLayout is the long-form date shown on the site.
	DisplayDateLayout = "January 2, 2006"
	// RowDateLayout is the calendar date kept in the store.
	RowDateLayout = "2006-01-02"
)

// clockRe matches "H:MM", "H:MM:SS" and "H:MM AM/PM" forms.
var clockRe = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})(?::(\d{2}))?\s*(?i:(AM|PM))?\s*$`)

// FormatDate renders a calendar date in display form.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// FormatRowDate renders a row-format date string (YYYY-MM-DD) in display form.
func FormatRowDate(row string) (string, error) {
	t, err := time.Parse(RowDateLayout, row)
	if err != nil {
		return "", fmt.Errorf("parsing row date %q: %w", row, err)
	}
	return FormatDate(t), nil
}

// ParseDate parses a display-form or row-form date string.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DisplayDateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(RowDateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// RowDate parses a display-form or row-form date string and returns the
// row form.
func RowDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(RowDateLayout), nil
}

// NormalizeClock converts "H:MM", "H:MM AM/PM" or "HH:MM:SS" into the
// 24-hour HH:MM:SS row form. Seconds in the input are discarded.
func NormalizeClock(s string) (string, error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("unrecognized time %q", s)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours > 23 {
		return "", fmt.Errorf("unrecognized time %q", s)
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil || minutes > 59 {
		return "", fmt.Errorf("unrecognized time %q", s)
	}

	switch strings.ToUpper(m[4]) {
	case "PM":
		if hours > 12 {
			return "", fmt.Errorf("unrecognized time %q", s)
		}
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours > 12 {
			return "", fmt.Errorf("unrecognized time %q", s)
		}
		if hours == 12 {
			hours = 0
		}
	}

	return fmt.Sprintf("%02d:%02d:00", hours, minutes), nil
}

// FormatClock renders an HH:MM:SS (or HH:MM) row time as a 12-hour string,
// e.g. "14:00:00" -> "2:00 PM".
func FormatClock(row string) (string, error) {
	m := clockRe.FindStringSubmatch(row)
	if m == nil || m[4] != "" {
		return "", fmt.Errorf("unrecognized row time %q", row)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil || hours > 23 {
		return "", fmt.Errorf("unrecognized row time %q", row)
	}
	minutes := m[2]

	ampm := "AM"
	if hours >= 12 {
		ampm = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, minutes, ampm), nil
}

// FormatTimeRange renders a start time and optional end time as the display
// range, e.g. ("10:00:00", "12:00:00") -> "10:00 AM - 12:00 PM".
func FormatTimeRange(start, end string) (string, error) {
	s, err := FormatClock(start)
	if err != nil {
		return "", err
	}
	if end == "" {
		return s, nil
	}
	e, err := FormatClock(end)
	if err != nil {
		return "", err
	}
	return s + " - " + e, nil
}

// ParseTimeRange parses a display time range back into row-form start and
// end times. A single time yields an empty end.
func ParseTimeRange(display string) (start, end string, err error) {
	parts := strings.SplitN(display, " - ", 2)

	start, err = NormalizeClock(parts[0])
	if err != nil {
		return "", "", err
	}
	if len(parts) == 2 {
		end, err = NormalizeClock(parts[1])
		if err != nil {
			return "", "", err
		}
	}
	return start, end, nil
}
