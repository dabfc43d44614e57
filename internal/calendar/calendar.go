// Copyright (c) 2025-2026 Kanata Chinese Seniors Support Centre
// SPDX-License-Identifier: GPL-3.0-or-later

// Package calendar maps events and program schedules onto calendar dates for
// the site's calendar view. All functions are pure.
package calendar

import (
	"strings"
	"time"

	"github.com/kcssc/kcssc-go/internal/datetext"
	"github.com/kcssc/kcssc-go/internal/model"
)

// WeekdayTokens maps the schedule substrings we recognize to weekdays.
// Full English names and 3-letter abbreviations, matched case-insensitively.
var WeekdayTokens = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

// sameDay reports whether two times fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EventsOnDate returns the events whose date equals the given calendar date.
// Time of day is ignored. Events with unparseable dates never match.
func EventsOnDate(events []model.Event, date time.Time) []model.Event {
	var out []model.Event
	for _, ev := range events {
		d, err := datetext.ParseDate(ev.Date)
		if err != nil {
			continue
		}
		if sameDay(d, date) {
			out = append(out, ev)
		}
	}
	return out
}

// ScheduleWeekdays extracts the set of weekdays named in a free-text
// schedule string. An empty result means the schedule has no recognized
// weekday tokens (a one-off or unparseable schedule).
func ScheduleWeekdays(schedule string) map[time.Weekday]bool {
	lower := strings.ToLower(schedule)
	days := make(map[time.Weekday]bool)
	for token, day := range WeekdayTokens {
		if strings.Contains(lower, token) {
			days[day] = true
		}
	}
	return days
}

// ProgramOccurrencesInMonth returns every date in the given month whose
// weekday is named in the program's schedule, in ascending order. Programs
// with no recognized weekday token have no calendar presence and yield nil.
func ProgramOccurrencesInMonth(p model.Program, year int, month time.Month) []time.Time {
	days := ScheduleWeekdays(p.Schedule)
	if len(days) == 0 {
		return nil
	}

	var dates []time.Time
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		if days[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}

// ProgramsOnDate filters programs whose occurrence set for the date's month
// includes the date.
func ProgramsOnDate(programs []model.Program, date time.Time) []model.Program {
	var out []model.Program
	for _, p := range programs {
		for _, occ := range ProgramOccurrencesInMonth(p, date.Year(), date.Month()) {
			if sameDay(occ, date) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
