// Package hst converts between absolute calendar dates and HST offsets
// (days after planting). All functions operate on calendar days in UTC with
// no time-of-day component.
package hst

import (
	"fmt"
	"math"
	"time"
)

// DayFormat is the wire format for calendar days.
const DayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse calendar day %q: %w", s, err)
	}
	return t, nil
}

// FormatDay renders a calendar day in wire format.
func FormatDay(t time.Time) string {
	return Day(t).Format(DayFormat)
}

// Day normalizes a timestamp to its calendar day at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FromOffset returns the calendar day offset days after (negative: before)
// the planting date.
func FromOffset(planting time.Time, offset int) time.Time {
	return Day(planting).AddDate(0, 0, offset)
}

// Offset returns the whole-day distance from the planting date to date,
// rounded to the nearest integer day to guard against daylight-saving or
// fractional-day artifacts in the inputs.
func Offset(planting, date time.Time) int {
	diff := Day(date).Sub(Day(planting))
	return int(math.Round(diff.Hours() / 24))
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
