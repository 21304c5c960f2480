// Package apidate handles the civil date and duration wire formats used by
// the booking API ("2006-01-02" dates, "H:MM:SS" durations). Dates are
// timezone-naive: they are parsed and formatted in UTC and never shifted.
package apidate

import (
	"errors"
	"fmt"
	"time"

	"space-booking-api/internal/pkg/errs"
)

// ErrFormat marks malformed wire data. Callers match it with errors.Is; it
// signals an upstream contract violation, not a legitimate negative result.
var ErrFormat = errors.New("malformed wire format")

const wireDateLayout = "2006-01-02"

// Parse reads a wire date into a civil date (midnight UTC).
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(wireDateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "parse date %q", s), ErrFormat)
	}
	return t, nil
}

// Format is the inverse of Parse for all valid civil dates.
func Format(t time.Time) string {
	return t.Format(wireDateLayout)
}

// DateOf truncates an instant to its civil date, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two instants fall on the same calendar date,
// ignoring their time-of-day and location offsets.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ISOWeekday returns the ISO weekday number, Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	return DateOf(t).AddDate(0, 0, 1-ISOWeekday(t))
}

// EndOfWeek returns the following Sunday 23:59:59.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Second)
}

// MinuteOfDay returns the instant's time-of-day in whole minutes,
// sub-minute precision truncated.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseTimeOfDay reads an "HH:MM" wire time into minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "parse time of day %q", s), ErrFormat)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatTimeOfDay is the inverse of ParseTimeOfDay.
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
