// Package openinghours decides whether instants fall inside a reservation
// unit's opening hours.
//
// Two representations coexist and must not be conflated: per-date resolved
// spans (Span), which are authoritative for booking decisions, and recurring
// weekday-pattern periods (Period), which only describe the usual schedule
// for display. Booking decisions are never validated against periods.
package openinghours

import (
	"errors"
	"time"

	"space-booking-api/internal/pkg/apidate"
)

var (
	ErrInvalidSpanTimes = errors.New("span start time must be before end time")
	ErrInvalidSpanState = errors.New("invalid span state")
)

const minutesPerDay = 24 * 60

// Span is one contiguous interval on one calendar date, resolved by the
// calendar data for that date. Spans never cross midnight.
type Span struct {
	date        time.Time
	startMinute int
	endMinute   int
	state       SpanState
}

func NewSpan(date time.Time, startMinute, endMinute int, state SpanState) (Span, error) {
	if startMinute < 0 || endMinute > minutesPerDay || startMinute >= endMinute {
		return Span{}, ErrInvalidSpanTimes
	}
	if !state.IsValid() {
		return Span{}, ErrInvalidSpanState
	}
	return Span{
		date:        apidate.DateOf(date),
		startMinute: startMinute,
		endMinute:   endMinute,
		state:       state,
	}, nil
}

func (s Span) Date() time.Time  { return s.date }
func (s Span) StartMinute() int { return s.startMinute }
func (s Span) EndMinute() int   { return s.endMinute }
func (s Span) State() SpanState { return s.state }

// Contains reports whether the instant falls inside this span's date and
// half-open [start, end) time-of-day interval, and the span is bookable.
func (s Span) Contains(at time.Time) bool {
	if !s.state.Bookable() {
		return false
	}
	if !apidate.SameDate(at, s.date) {
		return false
	}
	minute := apidate.MinuteOfDay(at)
	return minute >= s.startMinute && minute < s.endMinute
}

// IsOpenAt reports whether some span covers the instant. An instant with no
// matching span at all is not open: missing data is never assumed open.
func IsOpenAt(at time.Time, spans []Span) bool {
	for _, s := range spans {
		if s.Contains(at) {
			return true
		}
	}
	return false
}

// AllOpenAt reports whether every instant is individually open. Used to
// check both endpoints of a candidate slot.
func AllOpenAt(instants []time.Time, spans []Span) bool {
	for _, at := range instants {
		if !IsOpenAt(at, spans) {
			return false
		}
	}
	return true
}
