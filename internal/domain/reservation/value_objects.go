package reservation

import (
	"errors"
	"fmt"
	"time"

	"space-booking-api/internal/pkg/apidate"
)

var ErrInvalidTimeSlot = errors.New("start time must be before end time")

// TimeSlot is the half-open interval [start, end) a reservation occupies,
// or the candidate interval a user is constructing.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// DurationMinutes is the slot length in whole minutes, floor-truncated to
// match the granularity of the duration bounds.
func (ts TimeSlot) DurationMinutes() apidate.Minutes {
	return apidate.Minutes(ts.Duration() / time.Minute)
}

// LastIncludedMinute is the start of the slot's final minute, the instant
// checked against opening hours for the slot's end.
func (ts TimeSlot) LastIncludedMinute() time.Time {
	return ts.end.Add(-time.Minute)
}

// Overlaps uses half-open interval semantics: touching slots do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// ToTstzrange renders the slot as a PostgreSQL range literal.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// DurationBounds are a unit's minimum and maximum allowed reservation
// lengths. A zero bound is unset and imposes no limit.
type DurationBounds struct {
	Min apidate.Minutes
	Max apidate.Minutes
}

// LongEnough is true iff the slot lasts at least Min, vacuously when unset.
func (b DurationBounds) LongEnough(ts TimeSlot) bool {
	if b.Min.IsZero() {
		return true
	}
	return ts.DurationMinutes() >= b.Min
}

// ShortEnough is true iff the slot lasts at most Max, vacuously when unset.
func (b DurationBounds) ShortEnough(ts TimeSlot) bool {
	if b.Max.IsZero() {
		return true
	}
	return ts.DurationMinutes() <= b.Max
}
