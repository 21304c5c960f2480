// Package availability composes opening hours, duration bounds, collision
// detection and the booking horizon into a single reservability decision.
//
// Every function here is pure and synchronous: the full context is passed
// in, a value comes back, nothing is retried or cached. Rejections are
// values, not errors; upstream data problems surface as "not reservable"
// (fail-closed) rather than panics.
package availability

import (
	"time"

	"space-booking-api/internal/domain/openinghours"
	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/pkg/apidate"
)

// Reason says why a candidate slot was rejected, or that it was accepted.
type Reason string

const (
	ReasonOK                  Reason = "ok"
	ReasonInvalidInterval     Reason = "invalid_interval"
	ReasonOutsideOpeningHours Reason = "outside_opening_hours"
	ReasonTooShort            Reason = "too_short"
	ReasonTooLong             Reason = "too_long"
	ReasonConflict            Reason = "conflict"
	ReasonInPast              Reason = "in_past"
	ReasonTooSoon             Reason = "too_soon"
	ReasonTooFarAhead         Reason = "too_far_ahead"
	ReasonInApplicationRound  Reason = "in_application_round"
)

// Round is a seasonal-allocation window: while it covers a date, slots on
// that date are allocated by application, never by direct booking.
type Round struct {
	Begin time.Time // first closed civil date
	End   time.Time // last closed civil date, inclusive
}

func (r Round) Covers(date time.Time) bool {
	d := apidate.DateOf(date)
	return !d.Before(apidate.DateOf(r.Begin)) && !d.After(apidate.DateOf(r.End))
}

// Context bundles everything a reservability decision needs. All fields are
// read-only inputs; Blocking must already be filtered to occupying states.
type Context struct {
	Spans    []openinghours.Span
	Bounds   reservation.DurationBounds
	Blocking []reservation.TimeSlot

	Now           time.Time
	MinDaysBefore int // book at least this many days ahead; 0 = unset
	MaxDaysBefore int // book at most this many days ahead; 0 = unset
	Rounds        []Round
}

// Check runs the full decision for a candidate [start, end) interval and
// returns the first failing reason, in a fixed order: interval shape,
// opening hours, duration bounds, collisions, booking horizon.
func Check(start, end time.Time, ctx Context) Reason {
	if !start.Before(end) {
		return ReasonInvalidInterval
	}
	candidate, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return ReasonInvalidInterval
	}

	// Both the start and the start of the final minute must lie in an open
	// span, so a slot may end exactly at closing but not run past it.
	endpoints := []time.Time{candidate.Start(), candidate.LastIncludedMinute()}
	if !openinghours.AllOpenAt(endpoints, ctx.Spans) {
		return ReasonOutsideOpeningHours
	}

	if !ctx.Bounds.LongEnough(candidate) {
		return ReasonTooShort
	}
	if !ctx.Bounds.ShortEnough(candidate) {
		return ReasonTooLong
	}

	if reservation.Collides(ctx.Blocking, candidate) {
		return ReasonConflict
	}

	return checkHorizon(candidate.Start(), ctx)
}

// IsSlotReservable is the boolean form of Check.
func IsSlotReservable(start, end time.Time, ctx Context) bool {
	return Check(start, end, ctx) == ReasonOK
}

func checkHorizon(start time.Time, ctx Context) Reason {
	if start.Before(ctx.Now) {
		return ReasonInPast
	}
	today := apidate.DateOf(ctx.Now)
	if ctx.MinDaysBefore > 0 && start.Before(today.AddDate(0, 0, ctx.MinDaysBefore)) {
		return ReasonTooSoon
	}
	if ctx.MaxDaysBefore > 0 && apidate.DateOf(start).After(today.AddDate(0, 0, ctx.MaxDaysBefore)) {
		return ReasonTooFarAhead
	}
	for _, round := range ctx.Rounds {
		if round.Covers(start) {
			return ReasonInApplicationRound
		}
	}
	return ReasonOK
}
