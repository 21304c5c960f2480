//go:build unit

package availability_test

import (
	"testing"
	"time"

	"space-booking-api/internal/domain/availability"
	"space-booking-api/internal/domain/openinghours"
	"space-booking-api/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(day string, hour, minute int) time.Time {
	d := date(day)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func openSpan(t *testing.T, day string, startHour, endHour int) openinghours.Span {
	t.Helper()
	s, err := openinghours.NewSpan(date(day), startHour*60, endHour*60, openinghours.StateOpen)
	require.NoError(t, err)
	return s
}

func blockingSlot(t *testing.T, day string, sh, sm, eh, em int) reservation.TimeSlot {
	t.Helper()
	ts, err := reservation.NewTimeSlot(at(day, sh, sm), at(day, eh, em))
	require.NoError(t, err)
	return ts
}

// A permissive context for the week of 2021-10-25: the unit is open 09-21
// every day, no bounds, no bookings, no horizon limits.
func weekContext(t *testing.T) availability.Context {
	t.Helper()
	days := []string{"2021-10-25", "2021-10-26", "2021-10-27", "2021-10-28", "2021-10-29", "2021-10-30", "2021-10-31"}
	spans := make([]openinghours.Span, 0, len(days))
	for _, d := range days {
		spans = append(spans, openSpan(t, d, 9, 21))
	}
	return availability.Context{
		Spans: spans,
		Now:   at("2021-10-25", 8, 0),
	}
}

func TestCheckAccepts(t *testing.T) {
	ctx := weekContext(t)
	assert.Equal(t, availability.ReasonOK,
		availability.Check(at("2021-10-27", 9, 30), at("2021-10-27", 10, 30), ctx))
}

func TestCheckDegenerateInterval(t *testing.T) {
	ctx := weekContext(t)
	start := at("2021-10-27", 9, 30)

	assert.Equal(t, availability.ReasonInvalidInterval, availability.Check(start, start, ctx))
	assert.Equal(t, availability.ReasonInvalidInterval, availability.Check(start, start.Add(-time.Hour), ctx))
	assert.False(t, availability.IsSlotReservable(start, start, ctx))

	// Degenerate intervals fail regardless of context.
	assert.Equal(t, availability.ReasonInvalidInterval, availability.Check(start, start, availability.Context{}))
}

func TestCheckOpeningHours(t *testing.T) {
	ctx := weekContext(t)

	t.Run("slot ending exactly at closing is accepted", func(t *testing.T) {
		assert.Equal(t, availability.ReasonOK,
			availability.Check(at("2021-10-27", 20, 0), at("2021-10-27", 21, 0), ctx))
	})

	t.Run("slot running past closing is rejected", func(t *testing.T) {
		assert.Equal(t, availability.ReasonOutsideOpeningHours,
			availability.Check(at("2021-10-27", 20, 30), at("2021-10-27", 21, 30), ctx))
	})

	t.Run("slot before opening is rejected", func(t *testing.T) {
		assert.Equal(t, availability.ReasonOutsideOpeningHours,
			availability.Check(at("2021-10-27", 8, 0), at("2021-10-27", 9, 0), ctx))
	})

	t.Run("no span data fails closed", func(t *testing.T) {
		bare := ctx
		bare.Spans = nil
		assert.Equal(t, availability.ReasonOutsideOpeningHours,
			availability.Check(at("2021-10-27", 9, 30), at("2021-10-27", 10, 30), bare))
	})
}

func TestCheckDurationBounds(t *testing.T) {
	ctx := weekContext(t)
	ctx.Bounds = reservation.DurationBounds{Min: 90, Max: 4 * 60}

	assert.Equal(t, availability.ReasonOK,
		availability.Check(at("2021-10-27", 9, 0), at("2021-10-27", 10, 30), ctx))
	assert.Equal(t, availability.ReasonTooShort,
		availability.Check(at("2021-10-27", 9, 0), at("2021-10-27", 10, 29), ctx))
	assert.Equal(t, availability.ReasonTooLong,
		availability.Check(at("2021-10-27", 9, 0), at("2021-10-27", 13, 1), ctx))
}

func TestCheckConflict(t *testing.T) {
	ctx := weekContext(t)
	ctx.Blocking = []reservation.TimeSlot{blockingSlot(t, "2021-10-31", 9, 30, 10, 30)}

	t.Run("touching slot does not conflict", func(t *testing.T) {
		assert.Equal(t, availability.ReasonOK,
			availability.Check(at("2021-10-31", 9, 0), at("2021-10-31", 9, 30), ctx))
	})

	t.Run("one minute overlap conflicts", func(t *testing.T) {
		assert.Equal(t, availability.ReasonConflict,
			availability.Check(at("2021-10-31", 9, 0), at("2021-10-31", 9, 31), ctx))
	})
}

func TestCheckHorizon(t *testing.T) {
	ctx := weekContext(t)
	ctx.Now = at("2021-10-25", 10, 0)

	t.Run("start before now is rejected", func(t *testing.T) {
		assert.Equal(t, availability.ReasonInPast,
			availability.Check(at("2021-10-25", 9, 30), at("2021-10-25", 10, 30), ctx))
	})

	t.Run("six days ahead with no max is accepted", func(t *testing.T) {
		assert.Equal(t, availability.ReasonOK,
			availability.Check(at("2021-10-31", 9, 30), at("2021-10-31", 10, 30), ctx))
	})

	t.Run("beyond the advance booking window is rejected", func(t *testing.T) {
		capped := ctx
		capped.MaxDaysBefore = 5
		assert.Equal(t, availability.ReasonTooFarAhead,
			availability.Check(at("2021-10-31", 9, 30), at("2021-10-31", 10, 30), capped))
		assert.Equal(t, availability.ReasonOK,
			availability.Check(at("2021-10-30", 9, 30), at("2021-10-30", 10, 30), capped))
	})

	t.Run("inside the minimum lead is rejected", func(t *testing.T) {
		lead := ctx
		lead.MinDaysBefore = 2
		assert.Equal(t, availability.ReasonTooSoon,
			availability.Check(at("2021-10-26", 9, 30), at("2021-10-26", 10, 30), lead))
		assert.Equal(t, availability.ReasonOK,
			availability.Check(at("2021-10-27", 9, 30), at("2021-10-27", 10, 30), lead))
	})

	t.Run("date inside an active application round is rejected", func(t *testing.T) {
		seasonal := ctx
		seasonal.Rounds = []availability.Round{{Begin: date("2021-10-30"), End: date("2021-11-15")}}
		assert.Equal(t, availability.ReasonInApplicationRound,
			availability.Check(at("2021-10-31", 9, 30), at("2021-10-31", 10, 30), seasonal))
		assert.Equal(t, availability.ReasonOK,
			availability.Check(at("2021-10-29", 9, 30), at("2021-10-29", 10, 30), seasonal))
	})
}

func TestRoundCovers(t *testing.T) {
	round := availability.Round{Begin: date("2021-10-30"), End: date("2021-11-15")}

	assert.True(t, round.Covers(date("2021-10-30")))
	assert.True(t, round.Covers(date("2021-11-15")))
	assert.True(t, round.Covers(at("2021-11-01", 23, 59)))
	assert.False(t, round.Covers(date("2021-10-29")))
	assert.False(t, round.Covers(date("2021-11-16")))
}

// The checks run in a fixed order; the first failure is reported even when
// several apply.
func TestCheckOrdering(t *testing.T) {
	ctx := weekContext(t)
	ctx.Bounds = reservation.DurationBounds{Min: 90}
	ctx.Blocking = []reservation.TimeSlot{blockingSlot(t, "2021-10-27", 8, 0, 23, 0)}
	ctx.Spans = nil

	// Outside opening hours masks the too-short and conflicting slot.
	assert.Equal(t, availability.ReasonOutsideOpeningHours,
		availability.Check(at("2021-10-27", 9, 0), at("2021-10-27", 9, 30), ctx))
}
