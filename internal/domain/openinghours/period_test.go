//go:build unit

package openinghours_test

import (
	"testing"

	"space-booking-api/internal/domain/openinghours"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, startDate, endDate string, spans []openinghours.TimeSpan) openinghours.Period {
	t.Helper()
	p, err := openinghours.NewPeriod(date(startDate), date(endDate), spans)
	require.NoError(t, err)
	return p
}

func weekdaySpans() []openinghours.TimeSpan {
	return []openinghours.TimeSpan{
		{Weekdays: []int{1, 2, 3, 4, 5}, StartMinute: 9 * 60, EndMinute: 21 * 60},
		{Weekdays: []int{6}, StartMinute: 10 * 60, EndMinute: 16 * 60},
	}
}

func TestNewPeriod(t *testing.T) {
	t.Run("start date after end date", func(t *testing.T) {
		_, err := openinghours.NewPeriod(date("2021-12-31"), date("2021-01-01"), nil)
		require.ErrorIs(t, err, openinghours.ErrInvalidPeriodDates)
	})

	t.Run("single day period", func(t *testing.T) {
		_, err := openinghours.NewPeriod(date("2021-06-01"), date("2021-06-01"), nil)
		require.NoError(t, err)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		_, err := openinghours.NewPeriod(date("2021-01-01"), date("2021-12-31"), []openinghours.TimeSpan{
			{Weekdays: []int{0}, StartMinute: 9 * 60, EndMinute: 17 * 60},
		})
		require.ErrorIs(t, err, openinghours.ErrInvalidWeekday)

		_, err = openinghours.NewPeriod(date("2021-01-01"), date("2021-12-31"), []openinghours.TimeSpan{
			{Weekdays: []int{8}, StartMinute: 9 * 60, EndMinute: 17 * 60},
		})
		require.ErrorIs(t, err, openinghours.ErrInvalidWeekday)
	})
}

func TestAppliesTo(t *testing.T) {
	p := mustPeriod(t, "2021-06-01", "2021-08-31", weekdaySpans())

	assert.True(t, p.AppliesTo(date("2021-06-01")))
	assert.True(t, p.AppliesTo(date("2021-08-31")))
	assert.True(t, p.AppliesTo(date("2021-07-15")))
	assert.False(t, p.AppliesTo(date("2021-05-31")))
	assert.False(t, p.AppliesTo(date("2021-09-01")))
}

func TestSpansForWeekday(t *testing.T) {
	p := mustPeriod(t, "2021-01-01", "2021-12-31", weekdaySpans())

	assert.Len(t, p.SpansForWeekday(3), 1)
	assert.Empty(t, p.SpansForWeekday(7))

	want := []openinghours.TimeSpan{
		{Weekdays: []int{6}, StartMinute: 10 * 60, EndMinute: 16 * 60},
	}
	if diff := cmp.Diff(want, p.SpansForWeekday(6)); diff != "" {
		t.Errorf("SpansForWeekday(6) mismatch (-want +got):\n%s", diff)
	}
}

func TestActivePeriod(t *testing.T) {
	yearRound := mustPeriod(t, "2021-01-01", "2021-12-31", weekdaySpans())
	summer := mustPeriod(t, "2021-06-01", "2021-08-31", []openinghours.TimeSpan{
		{Weekdays: []int{1, 2, 3, 4, 5, 6, 7}, StartMinute: 8 * 60, EndMinute: 22 * 60},
	})

	t.Run("no period applies", func(t *testing.T) {
		_, ok := openinghours.ActivePeriod(date("2020-12-31"), []openinghours.Period{yearRound, summer})
		assert.False(t, ok)
	})

	t.Run("single applicable period", func(t *testing.T) {
		got, ok := openinghours.ActivePeriod(date("2021-03-01"), []openinghours.Period{yearRound, summer})
		require.True(t, ok)
		assert.Equal(t, yearRound.StartDate(), got.StartDate())
	})

	t.Run("latest start date wins on overlap", func(t *testing.T) {
		got, ok := openinghours.ActivePeriod(date("2021-07-01"), []openinghours.Period{yearRound, summer})
		require.True(t, ok)
		assert.Equal(t, summer.StartDate(), got.StartDate())

		// Order of the input list does not change the winner.
		got, ok = openinghours.ActivePeriod(date("2021-07-01"), []openinghours.Period{summer, yearRound})
		require.True(t, ok)
		assert.Equal(t, summer.StartDate(), got.StartDate())
	})

	t.Run("equal start dates keep the earliest listed", func(t *testing.T) {
		alt := mustPeriod(t, "2021-01-01", "2021-06-30", nil)
		got, ok := openinghours.ActivePeriod(date("2021-02-01"), []openinghours.Period{yearRound, alt})
		require.True(t, ok)
		assert.Equal(t, yearRound.EndDate(), got.EndDate())
	})
}
