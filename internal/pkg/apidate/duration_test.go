//go:build unit

package apidate_test

import (
	"testing"

	"space-booking-api/internal/pkg/apidate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in      string
		want    apidate.Minutes
		wantErr bool
	}{
		{in: "1:30:00", want: 90},
		{in: "0:15:00", want: 15},
		{in: "02:00:00", want: 120},
		{in: "23:59:00", want: 23*60 + 59},
		{in: "1:30:59", want: 90}, // seconds floor-truncated
		{in: "", wantErr: true},
		{in: "90", wantErr: true},
		{in: "1:30", wantErr: true},
		{in: "-1:30:00", wantErr: true},
		{in: "1:60:00", wantErr: true},
		{in: "1:30:60", wantErr: true},
		{in: "one:30:00", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := apidate.ParseDuration(c.in)
			if c.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, apidate.ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

// Whole-minute durations under 24h survive a format/parse round trip.
func TestDurationRoundTrip(t *testing.T) {
	for _, m := range []apidate.Minutes{0, 1, 15, 59, 60, 90, 23*60 + 59} {
		got, err := apidate.ParseDuration(apidate.FormatDuration(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}
