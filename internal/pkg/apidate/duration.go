package apidate

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"space-booking-api/internal/pkg/errs"
)

// Minutes is a duration in whole minutes, the granularity of the source
// data. Zero means unset.
type Minutes int

func (m Minutes) IsZero() bool {
	return m == 0
}

func (m Minutes) Duration() time.Duration {
	return time.Duration(m) * time.Minute
}

var durationPattern = regexp.MustCompile(`^(\d+):([0-5]\d):([0-5]\d)$`)

// ParseDuration reads an "H:MM:SS" wire duration into whole minutes.
// Seconds are truncated (floor). Malformed input fails with ErrFormat.
func ParseDuration(s string) (Minutes, error) {
	groups := durationPattern.FindStringSubmatch(s)
	if groups == nil {
		return 0, errs.Mark(errs.New(fmt.Sprintf("parse duration %q", s)), ErrFormat)
	}
	hours, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "parse duration %q", s), ErrFormat)
	}
	minutes, _ := strconv.Atoi(groups[2])
	return Minutes(hours*60 + minutes), nil
}

// FormatDuration is the inverse of ParseDuration for whole-minute durations.
func FormatDuration(m Minutes) string {
	return fmt.Sprintf("%d:%02d:00", int(m)/60, int(m)%60)
}
