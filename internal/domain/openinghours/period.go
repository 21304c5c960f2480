package openinghours

import (
	"errors"
	"time"

	"space-booking-api/internal/pkg/apidate"
)

var (
	ErrInvalidPeriodDates = errors.New("period start date must not be after end date")
	ErrInvalidWeekday     = errors.New("weekday must be between 1 and 7")
)

// TimeSpan is one recurring rule inside a Period: the unit keeps these hours
// on the listed ISO weekdays. EndTimeOnNextDay marks rules that run past
// midnight, which per-date spans cannot express.
type TimeSpan struct {
	Weekdays         []int
	StartMinute      int
	EndMinute        int
	EndTimeOnNextDay bool
}

// Period is a recurring rule set valid between two dates. It exists for
// descriptive display only ("opens Mon-Fri 9-21") and is never consulted
// when deciding whether a concrete slot is bookable.
type Period struct {
	startDate time.Time
	endDate   time.Time
	timeSpans []TimeSpan
}

func NewPeriod(startDate, endDate time.Time, timeSpans []TimeSpan) (Period, error) {
	startDate = apidate.DateOf(startDate)
	endDate = apidate.DateOf(endDate)
	if startDate.After(endDate) {
		return Period{}, ErrInvalidPeriodDates
	}
	for _, ts := range timeSpans {
		for _, wd := range ts.Weekdays {
			if wd < 1 || wd > 7 {
				return Period{}, ErrInvalidWeekday
			}
		}
	}
	return Period{startDate: startDate, endDate: endDate, timeSpans: timeSpans}, nil
}

func (p Period) StartDate() time.Time  { return p.startDate }
func (p Period) EndDate() time.Time    { return p.endDate }
func (p Period) TimeSpans() []TimeSpan { return p.timeSpans }

// AppliesTo reports whether the date lies in [startDate, endDate].
func (p Period) AppliesTo(date time.Time) bool {
	d := apidate.DateOf(date)
	return !d.Before(p.startDate) && !d.After(p.endDate)
}

// SpansForWeekday returns the recurring rules applying to an ISO weekday.
func (p Period) SpansForWeekday(weekday int) []TimeSpan {
	var out []TimeSpan
	for _, ts := range p.timeSpans {
		for _, wd := range ts.Weekdays {
			if wd == weekday {
				out = append(out, ts)
				break
			}
		}
	}
	return out
}

// ActivePeriod picks the period describing a date. When several periods
// overlap the date, the one with the latest start date wins; among equal
// start dates the earliest listed wins.
func ActivePeriod(date time.Time, periods []Period) (Period, bool) {
	var (
		best  Period
		found bool
	)
	for _, p := range periods {
		if !p.AppliesTo(date) {
			continue
		}
		if !found || p.startDate.After(best.startDate) {
			best = p
			found = true
		}
	}
	return best, found
}
