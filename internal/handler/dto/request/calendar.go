package request

import (
	"time"

	"space-booking-api/internal/pkg/apidate"
)

// DateRangeQuery binds the from/to civil-date query parameters shared by the
// calendar and reservation-list endpoints.
type DateRangeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// Parse resolves the wire dates; malformed input surfaces apidate.ErrFormat.
func (q DateRangeQuery) Parse() (from, to time.Time, err error) {
	from, err = apidate.Parse(q.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = apidate.Parse(q.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
