package queries

import (
	"context"

	"space-booking-api/internal/domain/openinghours"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/apidate"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

// WeeklyHoursView is one descriptive recurring rule ("Mon 09:00-21:00").
// It mirrors the unit's opening-time periods and is informational only;
// booking decisions always go through the per-date resolved spans.
type WeeklyHoursView struct {
	Weekday          int    `json:"weekday"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	EndTimeOnNextDay bool   `json:"end_time_on_next_day,omitempty"`
}

type UnitDetail struct {
	ID                     uuid.UUID         `json:"id"`
	Name                   string            `json:"name"`
	MinReservationDuration *string           `json:"min_reservation_duration,omitempty"`
	MaxReservationDuration *string           `json:"max_reservation_duration,omitempty"`
	MinDaysBefore          int               `json:"reservations_min_days_before"`
	MaxDaysBefore          int               `json:"reservations_max_days_before"`
	WeeklyHours            []WeeklyHoursView `json:"weekly_hours"`
}

type UnitQueries interface {
	List(ctx context.Context) ([]*UnitDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UnitDetail, error)
}

type unitQueriesImpl struct {
	unitRead     UnitReadStore
	calendarRead CalendarReadStore
	clock        clock.Clock
}

func NewUnitQueries(unitRead UnitReadStore, calendarRead CalendarReadStore, clk clock.Clock) UnitQueries {
	return &unitQueriesImpl{
		unitRead:     unitRead,
		calendarRead: calendarRead,
		clock:        clk,
	}
}

func (q *unitQueriesImpl) List(ctx context.Context) ([]*UnitDetail, error) {
	snapshots, err := q.unitRead.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*UnitDetail, len(snapshots))
	for i, snap := range snapshots {
		result[i] = toUnitDetail(snap, nil)
	}
	return result, nil
}

func (q *unitQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UnitDetail, error) {
	snap, err := q.unitRead.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, err
	}

	periods, err := q.calendarRead.PeriodsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUnitDetail(snap, q.weeklyHours(periods)), nil
}

// weeklyHours flattens the currently active recurring period into one entry
// per weekday rule.
func (q *unitQueriesImpl) weeklyHours(periods []openinghours.Period) []WeeklyHoursView {
	active, ok := openinghours.ActivePeriod(q.clock.Now(), periods)
	if !ok {
		return nil
	}

	var out []WeeklyHoursView
	for weekday := 1; weekday <= 7; weekday++ {
		for _, ts := range active.SpansForWeekday(weekday) {
			out = append(out, WeeklyHoursView{
				Weekday:          weekday,
				StartTime:        apidate.FormatTimeOfDay(ts.StartMinute),
				EndTime:          apidate.FormatTimeOfDay(ts.EndMinute),
				EndTimeOnNextDay: ts.EndTimeOnNextDay,
			})
		}
	}
	return out
}

func toUnitDetail(snap *UnitSnapshot, weekly []WeeklyHoursView) *UnitDetail {
	detail := &UnitDetail{
		ID:            snap.ID,
		Name:          snap.Name,
		MinDaysBefore: snap.MinDaysBefore,
		MaxDaysBefore: snap.MaxDaysBefore,
		WeeklyHours:   weekly,
	}
	if !snap.Bounds.Min.IsZero() {
		s := apidate.FormatDuration(snap.Bounds.Min)
		detail.MinReservationDuration = &s
	}
	if !snap.Bounds.Max.IsZero() {
		s := apidate.FormatDuration(snap.Bounds.Max)
		detail.MaxReservationDuration = &s
	}
	return detail
}
