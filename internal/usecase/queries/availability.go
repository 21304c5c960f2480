package queries

import (
	"context"
	"time"

	"space-booking-api/internal/domain/availability"
	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/apidate"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/pkg/config"
	"space-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type SpanView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	State     string `json:"state"`
}

type SlotVerdict struct {
	Start      time.Time           `json:"start"`
	End        time.Time           `json:"end"`
	Reservable bool                `json:"reservable"`
	Reason     availability.Reason `json:"reason"`
}

type DayCalendar struct {
	Date  string        `json:"date"`
	Spans []SpanView    `json:"spans"`
	Slots []SlotVerdict `json:"slots"`
}

type UnitCalendar struct {
	UnitID uuid.UUID     `json:"unit_id"`
	From   string        `json:"from"`
	To     string        `json:"to"`
	Days   []DayCalendar `json:"days"`
}

type AvailabilityQueries interface {
	// UnitCalendar resolves, per date in [from, to], the unit's opening
	// spans and a verdict for every candidate slot on the booking grid.
	UnitCalendar(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*UnitCalendar, error)
}

type availabilityQueriesImpl struct {
	unitRead        UnitReadStore
	calendarRead    CalendarReadStore
	reservationRead ReservationReadStore
	clock           clock.Clock
	cfg             config.BookingConfig
}

func NewAvailabilityQueries(
	unitRead UnitReadStore,
	calendarRead CalendarReadStore,
	reservationRead ReservationReadStore,
	clk clock.Clock,
	cfg config.Config,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		unitRead:        unitRead,
		calendarRead:    calendarRead,
		reservationRead: reservationRead,
		clock:           clk,
		cfg:             cfg.Booking,
	}
}

func (q *availabilityQueriesImpl) UnitCalendar(ctx context.Context, unitID uuid.UUID, from, to time.Time) (*UnitCalendar, error) {
	from = apidate.DateOf(from)
	to = apidate.DateOf(to)
	if from.After(to) {
		return nil, errs.ErrInvalidDateRange
	}
	if to.Sub(from) > time.Duration(q.cfg.MaxQueryDays)*24*time.Hour {
		return nil, errs.ErrDateRangeTooWide
	}

	unit, err := q.unitRead.FindByID(ctx, unitID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, err
	}

	decisionCtx, err := q.buildContext(ctx, unit, from, to)
	if err != nil {
		return nil, err
	}

	cal := &UnitCalendar{
		UnitID: unit.ID,
		From:   apidate.Format(from),
		To:     apidate.Format(to),
	}
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		cal.Days = append(cal.Days, q.buildDay(date, unit, decisionCtx))
	}
	return cal, nil
}

func (q *availabilityQueriesImpl) buildContext(ctx context.Context, unit *UnitSnapshot, from, to time.Time) (availability.Context, error) {
	spans, err := q.calendarRead.SpansForRange(ctx, unit.ID, from, to)
	if err != nil {
		return availability.Context{}, err
	}
	rounds, err := q.calendarRead.RoundsForRange(ctx, unit.ID, from, to)
	if err != nil {
		return availability.Context{}, err
	}
	views, err := q.reservationRead.FindByUnitAndRange(ctx, unit.ID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return availability.Context{}, err
	}

	return availability.Context{
		Spans:         spans,
		Bounds:        unit.Bounds,
		Blocking:      blockingSlotsFromViews(views),
		Now:           q.clock.Now(),
		MinDaysBefore: unit.MinDaysBefore,
		MaxDaysBefore: unit.MaxDaysBefore,
		Rounds:        rounds,
	}, nil
}

func (q *availabilityQueriesImpl) buildDay(date time.Time, unit *UnitSnapshot, decisionCtx availability.Context) DayCalendar {
	day := DayCalendar{Date: apidate.Format(date)}

	step := q.cfg.SlotStepMinutes
	if step <= 0 {
		step = 30
	}
	// Candidate length on the grid: the unit's minimum duration, or one
	// grid step when no minimum is set.
	length := int(unit.Bounds.Min)
	if length <= 0 {
		length = step
	}

	seen := map[int]struct{}{}
	for _, span := range decisionCtx.Spans {
		if !apidate.SameDate(span.Date(), date) {
			continue
		}
		day.Spans = append(day.Spans, SpanView{
			StartTime: apidate.FormatTimeOfDay(span.StartMinute()),
			EndTime:   apidate.FormatTimeOfDay(span.EndMinute()),
			State:     span.State().String(),
		})
		if !span.State().Bookable() {
			continue
		}
		for minute := span.StartMinute(); minute+length <= span.EndMinute(); minute += step {
			if _, dup := seen[minute]; dup {
				continue
			}
			seen[minute] = struct{}{}
			start := date.Add(time.Duration(minute) * time.Minute)
			end := start.Add(time.Duration(length) * time.Minute)
			reason := availability.Check(start, end, decisionCtx)
			day.Slots = append(day.Slots, SlotVerdict{
				Start:      start,
				End:        end,
				Reservable: reason == availability.ReasonOK,
				Reason:     reason,
			})
		}
	}
	return day
}

func blockingSlotsFromViews(views []*ReservationView) []reservation.TimeSlot {
	slots := make([]reservation.TimeSlot, 0, len(views))
	for _, v := range views {
		if !v.State.Blocks() {
			continue
		}
		slot, err := reservation.NewTimeSlot(v.Begin, v.End)
		if err != nil {
			// A stored reservation with a degenerate interval cannot block
			// anything; skip it rather than poison the whole calendar.
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}
