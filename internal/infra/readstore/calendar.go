package readstore

import (
	"context"
	"time"

	"space-booking-api/internal/domain/availability"
	"space-booking-api/internal/domain/openinghours"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CalendarReadStore struct {
	db infra.DBTX
}

func NewCalendarReadStore(db infra.DBTX) *CalendarReadStore {
	return &CalendarReadStore{db: db}
}

func (r *CalendarReadStore) SpansForRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]openinghours.Span, error) {
	rows, err := r.db.Query(ctx, `
SELECT date, start_time, end_time, state
FROM opening_hour_spans
WHERE unit_id = $1 AND date BETWEEN $2 AND $3
ORDER BY date, start_time`,
		pgconv.UUIDToPgtype(unitID), pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query opening hour spans", err)
	}
	defer rows.Close()

	var spans []openinghours.Span
	for rows.Next() {
		var (
			date      pgtype.Date
			startTime pgtype.Time
			endTime   pgtype.Time
			state     string
		)
		if err := rows.Scan(&date, &startTime, &endTime, &state); err != nil {
			return nil, infra.WrapRepoErr("failed to scan opening hour span", err)
		}
		span, err := openinghours.NewSpan(
			pgconv.DateFromPgtype(date),
			pgconv.MinutesFromPgTime(startTime),
			pgconv.MinutesFromPgTime(endTime),
			openinghours.SpanState(state),
		)
		if err != nil {
			return nil, infra.WrapRepoErr("malformed opening hour span", err, infra.KindMalformedData)
		}
		spans = append(spans, span)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read opening hour spans", err)
	}
	return spans, nil
}

func (r *CalendarReadStore) PeriodsFor(ctx context.Context, unitID uuid.UUID) ([]openinghours.Period, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, start_date, end_date
FROM opening_time_periods
WHERE unit_id = $1
ORDER BY start_date, created_at`,
		pgconv.UUIDToPgtype(unitID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query opening time periods", err)
	}
	defer rows.Close()

	type periodRow struct {
		id        uuid.UUID
		startDate time.Time
		endDate   time.Time
	}
	var periodRows []periodRow
	for rows.Next() {
		var (
			id        pgtype.UUID
			startDate pgtype.Date
			endDate   pgtype.Date
		)
		if err := rows.Scan(&id, &startDate, &endDate); err != nil {
			return nil, infra.WrapRepoErr("failed to scan opening time period", err)
		}
		periodRows = append(periodRows, periodRow{
			id:        pgconv.UUIDFromPgtype(id),
			startDate: pgconv.DateFromPgtype(startDate),
			endDate:   pgconv.DateFromPgtype(endDate),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read opening time periods", err)
	}
	if len(periodRows) == 0 {
		return nil, nil
	}

	spansByPeriod, err := r.timeSpansFor(ctx, unitID)
	if err != nil {
		return nil, err
	}

	periods := make([]openinghours.Period, 0, len(periodRows))
	for _, pr := range periodRows {
		period, err := openinghours.NewPeriod(pr.startDate, pr.endDate, spansByPeriod[pr.id])
		if err != nil {
			return nil, infra.WrapRepoErr("malformed opening time period", err, infra.KindMalformedData)
		}
		periods = append(periods, period)
	}
	return periods, nil
}

func (r *CalendarReadStore) timeSpansFor(ctx context.Context, unitID uuid.UUID) (map[uuid.UUID][]openinghours.TimeSpan, error) {
	rows, err := r.db.Query(ctx, `
SELECT s.period_id, s.weekdays, s.start_time, s.end_time, s.end_time_on_next_day
FROM opening_time_spans s
JOIN opening_time_periods p ON p.id = s.period_id
WHERE p.unit_id = $1
ORDER BY s.period_id, s.start_time`,
		pgconv.UUIDToPgtype(unitID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query opening time spans", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]openinghours.TimeSpan)
	for rows.Next() {
		var (
			periodID  pgtype.UUID
			weekdays  []int32
			startTime pgtype.Time
			endTime   pgtype.Time
			nextDay   bool
		)
		if err := rows.Scan(&periodID, &weekdays, &startTime, &endTime, &nextDay); err != nil {
			return nil, infra.WrapRepoErr("failed to scan opening time span", err)
		}
		days := make([]int, len(weekdays))
		for i, wd := range weekdays {
			days[i] = int(wd)
		}
		pid := pgconv.UUIDFromPgtype(periodID)
		result[pid] = append(result[pid], openinghours.TimeSpan{
			Weekdays:         days,
			StartMinute:      pgconv.MinutesFromPgTime(startTime),
			EndMinute:        pgconv.MinutesFromPgTime(endTime),
			EndTimeOnNextDay: nextDay,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read opening time spans", err)
	}
	return result, nil
}

func (r *CalendarReadStore) RoundsForRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]availability.Round, error) {
	rows, err := r.db.Query(ctx, `
SELECT reservation_period_begin, reservation_period_end
FROM application_rounds
WHERE unit_id = $1
  AND reservation_period_begin <= $3
  AND reservation_period_end >= $2
ORDER BY reservation_period_begin`,
		pgconv.UUIDToPgtype(unitID), pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query application rounds", err)
	}
	defer rows.Close()

	var rounds []availability.Round
	for rows.Next() {
		var begin, end pgtype.Date
		if err := rows.Scan(&begin, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan application round", err)
		}
		rounds = append(rounds, availability.Round{
			Begin: pgconv.DateFromPgtype(begin),
			End:   pgconv.DateFromPgtype(end),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read application rounds", err)
	}
	return rounds, nil
}
