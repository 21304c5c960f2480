package readstore

import (
	"context"

	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/apidate"
	"space-booking-api/internal/pkg/pgconv"
	"space-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const unitSelect = `
SELECT id, name, min_reservation_duration, max_reservation_duration,
       reservations_min_days_before, reservations_max_days_before,
       created_at, updated_at
FROM reservation_units`

type UnitReadStore struct {
	db infra.DBTX
}

func NewUnitReadStore(db infra.DBTX) *UnitReadStore {
	return &UnitReadStore{db: db}
}

func (r *UnitReadStore) FindAll(ctx context.Context) ([]*queries.UnitSnapshot, error) {
	rows, err := r.db.Query(ctx, unitSelect+` ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservation units", err)
	}
	defer rows.Close()

	var result []*queries.UnitSnapshot
	for rows.Next() {
		snap, scanErr := scanUnit(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation units", err)
	}
	return result, nil
}

func (r *UnitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UnitSnapshot, error) {
	row := r.db.QueryRow(ctx, unitSelect+` WHERE id = $1`, pgconv.UUIDToPgtype(id))
	return scanUnit(row)
}

type pgxScanner interface {
	Scan(dest ...any) error
}

func scanUnit(row pgxScanner) (*queries.UnitSnapshot, error) {
	var (
		id          pgtype.UUID
		name        string
		minDuration pgtype.Text
		maxDuration pgtype.Text
		minDays     pgtype.Int4
		maxDays     pgtype.Int4
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &minDuration, &maxDuration, &minDays, &maxDays, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation unit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation unit", err)
	}

	bounds, err := boundsFromWire(minDuration, maxDuration)
	if err != nil {
		// Malformed duration strings break the upstream contract; they must
		// fail loudly, not silently disable the bounds check.
		return nil, infra.WrapRepoErr("malformed reservation duration", err, infra.KindMalformedData)
	}

	return &queries.UnitSnapshot{
		ID:            pgconv.UUIDFromPgtype(id),
		Name:          name,
		Bounds:        bounds,
		MinDaysBefore: int(minDays.Int32),
		MaxDaysBefore: int(maxDays.Int32),
		CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

// boundsFromWire parses the "H:MM:SS" duration columns. NULL means unset.
func boundsFromWire(minDuration, maxDuration pgtype.Text) (reservation.DurationBounds, error) {
	var bounds reservation.DurationBounds
	if minDuration.Valid {
		minutes, err := apidate.ParseDuration(minDuration.String)
		if err != nil {
			return reservation.DurationBounds{}, err
		}
		bounds.Min = minutes
	}
	if maxDuration.Valid {
		minutes, err := apidate.ParseDuration(maxDuration.String)
		if err != nil {
			return reservation.DurationBounds{}, err
		}
		bounds.Max = minutes
	}
	return bounds, nil
}
