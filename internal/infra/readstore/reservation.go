package readstore

import (
	"context"
	"time"

	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/pgconv"
	"space-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationSelect = `
SELECT r.id, r.unit_id, u.name, r.begin_at, r.end_at, r.state,
       r.reservee_name, r.reservee_email, r.note, r.created_at, r.updated_at
FROM reservations r
JOIN reservation_units u ON u.id = r.unit_id`

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationSelect+` WHERE r.id = $1`, pgconv.UUIDToPgtype(id))
	return scanReservationView(row)
}

// FindByUnitAndRange returns reservations overlapping [from, to) regardless
// of state; callers filter by what blocks.
func (r *ReservationReadStore) FindByUnitAndRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationSelect+`
WHERE r.unit_id = $1 AND r.begin_at < $3 AND r.end_at > $2
ORDER BY r.begin_at`,
		pgconv.UUIDToPgtype(unitID), pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return views, nil
}

func scanReservationView(row pgxScanner) (*queries.ReservationView, error) {
	var (
		id            pgtype.UUID
		unitID        pgtype.UUID
		unitName      string
		beginAt       pgtype.Timestamptz
		endAt         pgtype.Timestamptz
		state         string
		reserveeName  string
		reserveeEmail pgtype.Text
		note          pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	if err := row.Scan(&id, &unitID, &unitName, &beginAt, &endAt, &state,
		&reserveeName, &reserveeEmail, &note, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	return &queries.ReservationView{
		ID:            pgconv.UUIDFromPgtype(id),
		UnitID:        pgconv.UUIDFromPgtype(unitID),
		UnitName:      unitName,
		Begin:         pgconv.TimeFromPgtype(beginAt),
		End:           pgconv.TimeFromPgtype(endAt),
		State:         reservation.State(state),
		ReserveeName:  reserveeName,
		ReserveeEmail: pgconv.StringPtrFromPgtype(reserveeEmail),
		Note:          pgconv.StringPtrFromPgtype(note),
		CreatedAt:     pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:     pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
