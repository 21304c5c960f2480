package repository

import (
	"context"

	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	cr "github.com/cockroachdb/errors"
)

const (
	pgCodeUniqueViolation    = "23505"
	pgCodeExclusionViolation = "23P01"
)

type ReservationRepository struct {
	db infra.DBTX
}

func NewReservationRepository(db infra.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, tx infra.DBTX, entity *reservation.Reservation) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, `
INSERT INTO reservations (unit_id, begin_at, end_at, state, reservee_name, reservee_email, note)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`,
		pgconv.UUIDToPgtype(entity.UnitID()),
		pgconv.TimeToPgtype(entity.Slot().Start()),
		pgconv.TimeToPgtype(entity.Slot().End()),
		string(entity.State()),
		entity.ReserveeName(),
		pgconv.NullableString(entity.ReserveeEmail()),
		pgconv.NullableString(entity.Note()),
	).Scan(&id)
	if err != nil {
		if isConflict(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation slot already taken", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}
	return pgconv.UUIDFromPgtype(id), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		pgID          pgtype.UUID
		unitID        pgtype.UUID
		beginAt       pgtype.Timestamptz
		endAt         pgtype.Timestamptz
		state         string
		reserveeName  string
		reserveeEmail pgtype.Text
		note          pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, `
SELECT id, unit_id, begin_at, end_at, state, reservee_name, reservee_email, note, created_at, updated_at
FROM reservations
WHERE id = $1`, pgconv.UUIDToPgtype(id)).
		Scan(&pgID, &unitID, &beginAt, &endAt, &state, &reserveeName, &reserveeEmail, &note, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(beginAt), pgconv.TimeFromPgtype(endAt))
	if err != nil {
		return nil, infra.WrapRepoErr("malformed reservation slot", err, infra.KindMalformedData)
	}
	if !reservation.State(state).IsValid() {
		return nil, infra.WrapRepoErr("malformed reservation state", reservation.ErrInvalidState, infra.KindMalformedData)
	}

	var email, noteStr string
	if reserveeEmail.Valid {
		email = reserveeEmail.String
	}
	if note.Valid {
		noteStr = note.String
	}
	return reservation.ReconstructReservation(
		pgconv.UUIDFromPgtype(pgID),
		pgconv.UUIDFromPgtype(unitID),
		slot,
		reservation.State(state),
		reserveeName, email, noteStr,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *ReservationRepository) UpdateState(ctx context.Context, tx infra.DBTX, id uuid.UUID, state reservation.State) error {
	tag, err := tx.Exec(ctx, `
UPDATE reservations
SET state = $2, updated_at = now()
WHERE id = $1`, pgconv.UUIDToPgtype(id), string(state))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", errs.New("no rows affected"), infra.KindNotFound)
	}
	return nil
}

func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !cr.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgCodeExclusionViolation || pgErr.Code == pgCodeUniqueViolation
}
