package queries

import (
	"context"
	"time"

	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/apidate"
	"space-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByUnit(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservationRead ReservationReadStore
}

func NewReservationQueries(reservationRead ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservationRead: reservationRead}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.reservationRead.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByUnit(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]*ReservationView, error) {
	from = apidate.DateOf(from)
	to = apidate.DateOf(to)
	if from.After(to) {
		return nil, errs.ErrInvalidDateRange
	}
	// Upper bound is exclusive at the following midnight so reservations on
	// the last requested date are included.
	return q.reservationRead.FindByUnitAndRange(ctx, unitID, from, to.AddDate(0, 0, 1))
}
