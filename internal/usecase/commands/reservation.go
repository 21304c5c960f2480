package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"space-booking-api/internal/domain/availability"
	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/domain/unit"
	"space-booking-api/internal/infra"
	"space-booking-api/internal/pkg/apidate"
	"space-booking-api/internal/pkg/clock"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotReservableError carries the engine's rejection reason to the API
// layer. The rejection itself is a normal negative decision, but a create
// request against a non-reservable slot is a client error.
type NotReservableError struct {
	Reason availability.Reason
}

func (e *NotReservableError) Error() string {
	return fmt.Sprintf("slot not reservable: %s", e.Reason)
}

type CreateReservationParams struct {
	UnitID        uuid.UUID
	Begin         time.Time
	End           time.Time
	ReserveeName  string
	ReserveeEmail string
	Note          string
}

type ReservationRepository interface {
	Create(ctx context.Context, tx infra.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateState(ctx context.Context, tx infra.DBTX, id uuid.UUID, state reservation.State) error
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	unitRead        queries.UnitReadStore
	calendarRead    queries.CalendarReadStore
	reservationRead queries.ReservationReadStore
	db              *pgxpool.Pool
	clock           clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	unitRead queries.UnitReadStore,
	calendarRead queries.CalendarReadStore,
	reservationRead queries.ReservationReadStore,
	db *pgxpool.Pool,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		unitRead:        unitRead,
		calendarRead:    calendarRead,
		reservationRead: reservationRead,
		db:              db,
		clock:           clk,
	}
}

func (c *reservationCommandsImpl) CreateReservation(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	bookedUnit, err := c.loadUnit(ctx, params.UnitID)
	if err != nil {
		return nil, err
	}

	slot, err := reservation.NewTimeSlot(params.Begin, params.End)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeSlot)
	}

	// The engine re-validates server-side what the calendar UI already
	// checked; a stale client must not slip an unbookable slot through.
	decisionCtx, err := c.buildContext(ctx, bookedUnit, slot)
	if err != nil {
		return nil, err
	}
	if reason := availability.Check(slot.Start(), slot.End(), decisionCtx); reason != availability.ReasonOK {
		return nil, &NotReservableError{Reason: reason}
	}

	entity, err := reservation.NewReservation(params.UnitID, slot, params.ReserveeName, params.ReserveeEmail, params.Note)
	if err != nil {
		return nil, err
	}

	id, err := c.persist(ctx, entity)
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the full view including the unit name.
	view, err := c.reservationRead.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	entity, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := entity.Cancel(); err != nil {
		return nil, err
	}

	if err := c.reservationRepo.UpdateState(ctx, c.db, entity.ID(), entity.State()); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := c.reservationRead.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *reservationCommandsImpl) loadUnit(ctx context.Context, id uuid.UUID) (*unit.Unit, error) {
	snap, err := c.unitRead.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUnitNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return unit.NewUnit(snap.ID, snap.Name, snap.Bounds, snap.MinDaysBefore, snap.MaxDaysBefore)
}

func (c *reservationCommandsImpl) buildContext(ctx context.Context, bookedUnit *unit.Unit, slot reservation.TimeSlot) (availability.Context, error) {
	from := apidate.DateOf(slot.Start())
	to := apidate.DateOf(slot.End())

	spans, err := c.calendarRead.SpansForRange(ctx, bookedUnit.ID(), from, to)
	if err != nil {
		return availability.Context{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	rounds, err := c.calendarRead.RoundsForRange(ctx, bookedUnit.ID(), from, to)
	if err != nil {
		return availability.Context{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	views, err := c.reservationRead.FindByUnitAndRange(ctx, bookedUnit.ID(), from, to.AddDate(0, 0, 1))
	if err != nil {
		return availability.Context{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	blocking := make([]reservation.TimeSlot, 0, len(views))
	for _, v := range views {
		if !v.State.Blocks() {
			continue
		}
		existing, slotErr := reservation.NewTimeSlot(v.Begin, v.End)
		if slotErr != nil {
			continue
		}
		blocking = append(blocking, existing)
	}

	return availability.Context{
		Spans:         spans,
		Bounds:        bookedUnit.Bounds(),
		Blocking:      blocking,
		Now:           c.clock.Now(),
		MinDaysBefore: bookedUnit.MinDaysBefore(),
		MaxDaysBefore: bookedUnit.MaxDaysBefore(),
		Rounds:        rounds,
	}, nil
}

func (c *reservationCommandsImpl) persist(ctx context.Context, entity *reservation.Reservation) (uuid.UUID, error) {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	id, err := c.reservationRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, errs.Mark(err, errs.ErrReservationConflict)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}
