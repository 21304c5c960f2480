package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidState     = errors.New("invalid reservation state")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrNotCancellable   = errors.New("reservation cannot be cancelled in its current state")
	ErrEmptyReservee    = errors.New("reservee name is required")
)

type Reservation struct {
	id            uuid.UUID
	unitID        uuid.UUID
	slot          TimeSlot
	state         State
	reserveeName  string
	reserveeEmail string
	note          string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(unitID uuid.UUID, slot TimeSlot, reserveeName, reserveeEmail, note string) (*Reservation, error) {
	reserveeName = strings.TrimSpace(reserveeName)
	if reserveeName == "" {
		return nil, ErrEmptyReservee
	}
	return &Reservation{
		id:            uuid.New(),
		unitID:        unitID,
		slot:          slot,
		state:         StateCreated,
		reserveeName:  reserveeName,
		reserveeEmail: strings.TrimSpace(reserveeEmail),
		note:          strings.TrimSpace(note),
	}, nil
}

// ReconstructReservation rebuilds an entity from persisted state without
// re-running creation validation.
func ReconstructReservation(
	id, unitID uuid.UUID,
	slot TimeSlot,
	state State,
	reserveeName, reserveeEmail, note string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		unitID:        unitID,
		slot:          slot,
		state:         state,
		reserveeName:  reserveeName,
		reserveeEmail: reserveeEmail,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) Cancel() error {
	if r.state == StateCancelled {
		return ErrAlreadyCancelled
	}
	if !r.state.Cancellable() {
		return ErrNotCancellable
	}
	r.state = StateCancelled
	return nil
}

func (r *Reservation) Blocks() bool {
	return r.state.Blocks()
}

func (r *Reservation) HasExpired(now time.Time) bool {
	return now.After(r.slot.End())
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) UnitID() uuid.UUID     { return r.unitID }
func (r *Reservation) Slot() TimeSlot        { return r.slot }
func (r *Reservation) State() State          { return r.state }
func (r *Reservation) ReserveeName() string  { return r.reserveeName }
func (r *Reservation) ReserveeEmail() string { return r.reserveeEmail }
func (r *Reservation) Note() string          { return r.note }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
