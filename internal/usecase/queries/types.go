package queries

import (
	"context"
	"time"

	"space-booking-api/internal/domain/availability"
	"space-booking-api/internal/domain/openinghours"
	"space-booking-api/internal/domain/reservation"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UnitSnapshot struct {
	ID            uuid.UUID
	Name          string
	Bounds        reservation.DurationBounds
	MinDaysBefore int
	MaxDaysBefore int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ReservationView struct {
	ID            uuid.UUID         `json:"id"`
	UnitID        uuid.UUID         `json:"unit_id"`
	UnitName      string            `json:"unit_name"`
	Begin         time.Time         `json:"begin"`
	End           time.Time         `json:"end"`
	State         reservation.State `json:"state"`
	ReserveeName  string            `json:"reservee_name"`
	ReserveeEmail *string           `json:"reservee_email,omitempty"`
	Note          *string           `json:"note,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Read store ports implemented by the infra layer.

type UnitReadStore interface {
	FindAll(ctx context.Context) ([]*UnitSnapshot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UnitSnapshot, error)
}

type CalendarReadStore interface {
	// SpansForRange returns the per-date resolved opening spans for
	// [from, to], the authoritative source for booking decisions.
	SpansForRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]openinghours.Span, error)
	// PeriodsFor returns the recurring weekday rules, for display only.
	PeriodsFor(ctx context.Context, unitID uuid.UUID) ([]openinghours.Period, error)
	// RoundsForRange returns application rounds intersecting [from, to].
	RoundsForRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]availability.Round, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUnitAndRange(ctx context.Context, unitID uuid.UUID, from, to time.Time) ([]*ReservationView, error)
}
