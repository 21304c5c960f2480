// Package unit models the bookable spaces (reservation units) and the
// booking policies attached to them.
package unit

import (
	"errors"
	"strings"

	"space-booking-api/internal/domain/reservation"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("unit name is required")
	ErrInvalidHorizon = errors.New("booking horizon days must not be negative")
	ErrInvalidBounds  = errors.New("minimum duration must not exceed maximum duration")
)

type Unit struct {
	id            uuid.UUID
	name          string
	bounds        reservation.DurationBounds
	minDaysBefore int
	maxDaysBefore int
}

// NewUnit validates a unit read from storage. A zero horizon day count or a
// zero duration bound means the policy is unset.
func NewUnit(id uuid.UUID, name string, bounds reservation.DurationBounds, minDaysBefore, maxDaysBefore int) (*Unit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if minDaysBefore < 0 || maxDaysBefore < 0 {
		return nil, ErrInvalidHorizon
	}
	if !bounds.Min.IsZero() && !bounds.Max.IsZero() && bounds.Min > bounds.Max {
		return nil, ErrInvalidBounds
	}
	return &Unit{
		id:            id,
		name:          name,
		bounds:        bounds,
		minDaysBefore: minDaysBefore,
		maxDaysBefore: maxDaysBefore,
	}, nil
}

func (u *Unit) ID() uuid.UUID                      { return u.id }
func (u *Unit) Name() string                       { return u.name }
func (u *Unit) Bounds() reservation.DurationBounds { return u.bounds }
func (u *Unit) MinDaysBefore() int                 { return u.minDaysBefore }
func (u *Unit) MaxDaysBefore() int                 { return u.maxDaysBefore }
