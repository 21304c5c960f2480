package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	UnitID        uuid.UUID `json:"unit_id" binding:"required"`
	Begin         time.Time `json:"begin" binding:"required"`
	End           time.Time `json:"end" binding:"required"`
	ReserveeName  string    `json:"reservee_name" binding:"required"`
	ReserveeEmail *string   `json:"reservee_email,omitempty"`
	Note          *string   `json:"note,omitempty"`
}

func (r CreateReservationRequest) GetReserveeEmail() string {
	if r.ReserveeEmail == nil {
		return ""
	}
	return strings.TrimSpace(*r.ReserveeEmail)
}

func (r CreateReservationRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}
