package response

import (
	"time"

	"space-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	UnitID        uuid.UUID `json:"unit_id"`
	UnitName      string    `json:"unit_name"`
	Begin         time.Time `json:"begin"`
	End           time.Time `json:"end"`
	State         string    `json:"state"`
	ReserveeName  string    `json:"reservee_name"`
	ReserveeEmail *string   `json:"reservee_email,omitempty"`
	Note          *string   `json:"note,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	UnitID       uuid.UUID `json:"unit_id"`
	UnitName     string    `json:"unit_name"`
	Begin        time.Time `json:"begin"`
	End          time.Time `json:"end"`
	State        string    `json:"state"`
	ReserveeName string    `json:"reservee_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            rm.ID,
		UnitID:        rm.UnitID,
		UnitName:      rm.UnitName,
		Begin:         rm.Begin,
		End:           rm.End,
		State:         string(rm.State),
		ReserveeName:  rm.ReserveeName,
		ReserveeEmail: rm.ReserveeEmail,
		Note:          rm.Note,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReservationListView(rm *queries.ReservationView) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           rm.ID,
		UnitID:       rm.UnitID,
		UnitName:     rm.UnitName,
		Begin:        rm.Begin,
		End:          rm.End,
		State:        string(rm.State),
		ReserveeName: rm.ReserveeName,
		CreatedAt:    rm.CreatedAt,
	}
}
