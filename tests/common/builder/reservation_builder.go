//go:build unit || e2e

package builder

import (
	"time"

	"space-booking-api/internal/domain/reservation"
	reqdto "space-booking-api/internal/handler/dto/request"
	"space-booking-api/internal/usecase/commands"
	"space-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	UnitID        uuid.UUID
	UnitName      string
	Begin         time.Time
	End           time.Time
	State         reservation.State
	ReserveeName  string
	ReserveeEmail string
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	begin := now.AddDate(0, 0, 7).Truncate(time.Hour)
	return &ReservationBuilder{
		ID:            uuid.New(),
		UnitID:        uuid.New(),
		UnitName:      "Meeting Room A",
		Begin:         begin,
		End:           begin.Add(time.Hour),
		State:         reservation.StateCreated,
		ReserveeName:  "Taro Tanaka",
		ReserveeEmail: "taro@example.com",
		Note:          "Weekly sync",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	email := b.ReserveeEmail
	note := b.Note
	return reqdto.CreateReservationRequest{
		UnitID:        b.UnitID,
		Begin:         b.Begin,
		End:           b.End,
		ReserveeName:  b.ReserveeName,
		ReserveeEmail: &email,
		Note:          &note,
	}
}

func (b *ReservationBuilder) BuildCreateParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		UnitID:        b.UnitID,
		Begin:         b.Begin,
		End:           b.End,
		ReserveeName:  b.ReserveeName,
		ReserveeEmail: b.ReserveeEmail,
		Note:          b.Note,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	email := b.ReserveeEmail
	note := b.Note
	return &queries.ReservationView{
		ID:            b.ID,
		UnitID:        b.UnitID,
		UnitName:      b.UnitName,
		Begin:         b.Begin,
		End:           b.End,
		State:         b.State,
		ReserveeName:  b.ReserveeName,
		ReserveeEmail: &email,
		Note:          &note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
