//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"space-booking-api/internal/handler/dto/request"
	"space-booking-api/internal/handler/dto/response"
	"space-booking-api/internal/usecase/queries"
	"space-booking-api/tests/common/dbtest"
	"space-booking-api/tests/common/httptest"
	"space-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	calendarURL     = "/api/units/%s/calendar?from=%s&to=%s"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// seedOpenUnit prepares a unit open 09:00-21:00 on a date a week out and
// returns the unit id plus that date.
func (s *ReservationSuite) seedOpenUnit(minDuration *string) (uuid.UUID, time.Time) {
	t := s.T()

	day := time.Now().UTC().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	unitID := dbtest.CreateTestUnit(t, s.DB, "Hall West", minDuration, nil, 0, 0)
	dbtest.CreateOpenSpan(t, s.DB, unitID, day.Format("2006-01-02"), "09:00", "21:00", "open")

	return unitID, day
}

func (s *ReservationSuite) createRequest(unitID uuid.UUID, begin, end time.Time) request.CreateReservationRequest {
	email := "taro@example.com"
	return request.CreateReservationRequest{
		UnitID:        unitID,
		Begin:         begin,
		End:           end,
		ReserveeName:  "Taro Tanaka",
		ReserveeEmail: &email,
	}
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: slot inside opening hours is reserved", func() {
		unitID, day := s.seedOpenUnit(nil)

		reqBody := s.createRequest(unitID, day.Add(10*time.Hour), day.Add(11*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)

		var body response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(unitID, body.UnitID)
		s.Equal("created", body.State)
		s.Equal("Hall West", body.UnitName)
	})

	s.Run("Error case: slot outside opening hours is rejected", func() {
		unitID, day := s.seedOpenUnit(nil)

		reqBody := s.createRequest(unitID, day.Add(7*time.Hour), day.Add(8*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not reservable")
		s.Contains(rec.Body.String(), "outside_opening_hours")
	})

	s.Run("Error case: overlapping slot is rejected", func() {
		unitID, day := s.seedOpenUnit(nil)

		first := s.createRequest(unitID, day.Add(10*time.Hour), day.Add(11*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, first)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		second := s.createRequest(unitID, day.Add(10*time.Hour+30*time.Minute), day.Add(11*time.Hour+30*time.Minute))
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, second)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not reservable")
		s.Contains(rec.Body.String(), "conflict")
	})

	s.Run("Error case: slot shorter than the unit minimum is rejected", func() {
		minDuration := "1:30:00"
		unitID, day := s.seedOpenUnit(&minDuration)

		reqBody := s.createRequest(unitID, day.Add(10*time.Hour), day.Add(11*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not reservable")
		s.Contains(rec.Body.String(), "too_short")
	})

	s.Run("Error case: slot inside an application round is rejected", func() {
		unitID, day := s.seedOpenUnit(nil)
		dbtest.CreateApplicationRound(s.T(), s.DB, unitID,
			day.Format("2006-01-02"), day.AddDate(0, 0, 3).Format("2006-01-02"))

		reqBody := s.createRequest(unitID, day.Add(10*time.Hour), day.Add(11*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not reservable")
		s.Contains(rec.Body.String(), "in_application_round")
	})
}

func (s *ReservationSuite) TestCancelReservation() {
	s.Run("Normal case: created reservation can be cancelled once", func() {
		unitID, day := s.seedOpenUnit(nil)

		reqBody := s.createRequest(unitID, day.Add(14*time.Hour), day.Add(15*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		cancelURL := fmt.Sprintf("%s/%s/cancel", reservationsURL, created.ID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, cancelURL, nil)

		var cancelled response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cancelled)
		s.Equal("cancelled", cancelled.State)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, cancelURL, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})

	s.Run("Normal case: cancelled slot becomes reservable again", func() {
		unitID, day := s.seedOpenUnit(nil)

		reqBody := s.createRequest(unitID, day.Add(10*time.Hour), day.Add(11*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)

		var created response.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &created)

		cancelURL := fmt.Sprintf("%s/%s/cancel", reservationsURL, created.ID)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPatch, cancelURL, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})
}

func (s *ReservationSuite) TestUnitCalendar() {
	s.Run("Normal case: calendar reflects existing reservations", func() {
		unitID, day := s.seedOpenUnit(nil)

		reqBody := s.createRequest(unitID, day.Add(10*time.Hour), day.Add(11*time.Hour))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		date := day.Format("2006-01-02")
		url := fmt.Sprintf(calendarURL, unitID, date, date)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, url, nil)

		var cal queries.UnitCalendar
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cal)
		s.Require().Len(cal.Days, 1)
		s.Require().NotEmpty(cal.Days[0].Slots)

		var sawConflict, sawFree bool
		for _, slot := range cal.Days[0].Slots {
			switch {
			case slot.Start.Equal(day.Add(10 * time.Hour)):
				s.False(slot.Reservable)
				sawConflict = true
			case slot.Start.Equal(day.Add(9 * time.Hour)):
				s.True(slot.Reservable)
				sawFree = true
			}
		}
		s.True(sawConflict, "reserved slot should be marked unavailable")
		s.True(sawFree, "free slot should stay available")
	})
}
