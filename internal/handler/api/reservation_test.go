//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"space-booking-api/internal/domain/availability"
	"space-booking-api/internal/domain/reservation"
	"space-booking-api/internal/handler/api"
	resdto "space-booking-api/internal/handler/dto/response"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/commands"
	"space-booking-api/internal/usecase/queries"
	"space-booking-api/tests/common/builder"
	"space-booking-api/tests/common/httptest"
	commandsmock "space-booking-api/tests/mock/commands"
	queriesmock "space-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PATCH("/reservations/:id/cancel", s.handler.CancelReservation)
	s.router.GET("/units/:id/reservations", s.handler.ListUnitReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.UnitName, body.UnitName)
		s.Equal(string(returnView.State), body.State)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []map[string]any{
			{"begin": reqBody.Begin, "end": reqBody.End, "reservee_name": reqBody.ReserveeName},
			{"unit_id": reqBody.UnitID, "end": reqBody.End, "reservee_name": reqBody.ReserveeName},
			{"unit_id": reqBody.UnitID, "begin": reqBody.Begin, "reservee_name": reqBody.ReserveeName},
			{"unit_id": reqBody.UnitID, "begin": reqBody.Begin, "end": reqBody.End},
		}
		for _, body := range cases {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unit not found",
				commandsError:  errs.ErrUnitNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Unit not found",
			},
			{
				name:           "invalid time slot",
				commandsError:  errs.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "slot not reservable",
				commandsError:  &commands.NotReservableError{Reason: availability.ReasonOutsideOpeningHours},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not reservable",
			},
			{
				name:           "concurrent conflict",
				commandsError:  errs.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "concurrent",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 422 carries the rejection reason in detail", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			Return(nil, &commands.NotReservableError{Reason: availability.ReasonTooShort}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), string(availability.ReasonTooShort))
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestListUnitReservations
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListUnitReservations() {
	returnView := builder.NewReservationBuilder().BuildView()
	base := "/units/" + returnView.UnitID.String() + "/reservations"

	s.Run("success: returns 200 OK with list", func() {
		s.mockQueries.EXPECT().ListByUnit(gomock.Any(), returnView.UnitID, gomock.Any(), gomock.Any()).
			Return([]*queries.ReservationView{returnView}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2021-10-25&to=2021-10-31", nil)

		var body []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal(returnView.ID, body[0].ID)
	})

	s.Run("error: 400 when range parameters missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "query parameters")
	})

	s.Run("error: 400 on malformed dates", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?from=2021/10/25&to=2021-10-31", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

// ================================================================================
// TestCancelReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	b := builder.NewReservationBuilder()
	b.State = reservation.StateCancelled
	returnView := b.BuildView()
	url := "/reservations/" + returnView.ID.String() + "/cancel"

	s.Run("success: returns 200 OK with cancelled state", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(string(reservation.StateCancelled), body.State)
	})

	s.Run("error: maps cancellation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: errs.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
			{name: "already cancelled", commandsError: reservation.ErrAlreadyCancelled, expectedStatus: http.StatusConflict},
			{name: "not cancellable", commandsError: reservation.ErrNotCancellable, expectedStatus: http.StatusConflict},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), returnView.ID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
