package api

import (
	"errors"
	"net/http"

	"space-booking-api/internal/domain/reservation"
	reqdto "space-booking-api/internal/handler/dto/request"
	resdto "space-booking-api/internal/handler/dto/response"
	"space-booking-api/internal/handler/httperr"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/commands"
	"space-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Reserve a slot on a unit; the slot is re-validated against opening hours, duration bounds and existing reservations
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.CreateReservationParams{
		UnitID:        req.UnitID,
		Begin:         req.Begin,
		End:           req.End,
		ReserveeName:  req.ReserveeName,
		ReserveeEmail: req.GetReserveeEmail(),
		Note:          req.GetNote(),
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), params)
	if err != nil {
		var notReservable *commands.NotReservableError
		switch {
		case errors.As(err, &notReservable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Slot is not reservable",
				gin.H{"reason": notReservable.Reason})
		case errors.Is(err, errs.ErrUnitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
		case errors.Is(err, errs.ErrInvalidTimeSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time slot", nil)
		case errors.Is(err, reservation.ErrEmptyReservee):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reservee name is required", nil)
		case errors.Is(err, errs.ErrReservationConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot was taken by a concurrent reservation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List unit reservations
// @Description List reservations on a unit overlapping a civil-date range
// @Tags reservations
// @Produce json
// @Param id path string true "Unit ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Router /units/{id}/reservations [get]
func (h *ReservationHandler) ListUnitReservations(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit ID format", nil)
		return
	}

	var q reqdto.DateRangeQuery
	if bindErr := c.ShouldBindQuery(&q); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "from and to query parameters are required", nil)
		return
	}
	from, to, err := q.Parse()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Dates must be formatted YYYY-MM-DD", nil)
		return
	}

	views, err := h.reservationQueries.ListByUnit(c.Request.Context(), id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "from must not be after to", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.ReservationListResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromReservationListView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel reservation
// @Description Cancel a reservation if its state allows it
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [patch]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.reservationCommands.CancelReservation(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, reservation.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already cancelled", nil)
		case errors.Is(err, reservation.ErrNotCancellable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation cannot be cancelled in its current state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
