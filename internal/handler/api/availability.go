package api

import (
	"errors"
	"net/http"

	reqdto "space-booking-api/internal/handler/dto/request"
	"space-booking-api/internal/handler/httperr"
	"space-booking-api/internal/pkg/apidate"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityQueries: availabilityQueries}
}

// @Summary Unit availability calendar
// @Description Per-date opening spans plus a reservability verdict for every slot on the booking grid
// @Tags availability
// @Produce json
// @Param id path string true "Unit ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} queries.UnitCalendar
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /units/{id}/calendar [get]
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
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

	calendar, err := h.availabilityQueries.UnitCalendar(c.Request.Context(), id, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
		case errors.Is(err, errs.ErrInvalidDateRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "from must not be after to", nil)
		case errors.Is(err, errs.ErrDateRangeTooWide):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Requested range is too wide", nil)
		case errors.Is(err, apidate.ErrFormat):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Unit opening data is malformed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, calendar)
}
