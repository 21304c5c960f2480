package api

import (
	"errors"
	"net/http"

	"space-booking-api/internal/handler/httperr"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UnitHandler struct {
	unitQueries queries.UnitQueries
}

func NewUnitHandler(unitQueries queries.UnitQueries) *UnitHandler {
	return &UnitHandler{unitQueries: unitQueries}
}

// @Summary List reservation units
// @Description List all reservation units with their weekly opening hours
// @Tags units
// @Produce json
// @Success 200 {array} queries.UnitDetail
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	units, err := h.unitQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, units)
}

// @Summary Get reservation unit
// @Description Get a reservation unit by ID
// @Tags units
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} queries.UnitDetail
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unit ID format", nil)
		return
	}

	unit, err := h.unitQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, unit)
}
