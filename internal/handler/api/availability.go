package api

import (
	"errors"
	"net/http"

	reqdto "slotly/internal/handler/dto/request"
	resdto "slotly/internal/handler/dto/response"
	"slotly/internal/handler/httperr"
	"slotly/internal/handler/middleware"
	"slotly/internal/usecase/commands"
	"slotly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityQueries  queries.AvailabilityQueries
	availabilityCommands commands.AvailabilityCommands
}

func NewAvailabilityHandler(
	availabilityQueries queries.AvailabilityQueries,
	availabilityCommands commands.AvailabilityCommands,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries:  availabilityQueries,
		availabilityCommands: availabilityCommands,
	}
}

// @Summary Get availability
// @Description Get the authenticated host's weekly availability. Seeds the default week on first access.
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 401 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.availabilityQueries.GetWeek(c.Request.Context(), hostID)
	if errors.Is(err, queries.ErrAvailabilityNotFound) {
		// First visit: materialize the onboarding default week.
		if seedErr := h.availabilityCommands.SeedDefaults(c.Request.Context(), hostID); seedErr == nil {
			views, err = h.availabilityQueries.GetWeek(c.Request.Context(), hostID)
		}
	}
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleViews(views))
}

// @Summary Update availability
// @Description Replace the authenticated host's weekly availability. All seven weekdays are required.
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateAvailabilityRequest true "Full week of rules"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /availability [put]
func (h *AvailabilityHandler) UpdateAvailability(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	changes, err := req.ToChanges()
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Unknown weekday name")
		return
	}

	if err := h.availabilityCommands.UpdateRules(c.Request.Context(), hostID, changes); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidAvailability):
			httperr.Abort(c, http.StatusUnprocessableEntity, err, "Invalid availability rules")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	views, err := h.availabilityQueries.GetWeek(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleViews(views))
}
