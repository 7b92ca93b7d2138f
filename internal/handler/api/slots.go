package api

import (
	"errors"
	"net/http"

	"slotly/internal/domain/schedule"
	resdto "slotly/internal/handler/dto/response"
	"slotly/internal/handler/httperr"
	"slotly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultGuestTimezone = "UTC"

type SlotHandler struct {
	slotQueries      queries.SlotQueries
	eventTypeQueries queries.EventTypeQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries, eventTypeQueries queries.EventTypeQueries) *SlotHandler {
	return &SlotHandler{
		slotQueries:      slotQueries,
		eventTypeQueries: eventTypeQueries,
	}
}

// @Summary Get booking page
// @Description Get the public booking page for a host's event type
// @Tags booking
// @Produce json
// @Param username path string true "Host username"
// @Param eventUrl path string true "Event type URL slug"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 404 {object} httperr.Response
// @Router /hosts/{username}/events/{eventUrl} [get]
func (h *SlotHandler) GetBookingPage(c *gin.Context) {
	view, err := h.eventTypeQueries.GetBookingPage(c.Request.Context(), c.Param("username"), c.Param("eventUrl"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHostNotFound),
			errors.Is(err, queries.ErrEventTypeNotFound),
			errors.Is(err, queries.ErrAvailabilityNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Booking page not found")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingPageView(view))
}

// @Summary List available slots
// @Description List bookable slots for one calendar date, rendered in the guest's timezone
// @Tags booking
// @Produce json
// @Param username path string true "Host username"
// @Param eventUrl path string true "Event type URL slug"
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param timezone query string false "Guest IANA timezone (default UTC)"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /hosts/{username}/events/{eventUrl}/slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	date, err := schedule.ParseDate(c.Query("date"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD")
		return
	}
	guestTZ := c.DefaultQuery("timezone", defaultGuestTimezone)

	view, err := h.slotQueries.ListAvailableSlots(c.Request.Context(), c.Param("username"), c.Param("eventUrl"), date, guestTZ)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidSlotQuery):
			httperr.Abort(c, http.StatusBadRequest, err, "Invalid slot query")
		case errors.Is(err, queries.ErrHostNotFound),
			errors.Is(err, queries.ErrEventTypeNotFound),
			errors.Is(err, queries.ErrAvailabilityNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Booking page not found")
		case errors.Is(err, queries.ErrProviderNotLinked):
			httperr.Abort(c, http.StatusConflict, err, "Host has no linked calendar")
		case errors.Is(err, queries.ErrProviderTimeout):
			httperr.Abort(c, http.StatusGatewayTimeout, err, "Calendar provider timed out")
		case errors.Is(err, queries.ErrProviderUnavailable):
			httperr.Abort(c, http.StatusBadGateway, err, "Calendar provider unavailable")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotListView(view))
}
