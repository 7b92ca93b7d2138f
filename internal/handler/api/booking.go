package api

import (
	"errors"
	"net/http"

	reqdto "slotly/internal/handler/dto/request"
	resdto "slotly/internal/handler/dto/response"
	"slotly/internal/handler/httperr"
	"slotly/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings commands.BookingCommands
}

func NewBookingHandler(bookings commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
	}
}

// @Summary Book a meeting
// @Description Reserve a slot on the host's calendar. Availability is re-checked at booking time.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	result, err := h.bookings.Book(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBookingRequest):
			httperr.Abort(c, http.StatusBadRequest, err, "Invalid booking request")
		case errors.Is(err, commands.ErrEventTypeNotFound),
			errors.Is(err, commands.ErrHostNotFound),
			errors.Is(err, commands.ErrAvailabilityNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "Event type not found")
		case errors.Is(err, commands.ErrEventTypeInactive):
			httperr.Abort(c, http.StatusNotFound, err, "Event type is not open for booking")
		case errors.Is(err, commands.ErrSlotNoLongerAvailable):
			httperr.Abort(c, http.StatusConflict, err, "Slot is no longer available")
		case errors.Is(err, commands.ErrProviderNotLinked):
			httperr.Abort(c, http.StatusConflict, err, "Host has no linked calendar")
		case errors.Is(err, commands.ErrProviderTimeout):
			httperr.Abort(c, http.StatusGatewayTimeout, err, "Calendar provider timed out")
		case errors.Is(err, commands.ErrProviderUnavailable):
			httperr.Abort(c, http.StatusBadGateway, err, "Calendar provider unavailable")
		case errors.Is(err, commands.ErrReservationFailed):
			httperr.Abort(c, http.StatusUnprocessableEntity, err, "Provider rejected the booking")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
