package api

import (
	"errors"
	"net/http"

	resdto "slotly/internal/handler/dto/response"
	"slotly/internal/handler/httperr"
	"slotly/internal/handler/middleware"
	"slotly/internal/usecase/commands"
	"slotly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	meetingQueries queries.MeetingQueries
	cancellations  commands.CancellationCommands
}

func NewMeetingHandler(
	meetingQueries queries.MeetingQueries,
	cancellations commands.CancellationCommands,
) *MeetingHandler {
	return &MeetingHandler{
		meetingQueries: meetingQueries,
		cancellations:  cancellations,
	}
}

// @Summary List upcoming meetings
// @Description List the authenticated host's upcoming meetings, read back from the provider calendar
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MeetingResponse
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.meetingQueries.ListUpcoming(c.Request.Context(), hostID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProviderNotLinked):
			httperr.Abort(c, http.StatusConflict, err, "No linked calendar")
		case errors.Is(err, queries.ErrProviderTimeout):
			httperr.Abort(c, http.StatusGatewayTimeout, err, "Calendar provider timed out")
		case errors.Is(err, queries.ErrProviderUnavailable):
			httperr.Abort(c, http.StatusBadGateway, err, "Calendar provider unavailable")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMeetingViews(views))
}

// @Summary Cancel meeting
// @Description Delete a meeting from the provider calendar. Cancelling an already-cancelled meeting succeeds.
// @Tags meetings
// @Security BearerAuth
// @Param eventId path string true "Provider event ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 504 {object} httperr.Response
// @Router /meetings/{eventId} [delete]
func (h *MeetingHandler) CancelMeeting(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	err := h.cancellations.Cancel(c.Request.Context(), hostID, c.Param("eventId"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidBookingRequest):
			httperr.Abort(c, http.StatusBadRequest, err, "Invalid event ID")
		case errors.Is(err, commands.ErrProviderNotLinked):
			httperr.Abort(c, http.StatusConflict, err, "No linked calendar")
		case errors.Is(err, commands.ErrProviderTimeout):
			httperr.Abort(c, http.StatusGatewayTimeout, err, "Calendar provider timed out")
		case errors.Is(err, commands.ErrProviderUnavailable):
			httperr.Abort(c, http.StatusBadGateway, err, "Calendar provider unavailable")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
