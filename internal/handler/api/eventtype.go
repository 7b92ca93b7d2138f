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
	"github.com/google/uuid"
)

type EventTypeHandler struct {
	eventTypeQueries  queries.EventTypeQueries
	eventTypeCommands commands.EventTypeCommands
}

func NewEventTypeHandler(
	eventTypeQueries queries.EventTypeQueries,
	eventTypeCommands commands.EventTypeCommands,
) *EventTypeHandler {
	return &EventTypeHandler{
		eventTypeQueries:  eventTypeQueries,
		eventTypeCommands: eventTypeCommands,
	}
}

// @Summary List event types
// @Description List the authenticated host's event types
// @Tags event-types
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EventTypeResponse
// @Failure 401 {object} httperr.Response
// @Router /event-types [get]
func (h *EventTypeHandler) ListEventTypes(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	views, err := h.eventTypeQueries.ListByHost(c.Request.Context(), hostID)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventTypeViews(views))
}

// @Summary Create event type
// @Description Create a new event type for the authenticated host
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EventTypeRequest true "Event type"
// @Success 201 {object} resdto.EventTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /event-types [post]
func (h *EventTypeHandler) CreateEventType(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var req reqdto.EventTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.eventTypeCommands.Create(c.Request.Context(), hostID, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventTypeView(view))
}

// @Summary Edit event type
// @Description Replace the mutable fields of an event type
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Param request body reqdto.EventTypeRequest true "Event type"
// @Success 200 {object} resdto.EventTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /event-types/{id} [patch]
func (h *EventTypeHandler) EditEventType(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid event type ID format")
		return
	}

	var req reqdto.EventTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.eventTypeCommands.Edit(c.Request.Context(), hostID, id, req.ToParams())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventTypeView(view))
}

// @Summary Set event type status
// @Description Activate or deactivate an event type
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Param request body reqdto.SetEventTypeStatusRequest true "Desired status"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /event-types/{id}/status [patch]
func (h *EventTypeHandler) SetEventTypeStatus(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid event type ID format")
		return
	}

	var req reqdto.SetEventTypeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.Abort(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	if err := h.eventTypeCommands.SetStatus(c.Request.Context(), hostID, id, *req.Active); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete event type
// @Description Delete an event type. Already-booked meetings stay on the provider calendar.
// @Tags event-types
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /event-types/{id} [delete]
func (h *EventTypeHandler) DeleteEventType(c *gin.Context) {
	hostID, ok := middleware.GetHostID(c)
	if !ok {
		httperr.Abort(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, "Invalid event type ID format")
		return
	}

	if err := h.eventTypeCommands.Delete(c.Request.Context(), hostID, id); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *EventTypeHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrEventTypeNotFound):
		httperr.Abort(c, http.StatusNotFound, err, "Event type not found")
	case errors.Is(err, commands.ErrInvalidEventType):
		httperr.Abort(c, http.StatusUnprocessableEntity, err, "Invalid event type")
	case errors.Is(err, commands.ErrDuplicateEventTypeURL):
		httperr.Abort(c, http.StatusConflict, err, "Event type URL already in use")
	default:
		httperr.Abort(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
