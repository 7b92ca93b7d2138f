package response

import (
	"time"

	"slotly/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventTypeResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	DurationMinutes int       `json:"durationMinutes"`
	Provider        string    `json:"provider"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromEventTypeView(view *queries.EventTypeView) *EventTypeResponse {
	var resp EventTypeResponse
	// Field names line up one to one; keep the mapping mechanical.
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromEventTypeViews(views []*queries.EventTypeView) []*EventTypeResponse {
	out := make([]*EventTypeResponse, len(views))
	for i, v := range views {
		out[i] = FromEventTypeView(v)
	}
	return out
}
