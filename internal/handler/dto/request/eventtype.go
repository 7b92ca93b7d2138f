package request

import (
	"slotly/internal/usecase/commands"
)

type EventTypeRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	URL             string `json:"url" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
	Provider        string `json:"provider" binding:"required"`
}

func (r EventTypeRequest) ToParams() commands.EventTypeParams {
	return commands.EventTypeParams{
		Title:           r.Title,
		Description:     r.Description,
		URL:             r.URL,
		DurationMinutes: r.DurationMinutes,
		Provider:        r.Provider,
	}
}

type SetEventTypeStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}
