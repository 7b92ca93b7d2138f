package response

import (
	"time"

	"slotly/internal/usecase/commands"
)

type BookingResponse struct {
	RemoteEventID string    `json:"remoteEventId"`
	JoinURL       string    `json:"joinUrl,omitempty"`
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
}

func FromBookingResult(result *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		RemoteEventID: result.RemoteEventID,
		JoinURL:       result.JoinURL,
		Title:         result.Title,
		Start:         result.Start,
		End:           result.End,
	}
}
