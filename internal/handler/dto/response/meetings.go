package response

import (
	"time"

	"slotly/internal/usecase/queries"
)

type MeetingResponse struct {
	RemoteEventID string    `json:"remoteEventId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	JoinURL       string    `json:"joinUrl,omitempty"`
	GuestEmails   []string  `json:"guestEmails,omitempty"`
}

func FromMeetingViews(views []*queries.MeetingView) []*MeetingResponse {
	out := make([]*MeetingResponse, len(views))
	for i, v := range views {
		out[i] = &MeetingResponse{
			RemoteEventID: v.RemoteEventID,
			Title:         v.Title,
			Description:   v.Description,
			Start:         v.Start,
			End:           v.End,
			JoinURL:       v.JoinURL,
			GuestEmails:   v.GuestEmails,
		}
	}
	return out
}
