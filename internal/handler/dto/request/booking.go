package request

import (
	"slotly/internal/domain/schedule"
	"slotly/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	EventTypeID uuid.UUID `json:"event_type_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`       // "YYYY-MM-DD" in the guest's zone
	StartTime   string    `json:"start_time" binding:"required"` // "HH:MM" wall-clock in Timezone
	Timezone    string    `json:"timezone" binding:"required"`
	GuestName   string    `json:"guest_name" binding:"required"`
	GuestEmail  string    `json:"guest_email" binding:"required,email"`
}

func (r CreateBookingRequest) ToParams() (commands.BookMeetingParams, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return commands.BookMeetingParams{}, err
	}
	return commands.BookMeetingParams{
		EventTypeID: r.EventTypeID,
		Date:        date,
		StartTime:   r.StartTime,
		TimeZone:    r.Timezone,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
	}, nil
}
