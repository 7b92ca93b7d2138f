//go:build unit

package builder

import (
	"slotly/internal/domain/schedule"
	reqdto "slotly/internal/handler/dto/request"
	"slotly/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	EventTypeID uuid.UUID
	Date        string
	StartTime   string
	Timezone    string
	GuestName   string
	GuestEmail  string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		EventTypeID: uuid.New(),
		Date:        "2025-06-02", // a Monday
		StartTime:   "09:00",
		Timezone:    "America/New_York",
		GuestName:   "Jordan Guest",
		GuestEmail:  "jordan@example.com",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventTypeID: b.EventTypeID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		Timezone:    b.Timezone,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
	}
}

func (b *BookingBuilder) BuildParams() commands.BookMeetingParams {
	date, _ := schedule.ParseDate(b.Date)
	return commands.BookMeetingParams{
		EventTypeID: b.EventTypeID,
		Date:        date,
		StartTime:   b.StartTime,
		TimeZone:    b.Timezone,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
	}
}
