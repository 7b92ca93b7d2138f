package response

import (
	"time"

	"slotly/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	OffsetSeconds int       `json:"offsetSeconds"`
}

type SlotListResponse struct {
	EventTypeID     uuid.UUID      `json:"eventTypeId"`
	Title           string         `json:"title"`
	DurationMinutes int            `json:"durationMinutes"`
	Date            string         `json:"date"`
	Timezone        string         `json:"timezone"`
	Slots           []SlotResponse `json:"slots"`
}

func FromSlotListView(view *queries.SlotListView) *SlotListResponse {
	slots := make([]SlotResponse, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = SlotResponse{
			Start:         s.Start,
			End:           s.End,
			OffsetSeconds: s.OffsetSeconds,
		}
	}
	return &SlotListResponse{
		EventTypeID:     view.EventTypeID,
		Title:           view.Title,
		DurationMinutes: view.DurationMinutes,
		Date:            view.Date,
		Timezone:        view.TimeZone,
		Slots:           slots,
	}
}

type BookingPageResponse struct {
	EventTypeID     uuid.UUID                 `json:"eventTypeId"`
	Title           string                    `json:"title"`
	Description     string                    `json:"description"`
	DurationMinutes int                       `json:"durationMinutes"`
	Provider        string                    `json:"provider"`
	HostName        string                    `json:"hostName"`
	HostUserName    string                    `json:"hostUsername"`
	Availability    []DayAvailabilityResponse `json:"availability"`
}

type DayAvailabilityResponse struct {
	Weekday  string `json:"weekday"`
	IsActive bool   `json:"isActive"`
}

func FromBookingPageView(view *queries.BookingPageView) *BookingPageResponse {
	days := make([]DayAvailabilityResponse, len(view.Availability))
	for i, d := range view.Availability {
		days[i] = DayAvailabilityResponse{Weekday: d.Weekday, IsActive: d.IsActive}
	}
	return &BookingPageResponse{
		EventTypeID:     view.EventTypeID,
		Title:           view.Title,
		Description:     view.Description,
		DurationMinutes: view.DurationMinutes,
		Provider:        view.Provider,
		HostName:        view.HostName,
		HostUserName:    view.HostUserName,
		Availability:    days,
	}
}
