//go:build unit

package builder

import (
	"time"

	dometype "slotly/internal/domain/eventtype"
	reqdto "slotly/internal/handler/dto/request"
	"slotly/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventTypeBuilder struct {
	HostID          uuid.UUID
	Title           string
	Description     string
	URL             string
	DurationMinutes int
	Provider        string
	Active          bool
}

func NewEventTypeBuilder() *EventTypeBuilder {
	return &EventTypeBuilder{
		HostID:          uuid.New(),
		Title:           "Intro call",
		Description:     "A quick intro meeting",
		URL:             "intro-call",
		DurationMinutes: 30,
		Provider:        "google-meet",
		Active:          true,
	}
}

func (b *EventTypeBuilder) With(mutate func(*EventTypeBuilder)) *EventTypeBuilder {
	mutate(b)
	return b
}

func (b *EventTypeBuilder) BuildDomain() (*dometype.EventType, error) {
	return dometype.NewEventType(b.HostID, b.Title, b.Description, b.URL, b.DurationMinutes, b.Provider)
}

func (b *EventTypeBuilder) BuildReconstructed() *dometype.EventType {
	now := time.Now()
	return dometype.Reconstruct(
		uuid.New(), b.HostID,
		b.Title, b.Description, b.URL,
		b.DurationMinutes, b.Provider, b.Active,
		now, now,
	)
}

func (b *EventTypeBuilder) BuildView() *queries.EventTypeView {
	now := time.Now()
	return &queries.EventTypeView{
		ID:              uuid.New(),
		Title:           b.Title,
		Description:     b.Description,
		URL:             b.URL,
		DurationMinutes: b.DurationMinutes,
		Provider:        b.Provider,
		Active:          b.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *EventTypeBuilder) BuildRequestDTO() reqdto.EventTypeRequest {
	return reqdto.EventTypeRequest{
		Title:           b.Title,
		Description:     b.Description,
		URL:             b.URL,
		DurationMinutes: b.DurationMinutes,
		Provider:        b.Provider,
	}
}
