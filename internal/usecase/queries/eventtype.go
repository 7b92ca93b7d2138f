package queries

import (
	"context"
	"time"

	"slotly/internal/usecase"

	"github.com/google/uuid"
)

type EventTypeView struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	DurationMinutes int       `json:"duration_minutes"`
	Provider        string    `json:"provider"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DayAvailability is what the booking page needs per weekday: whether the
// day can be selected at all. Open and close hours stay host-side.
type DayAvailability struct {
	Weekday  string `json:"weekday"`
	IsActive bool   `json:"is_active"`
}

type BookingPageView struct {
	EventTypeID     uuid.UUID         `json:"event_type_id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DurationMinutes int               `json:"duration_minutes"`
	Provider        string            `json:"provider"`
	HostName        string            `json:"host_name"`
	HostUserName    string            `json:"host_username"`
	Availability    []DayAvailability `json:"availability"`
}

type EventTypeQueries interface {
	GetBookingPage(ctx context.Context, userName, eventURL string) (*BookingPageView, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*EventTypeView, error)
}

type eventTypeQueriesImpl struct {
	hosts      usecase.HostRepository
	rules      usecase.AvailabilityRepository
	eventTypes usecase.EventTypeRepository
}

func NewEventTypeQueries(
	hosts usecase.HostRepository,
	rules usecase.AvailabilityRepository,
	eventTypes usecase.EventTypeRepository,
) EventTypeQueries {
	return &eventTypeQueriesImpl{
		hosts:      hosts,
		rules:      rules,
		eventTypes: eventTypes,
	}
}

func (q *eventTypeQueriesImpl) GetBookingPage(ctx context.Context, userName, eventURL string) (*BookingPageView, error) {
	host, err := q.hosts.FindByUserName(ctx, userName)
	if err != nil {
		return nil, markRepoErr(err, ErrHostNotFound)
	}

	et, err := q.eventTypes.FindActiveByHostAndURL(ctx, host.ID, eventURL)
	if err != nil {
		return nil, markRepoErr(err, ErrEventTypeNotFound)
	}

	ruleSet, err := q.rules.RulesByHost(ctx, host.ID)
	if err != nil {
		return nil, markRepoErr(err, ErrAvailabilityNotFound)
	}

	days := make([]DayAvailability, 0, 7)
	for _, rule := range ruleSet.Rules() {
		days = append(days, DayAvailability{
			Weekday:  rule.Weekday().String(),
			IsActive: rule.IsActive(),
		})
	}

	return &BookingPageView{
		EventTypeID:     et.ID(),
		Title:           et.Title(),
		Description:     et.Description(),
		DurationMinutes: et.DurationMinutes(),
		Provider:        et.Provider(),
		HostName:        host.Name,
		HostUserName:    host.UserName,
		Availability:    days,
	}, nil
}

func (q *eventTypeQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*EventTypeView, error) {
	entities, err := q.eventTypes.ListByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	views := make([]*EventTypeView, len(entities))
	for i, e := range entities {
		views[i] = &EventTypeView{
			ID:              e.ID(),
			Title:           e.Title(),
			Description:     e.Description(),
			URL:             e.URL(),
			DurationMinutes: e.DurationMinutes(),
			Provider:        e.Provider(),
			Active:          e.IsActive(),
			CreatedAt:       e.CreatedAt(),
			UpdatedAt:       e.UpdatedAt(),
		}
	}
	return views, nil
}
