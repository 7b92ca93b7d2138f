package eventtype

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTitle       = errors.New("title must be 3 to 150 characters")
	ErrInvalidDescription = errors.New("description must be 3 to 300 characters")
	ErrInvalidURL         = errors.New("url must be 3 to 150 characters of letters, digits, - or _")
	ErrInvalidDuration    = errors.New("duration must be between 15 and 60 minutes")
	ErrInvalidProvider    = errors.New("conferencing provider is required")
)

const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 60
)

var urlPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// EventType is a host-owned meeting template. The booking URL slug is unique
// per host (enforced by the store). Editing a type never rewrites events that
// were already created on the provider calendar.
type EventType struct {
	id              uuid.UUID
	hostID          uuid.UUID
	title           string
	description     string
	url             string
	durationMinutes int
	provider        string
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewEventType(hostID uuid.UUID, title, description, url string, durationMinutes int, provider string) (*EventType, error) {
	e := &EventType{
		id:     uuid.New(),
		hostID: hostID,
		active: true,
	}
	if err := e.apply(title, description, url, durationMinutes, provider); err != nil {
		return nil, err
	}
	return e, nil
}

func Reconstruct(
	id, hostID uuid.UUID,
	title, description, url string,
	durationMinutes int,
	provider string,
	active bool,
	createdAt, updatedAt time.Time,
) *EventType {
	return &EventType{
		id:              id,
		hostID:          hostID,
		title:           title,
		description:     description,
		url:             url,
		durationMinutes: durationMinutes,
		provider:        provider,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Edit replaces the mutable fields after validation.
func (e *EventType) Edit(title, description, url string, durationMinutes int, provider string) error {
	return e.apply(title, description, url, durationMinutes, provider)
}

func (e *EventType) SetActive(active bool) {
	e.active = active
}

func (e *EventType) apply(title, description, url string, durationMinutes int, provider string) error {
	title = strings.TrimSpace(title)
	if len(title) < 3 || len(title) > 150 {
		return ErrInvalidTitle
	}
	description = strings.TrimSpace(description)
	if len(description) < 3 || len(description) > 300 {
		return ErrInvalidDescription
	}
	if len(url) < 3 || len(url) > 150 || !urlPattern.MatchString(url) {
		return ErrInvalidURL
	}
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if strings.TrimSpace(provider) == "" {
		return ErrInvalidProvider
	}

	e.title = title
	e.description = description
	e.url = url
	e.durationMinutes = durationMinutes
	e.provider = provider
	return nil
}

func (e *EventType) ID() uuid.UUID        { return e.id }
func (e *EventType) HostID() uuid.UUID    { return e.hostID }
func (e *EventType) Title() string        { return e.title }
func (e *EventType) Description() string  { return e.description }
func (e *EventType) URL() string          { return e.url }
func (e *EventType) DurationMinutes() int { return e.durationMinutes }
func (e *EventType) Provider() string     { return e.provider }
func (e *EventType) IsActive() bool       { return e.active }
func (e *EventType) CreatedAt() time.Time { return e.createdAt }
func (e *EventType) UpdatedAt() time.Time { return e.updatedAt }

func (e *EventType) Duration() time.Duration {
	return time.Duration(e.durationMinutes) * time.Minute
}
