package usecase

import (
	"context"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/domain/eventtype"
	"slotly/internal/domain/schedule"

	"github.com/google/uuid"
)

// HostRecord is the read contract for a host. The engine never writes hosts;
// account provisioning lives outside this service.
type HostRecord struct {
	ID       uuid.UUID
	UserName string
	Name     string
	TimeZone string // IANA zone the host's working day is anchored in
}

// ProviderIdentity is the host's link to the external calendar: which
// calendar to book into and the OAuth token acting on it.
type ProviderIdentity struct {
	HostID       uuid.UUID
	CalendarID   string
	AccessToken  string
	RefreshToken string
	TokenExpiry  time.Time
}

type HostRepository interface {
	FindByUserName(ctx context.Context, userName string) (*HostRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*HostRecord, error)
}

type AvailabilityRepository interface {
	RulesByHost(ctx context.Context, hostID uuid.UUID) (availability.RuleSet, error)
	UpdateRules(ctx context.Context, hostID uuid.UUID, rules []availability.Rule) error
	SeedDefaults(ctx context.Context, hostID uuid.UUID) error
}

type EventTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*eventtype.EventType, error)
	FindActiveByHostAndURL(ctx context.Context, hostID uuid.UUID, url string) (*eventtype.EventType, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*eventtype.EventType, error)
	Create(ctx context.Context, e *eventtype.EventType) error
	Update(ctx context.Context, e *eventtype.EventType) error
	Delete(ctx context.Context, hostID, id uuid.UUID) error
}

type IdentityRepository interface {
	FindByHost(ctx context.Context, hostID uuid.UUID) (*ProviderIdentity, error)
}

// EventInput is what the engine hands the provider when reserving a slot.
// Instants are absolute; the provider renders them in attendee zones itself.
type EventInput struct {
	Title                string
	Description          string
	Start                time.Time
	End                  time.Time
	ConferencingProvider string
	GuestName            string
	GuestEmail           string
}

type CreatedEvent struct {
	RemoteEventID string
	JoinURL       string
}

// RemoteEvent is the provider's view of an already-created event. The engine
// keeps no booking ledger, so host-facing history is reconstructed from
// these.
type RemoteEvent struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	JoinURL     string
	GuestEmails []string
}

// CalendarProvider is the external calendar holding the authoritative event
// list. Implementations must report transport failures distinctly from
// not-found and from empty results; an availability check that cannot reach
// the provider must never read as "all free".
type CalendarProvider interface {
	ListBusyIntervals(ctx context.Context, identity ProviderIdentity, from, to time.Time) ([]schedule.BusyInterval, error)
	CreateEvent(ctx context.Context, identity ProviderIdentity, input EventInput) (*CreatedEvent, error)
	DeleteEvent(ctx context.Context, identity ProviderIdentity, remoteEventID string) error
	ListEvents(ctx context.Context, identity ProviderIdentity, from, to time.Time) ([]RemoteEvent, error)
}
