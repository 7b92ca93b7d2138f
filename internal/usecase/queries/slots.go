package queries

import (
	"context"
	"time"

	"slotly/internal/domain/schedule"
	"slotly/internal/infra"
	"slotly/internal/pkg/errs"
	"slotly/internal/usecase"

	"github.com/google/uuid"
)

var (
	ErrHostNotFound         = errs.New("host not found")
	ErrEventTypeNotFound    = errs.New("event type not found")
	ErrAvailabilityNotFound = errs.New("availability rules not found")
	ErrProviderNotLinked    = errs.New("host has no linked calendar")
	ErrProviderUnavailable  = errs.New("calendar provider unavailable")
	ErrProviderTimeout      = errs.New("calendar provider timed out")
	ErrInvalidSlotQuery     = errs.New("invalid slot query")
)

// Read models (DTO for read side)
type SlotView struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	OffsetSeconds int       `json:"offset_seconds"`
}

type SlotListView struct {
	EventTypeID     uuid.UUID  `json:"event_type_id"`
	Title           string     `json:"title"`
	DurationMinutes int        `json:"duration_minutes"`
	Date            string     `json:"date"`
	TimeZone        string     `json:"timezone"`
	Slots           []SlotView `json:"slots"`
}

type SlotQueries interface {
	ListAvailableSlots(ctx context.Context, userName, eventURL string, date schedule.Date, guestTZ string) (*SlotListView, error)
}

type slotQueriesImpl struct {
	hosts      usecase.HostRepository
	rules      usecase.AvailabilityRepository
	eventTypes usecase.EventTypeRepository
	identities usecase.IdentityRepository
	provider   usecase.CalendarProvider
}

func NewSlotQueries(
	hosts usecase.HostRepository,
	rules usecase.AvailabilityRepository,
	eventTypes usecase.EventTypeRepository,
	identities usecase.IdentityRepository,
	provider usecase.CalendarProvider,
) SlotQueries {
	return &slotQueriesImpl{
		hosts:      hosts,
		rules:      rules,
		eventTypes: eventTypes,
		identities: identities,
		provider:   provider,
	}
}

// ListAvailableSlots derives the bookable windows for one calendar date.
// Busy intervals are fetched from the provider on every call; the returned
// list is advisory and re-validated at booking time.
func (q *slotQueriesImpl) ListAvailableSlots(
	ctx context.Context,
	userName, eventURL string,
	date schedule.Date,
	guestTZ string,
) (*SlotListView, error) {
	guestLoc, err := time.LoadLocation(guestTZ)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlotQuery)
	}

	host, err := q.hosts.FindByUserName(ctx, userName)
	if err != nil {
		return nil, markRepoErr(err, ErrHostNotFound)
	}
	hostLoc, err := time.LoadLocation(host.TimeZone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlotQuery)
	}

	et, err := q.eventTypes.FindActiveByHostAndURL(ctx, host.ID, eventURL)
	if err != nil {
		return nil, markRepoErr(err, ErrEventTypeNotFound)
	}

	ruleSet, err := q.rules.RulesByHost(ctx, host.ID)
	if err != nil {
		return nil, markRepoErr(err, ErrAvailabilityNotFound)
	}

	rule := ruleSet.RuleFor(date.Weekday(hostLoc))
	candidates := schedule.Enumerate(rule, date, et.Duration(), hostLoc, guestLoc)

	view := &SlotListView{
		EventTypeID:     et.ID(),
		Title:           et.Title(),
		DurationMinutes: et.DurationMinutes(),
		Date:            date.String(),
		TimeZone:        guestTZ,
		Slots:           []SlotView{},
	}
	if len(candidates) == 0 {
		return view, nil
	}

	identity, err := q.identities.FindByHost(ctx, host.ID)
	if err != nil {
		return nil, markRepoErr(err, ErrProviderNotLinked)
	}

	dayStart := time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, hostLoc)
	busy, err := q.provider.ListBusyIntervals(ctx, *identity, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, markProviderErr(err)
	}

	for _, s := range schedule.FilterConflicts(candidates, busy) {
		view.Slots = append(view.Slots, SlotView{
			Start:         s.Start,
			End:           s.End,
			OffsetSeconds: s.OffsetSeconds,
		})
	}
	return view, nil
}

func markRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return err
}

// markProviderErr keeps the transient/permanent split visible to callers.
// A provider failure must never degrade into an empty slot list.
func markProviderErr(err error) error {
	switch {
	case infra.IsProviderKind(err, infra.ProviderTimeout):
		return errs.Mark(err, ErrProviderTimeout)
	case infra.IsProviderKind(err, infra.ProviderUnavailable):
		return errs.Mark(err, ErrProviderUnavailable)
	default:
		return err
	}
}
