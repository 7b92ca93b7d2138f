package commands

import (
	"context"
	"strings"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/domain/schedule"
	"slotly/internal/infra"
	"slotly/internal/pkg/errs"
	"slotly/internal/pkg/hostlock"
	"slotly/internal/usecase"

	"github.com/google/uuid"
)

type BookMeetingParams struct {
	EventTypeID uuid.UUID
	Date        schedule.Date
	StartTime   string // "HH:MM" wall-clock in TimeZone
	TimeZone    string // guest zone the start time is expressed in
	GuestName   string
	GuestEmail  string
}

type BookingResult struct {
	RemoteEventID string
	JoinURL       string
	Title         string
	Start         time.Time
	End           time.Time
}

type BookingCommands interface {
	Book(ctx context.Context, params BookMeetingParams) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	hosts      usecase.HostRepository
	rules      usecase.AvailabilityRepository
	eventTypes usecase.EventTypeRepository
	identities usecase.IdentityRepository
	provider   usecase.CalendarProvider
	locker     *hostlock.SlotLocker
}

func NewBookingCommands(
	hosts usecase.HostRepository,
	rules usecase.AvailabilityRepository,
	eventTypes usecase.EventTypeRepository,
	identities usecase.IdentityRepository,
	provider usecase.CalendarProvider,
	locker *hostlock.SlotLocker,
) BookingCommands {
	return &bookingCommandsImpl{
		hosts:      hosts,
		rules:      rules,
		eventTypes: eventTypes,
		identities: identities,
		provider:   provider,
		locker:     locker,
	}
}

// Book reserves the requested slot on the host's external calendar.
//
// The slot list the guest saw is never trusted: availability is re-derived
// here against a freshly fetched busy set, under a per-(host, start) lease so
// that two bookings for the same slot handled by this process cannot both
// pass the check. The lease does not reach across processes; with multiple
// replicas the provider calendar remains the only arbiter.
func (b *bookingCommandsImpl) Book(ctx context.Context, params BookMeetingParams) (*BookingResult, error) {
	requested, guestLoc, err := b.resolveRequestedStart(params)
	if err != nil {
		return nil, err
	}

	et, err := b.eventTypes.FindByID(ctx, params.EventTypeID)
	if err != nil {
		return nil, markRepoErr(err, ErrEventTypeNotFound)
	}
	if !et.IsActive() {
		return nil, ErrEventTypeInactive
	}

	host, err := b.hosts.FindByID(ctx, et.HostID())
	if err != nil {
		return nil, markRepoErr(err, ErrHostNotFound)
	}
	hostLoc, err := time.LoadLocation(host.TimeZone)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingRequest)
	}

	identity, err := b.identities.FindByHost(ctx, host.ID)
	if err != nil {
		return nil, markRepoErr(err, ErrProviderNotLinked)
	}

	ruleSet, err := b.rules.RulesByHost(ctx, host.ID)
	if err != nil {
		return nil, markRepoErr(err, ErrAvailabilityNotFound)
	}

	// Exclusivity lease across the check-then-create window.
	release := b.locker.Acquire(host.ID, requested)
	defer release()

	free, err := b.freeSlotsAround(ctx, *identity, ruleSet, et.Duration(), requested, hostLoc, guestLoc)
	if err != nil {
		return nil, err
	}
	if !containsStart(free, requested) {
		return nil, ErrSlotNoLongerAvailable
	}

	created, err := b.provider.CreateEvent(ctx, *identity, usecase.EventInput{
		Title:                et.Title(),
		Description:          et.Description(),
		Start:                requested,
		End:                  requested.Add(et.Duration()),
		ConferencingProvider: et.Provider(),
		GuestName:            params.GuestName,
		GuestEmail:           params.GuestEmail,
	})
	if err != nil {
		switch {
		case infra.IsProviderKind(err, infra.ProviderTimeout):
			return nil, errs.Mark(err, ErrProviderTimeout)
		case infra.IsProviderKind(err, infra.ProviderUnavailable):
			return nil, errs.Mark(err, ErrProviderUnavailable)
		default:
			// Nothing was committed; there is no compensating action.
			return nil, errs.Mark(err, ErrReservationFailed)
		}
	}

	return &BookingResult{
		RemoteEventID: created.RemoteEventID,
		JoinURL:       created.JoinURL,
		Title:         et.Title(),
		Start:         requested,
		End:           requested.Add(et.Duration()),
	}, nil
}

func (b *bookingCommandsImpl) resolveRequestedStart(params BookMeetingParams) (time.Time, *time.Location, error) {
	if strings.TrimSpace(params.GuestName) == "" || strings.TrimSpace(params.GuestEmail) == "" {
		return time.Time{}, nil, ErrInvalidBookingRequest
	}
	guestLoc, err := time.LoadLocation(params.TimeZone)
	if err != nil {
		return time.Time{}, nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	startClock, err := availability.ParseClockTime(params.StartTime)
	if err != nil {
		return time.Time{}, nil, errs.Mark(err, ErrInvalidBookingRequest)
	}
	requested := startClock.At(params.Date.Year, params.Date.Month, params.Date.Day, guestLoc)
	return requested, guestLoc, nil
}

// freeSlotsAround re-derives the candidate set for the host working day the
// requested instant falls into, against a busy set fetched moments before
// event creation. The guest's calendar date may differ from the host's; the
// host-local date anchors the rule lookup.
func (b *bookingCommandsImpl) freeSlotsAround(
	ctx context.Context,
	identity usecase.ProviderIdentity,
	ruleSet availability.RuleSet,
	duration time.Duration,
	requested time.Time,
	hostLoc, guestLoc *time.Location,
) ([]schedule.CandidateSlot, error) {
	hostLocal := requested.In(hostLoc)
	hostDate := schedule.Date{Year: hostLocal.Year(), Month: hostLocal.Month(), Day: hostLocal.Day()}

	rule := ruleSet.RuleFor(hostDate.Weekday(hostLoc))
	candidates := schedule.Enumerate(rule, hostDate, duration, hostLoc, guestLoc)
	if len(candidates) == 0 {
		return nil, nil
	}

	dayStart := time.Date(hostDate.Year, hostDate.Month, hostDate.Day, 0, 0, 0, 0, hostLoc)
	busy, err := b.provider.ListBusyIntervals(ctx, identity, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		switch {
		case infra.IsProviderKind(err, infra.ProviderTimeout):
			return nil, errs.Mark(err, ErrProviderTimeout)
		case infra.IsProviderKind(err, infra.ProviderUnavailable):
			return nil, errs.Mark(err, ErrProviderUnavailable)
		default:
			return nil, err
		}
	}

	return schedule.FilterConflicts(candidates, busy), nil
}

func containsStart(slots []schedule.CandidateSlot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

func markRepoErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return err
}
