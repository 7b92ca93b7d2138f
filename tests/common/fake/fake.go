//go:build unit

// Package fake holds hand-rolled in-memory doubles for the persistence and
// provider ports. The calendar double behaves like a real calendar: created
// events become busy intervals visible to later reads, which is exactly the
// behavior booking re-validation is built around.
package fake

import (
	"context"
	"fmt"
	"sync"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/domain/eventtype"
	"slotly/internal/domain/schedule"
	"slotly/internal/infra"
	"slotly/internal/usecase"

	"github.com/google/uuid"
)

type HostRepository struct {
	Host *usecase.HostRecord
	Err  error
}

func (r *HostRepository) FindByUserName(_ context.Context, userName string) (*usecase.HostRecord, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Host == nil || r.Host.UserName != userName {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "host not found", nil)
	}
	return r.Host, nil
}

func (r *HostRepository) FindByID(_ context.Context, id uuid.UUID) (*usecase.HostRecord, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Host == nil || r.Host.ID != id {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "host not found", nil)
	}
	return r.Host, nil
}

type AvailabilityRepository struct {
	mu      sync.Mutex
	ruleSet *availability.RuleSet
	Err     error
}

func NewAvailabilityRepository(set availability.RuleSet) *AvailabilityRepository {
	return &AvailabilityRepository{ruleSet: &set}
}

func (r *AvailabilityRepository) RulesByHost(_ context.Context, _ uuid.UUID) (availability.RuleSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return availability.RuleSet{}, r.Err
	}
	if r.ruleSet == nil {
		return availability.RuleSet{}, infra.WrapRepoErr(infra.KindNotFound, "availability rules not found", nil)
	}
	return *r.ruleSet, nil
}

func (r *AvailabilityRepository) UpdateRules(_ context.Context, _ uuid.UUID, rules []availability.Rule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	set, err := availability.NewRuleSet(rules)
	if err != nil {
		return err
	}
	r.ruleSet = &set
	return nil
}

func (r *AvailabilityRepository) SeedDefaults(_ context.Context, _ uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if r.ruleSet == nil {
		set := availability.DefaultRuleSet()
		r.ruleSet = &set
	}
	return nil
}

type EventTypeRepository struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*eventtype.EventType
	Err  error
}

func NewEventTypeRepository(entities ...*eventtype.EventType) *EventTypeRepository {
	byID := make(map[uuid.UUID]*eventtype.EventType, len(entities))
	for _, e := range entities {
		byID[e.ID()] = e
	}
	return &EventTypeRepository{byID: byID}
}

func (r *EventTypeRepository) FindByID(_ context.Context, id uuid.UUID) (*eventtype.EventType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	e, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "event type not found", nil)
	}
	return e, nil
}

func (r *EventTypeRepository) FindActiveByHostAndURL(_ context.Context, hostID uuid.UUID, url string) (*eventtype.EventType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, e := range r.byID {
		if e.HostID() == hostID && e.URL() == url && e.IsActive() {
			return e, nil
		}
	}
	return nil, infra.WrapRepoErr(infra.KindNotFound, "event type not found", nil)
}

func (r *EventTypeRepository) ListByHost(_ context.Context, hostID uuid.UUID) ([]*eventtype.EventType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	var out []*eventtype.EventType
	for _, e := range r.byID {
		if e.HostID() == hostID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *EventTypeRepository) Create(_ context.Context, e *eventtype.EventType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.byID {
		if existing.HostID() == e.HostID() && existing.URL() == e.URL() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "event type url already taken", nil)
		}
	}
	r.byID[e.ID()] = e
	return nil
}

func (r *EventTypeRepository) Update(_ context.Context, e *eventtype.EventType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, existing := range r.byID {
		if existing.ID() != e.ID() && existing.HostID() == e.HostID() && existing.URL() == e.URL() {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "event type url already taken", nil)
		}
	}
	if _, ok := r.byID[e.ID()]; !ok {
		return infra.WrapRepoErr(infra.KindNotFound, "event type not found", nil)
	}
	r.byID[e.ID()] = e
	return nil
}

func (r *EventTypeRepository) Delete(_ context.Context, hostID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	e, ok := r.byID[id]
	if !ok || e.HostID() != hostID {
		return infra.WrapRepoErr(infra.KindNotFound, "event type not found", nil)
	}
	delete(r.byID, id)
	return nil
}

type IdentityRepository struct {
	Identity *usecase.ProviderIdentity
	Err      error
}

func (r *IdentityRepository) FindByHost(_ context.Context, hostID uuid.UUID) (*usecase.ProviderIdentity, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Identity == nil || r.Identity.HostID != hostID {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "provider identity not found", nil)
	}
	return r.Identity, nil
}

// Calendar is an in-memory calendar provider. Events created through it show
// up as busy intervals on subsequent reads, the same way a real calendar
// would behave between a booking's check and create steps.
type Calendar struct {
	mu      sync.Mutex
	busy    []schedule.BusyInterval
	events  map[string]usecase.RemoteEvent
	nextID  int
	created int
	reads   int

	FailBusy   error
	FailCreate error
	FailDelete error
	FailList   error
}

func NewCalendar() *Calendar {
	return &Calendar{events: make(map[string]usecase.RemoteEvent)}
}

func (c *Calendar) AddBusy(start, end time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = append(c.busy, schedule.BusyInterval{Start: start, End: end})
}

func (c *Calendar) AddEvent(ev usecase.RemoteEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[ev.ID] = ev
}

func (c *Calendar) CreateCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

func (c *Calendar) BusyReads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

func (c *Calendar) ListBusyIntervals(_ context.Context, _ usecase.ProviderIdentity, from, to time.Time) ([]schedule.BusyInterval, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	if c.FailBusy != nil {
		return nil, c.FailBusy
	}
	var out []schedule.BusyInterval
	for _, b := range c.busy {
		if b.Overlaps(from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (c *Calendar) CreateEvent(_ context.Context, _ usecase.ProviderIdentity, input usecase.EventInput) (*usecase.CreatedEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailCreate != nil {
		return nil, c.FailCreate
	}
	c.created++
	c.nextID++
	id := fmt.Sprintf("evt-%d", c.nextID)
	c.busy = append(c.busy, schedule.BusyInterval{Start: input.Start, End: input.End})
	c.events[id] = usecase.RemoteEvent{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
		JoinURL:     "https://meet.example.com/" + id,
		GuestEmails: []string{input.GuestEmail},
	}
	return &usecase.CreatedEvent{RemoteEventID: id, JoinURL: "https://meet.example.com/" + id}, nil
}

func (c *Calendar) DeleteEvent(_ context.Context, _ usecase.ProviderIdentity, remoteEventID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailDelete != nil {
		return c.FailDelete
	}
	if _, ok := c.events[remoteEventID]; !ok {
		return infra.WrapProviderErr(infra.ProviderNotFound, "event not found", nil)
	}
	delete(c.events, remoteEventID)
	return nil
}

func (c *Calendar) ListEvents(_ context.Context, _ usecase.ProviderIdentity, from, to time.Time) ([]usecase.RemoteEvent, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailList != nil {
		return nil, c.FailList
	}
	var out []usecase.RemoteEvent
	for _, ev := range c.events {
		if ev.Start.Before(to) && ev.End.After(from) {
			out = append(out, ev)
		}
	}
	return out, nil
}
