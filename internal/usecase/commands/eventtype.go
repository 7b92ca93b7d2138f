package commands

import (
	"context"

	"slotly/internal/domain/eventtype"
	"slotly/internal/infra"
	"slotly/internal/pkg/errs"
	"slotly/internal/usecase"
	"slotly/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventTypeParams struct {
	Title           string
	Description     string
	URL             string
	DurationMinutes int
	Provider        string
}

// EventTypeCommands manage a host's meeting templates. Edits only affect
// future bookings; events already created on the provider calendar keep the
// details they were created with.
type EventTypeCommands interface {
	Create(ctx context.Context, hostID uuid.UUID, params EventTypeParams) (*queries.EventTypeView, error)
	Edit(ctx context.Context, hostID, id uuid.UUID, params EventTypeParams) (*queries.EventTypeView, error)
	SetStatus(ctx context.Context, hostID, id uuid.UUID, active bool) error
	Delete(ctx context.Context, hostID, id uuid.UUID) error
}

type eventTypeCommandsImpl struct {
	eventTypes usecase.EventTypeRepository
}

func NewEventTypeCommands(eventTypes usecase.EventTypeRepository) EventTypeCommands {
	return &eventTypeCommandsImpl{eventTypes: eventTypes}
}

func (c *eventTypeCommandsImpl) Create(ctx context.Context, hostID uuid.UUID, params EventTypeParams) (*queries.EventTypeView, error) {
	entity, err := eventtype.NewEventType(
		hostID,
		params.Title,
		params.Description,
		params.URL,
		params.DurationMinutes,
		params.Provider,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidEventType)
	}

	if err := c.eventTypes.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateEventTypeURL)
		}
		return nil, err
	}
	return toEventTypeView(entity), nil
}

func (c *eventTypeCommandsImpl) Edit(ctx context.Context, hostID, id uuid.UUID, params EventTypeParams) (*queries.EventTypeView, error) {
	entity, err := c.ownedEventType(ctx, hostID, id)
	if err != nil {
		return nil, err
	}

	if err := entity.Edit(
		params.Title,
		params.Description,
		params.URL,
		params.DurationMinutes,
		params.Provider,
	); err != nil {
		return nil, errs.Mark(err, ErrInvalidEventType)
	}

	if err := c.eventTypes.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateEventTypeURL)
		}
		return nil, err
	}
	return toEventTypeView(entity), nil
}

func (c *eventTypeCommandsImpl) SetStatus(ctx context.Context, hostID, id uuid.UUID, active bool) error {
	entity, err := c.ownedEventType(ctx, hostID, id)
	if err != nil {
		return err
	}
	entity.SetActive(active)
	return c.eventTypes.Update(ctx, entity)
}

func (c *eventTypeCommandsImpl) Delete(ctx context.Context, hostID, id uuid.UUID) error {
	err := c.eventTypes.Delete(ctx, hostID, id)
	if err != nil {
		return markRepoErr(err, ErrEventTypeNotFound)
	}
	return nil
}

// ownedEventType enforces host ownership: another host's event type reads as
// not found, never as forbidden.
func (c *eventTypeCommandsImpl) ownedEventType(ctx context.Context, hostID, id uuid.UUID) (*eventtype.EventType, error) {
	entity, err := c.eventTypes.FindByID(ctx, id)
	if err != nil {
		return nil, markRepoErr(err, ErrEventTypeNotFound)
	}
	if entity.HostID() != hostID {
		return nil, ErrEventTypeNotFound
	}
	return entity, nil
}

func toEventTypeView(e *eventtype.EventType) *queries.EventTypeView {
	return &queries.EventTypeView{
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
