package commands

import (
	"context"
	"strings"

	"slotly/internal/infra"
	"slotly/internal/pkg/errs"
	"slotly/internal/usecase"

	"github.com/google/uuid"
)

type CancellationCommands interface {
	Cancel(ctx context.Context, hostID uuid.UUID, remoteEventID string) error
}

type cancellationCommandsImpl struct {
	identities usecase.IdentityRepository
	provider   usecase.CalendarProvider
}

func NewCancellationCommands(
	identities usecase.IdentityRepository,
	provider usecase.CalendarProvider,
) CancellationCommands {
	return &cancellationCommandsImpl{
		identities: identities,
		provider:   provider,
	}
}

// Cancel deletes the event from the host's provider calendar. An event that
// is already gone counts as success, so retries and double-clicks are safe.
func (c *cancellationCommandsImpl) Cancel(ctx context.Context, hostID uuid.UUID, remoteEventID string) error {
	if strings.TrimSpace(remoteEventID) == "" {
		return ErrInvalidBookingRequest
	}

	identity, err := c.identities.FindByHost(ctx, hostID)
	if err != nil {
		return markRepoErr(err, ErrProviderNotLinked)
	}

	err = c.provider.DeleteEvent(ctx, *identity, remoteEventID)
	switch {
	case err == nil:
		return nil
	case infra.IsProviderKind(err, infra.ProviderNotFound):
		// Already absent: idempotent success.
		return nil
	case infra.IsProviderKind(err, infra.ProviderTimeout):
		return errs.Mark(err, ErrProviderTimeout)
	case infra.IsProviderKind(err, infra.ProviderUnavailable):
		return errs.Mark(err, ErrProviderUnavailable)
	default:
		return err
	}
}
