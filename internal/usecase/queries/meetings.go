package queries

import (
	"context"
	"time"

	"slotly/internal/pkg/clock"
	"slotly/internal/usecase"

	"github.com/google/uuid"
)

// How far ahead the meetings dashboard looks. History beyond this window
// stays on the provider calendar.
const upcomingWindow = 30 * 24 * time.Hour

type MeetingView struct {
	RemoteEventID string    `json:"remote_event_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	JoinURL       string    `json:"join_url,omitempty"`
	GuestEmails   []string  `json:"guest_emails,omitempty"`
}

// MeetingQueries reconstructs a host's schedule from the provider. There is
// no local booking ledger to read; the provider is the system of record.
type MeetingQueries interface {
	ListUpcoming(ctx context.Context, hostID uuid.UUID) ([]*MeetingView, error)
}

type meetingQueriesImpl struct {
	identities usecase.IdentityRepository
	provider   usecase.CalendarProvider
	clock      clock.Clock
}

func NewMeetingQueries(
	identities usecase.IdentityRepository,
	provider usecase.CalendarProvider,
	clock clock.Clock,
) MeetingQueries {
	return &meetingQueriesImpl{
		identities: identities,
		provider:   provider,
		clock:      clock,
	}
}

func (q *meetingQueriesImpl) ListUpcoming(ctx context.Context, hostID uuid.UUID) ([]*MeetingView, error) {
	identity, err := q.identities.FindByHost(ctx, hostID)
	if err != nil {
		return nil, markRepoErr(err, ErrProviderNotLinked)
	}

	now := q.clock.Now()
	events, err := q.provider.ListEvents(ctx, *identity, now, now.Add(upcomingWindow))
	if err != nil {
		return nil, markProviderErr(err)
	}

	views := make([]*MeetingView, len(events))
	for i, ev := range events {
		views[i] = &MeetingView{
			RemoteEventID: ev.ID,
			Title:         ev.Title,
			Description:   ev.Description,
			Start:         ev.Start,
			End:           ev.End,
			JoinURL:       ev.JoinURL,
			GuestEmails:   ev.GuestEmails,
		}
	}
	return views, nil
}
