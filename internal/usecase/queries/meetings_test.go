//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotly/internal/infra"
	"slotly/internal/pkg/clock"
	"slotly/internal/usecase"
	"slotly/internal/usecase/queries"
	"slotly/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUpcoming(t *testing.T) {
	hostID := uuid.New()
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)

	newFixture := func() (*fake.Calendar, queries.MeetingQueries) {
		cal := fake.NewCalendar()
		q := queries.NewMeetingQueries(
			&fake.IdentityRepository{Identity: &usecase.ProviderIdentity{HostID: hostID}},
			cal,
			clock.NewMockClock(now),
		)
		return cal, q
	}

	t.Run("returns events inside the upcoming window", func(t *testing.T) {
		cal, q := newFixture()
		cal.AddEvent(usecase.RemoteEvent{
			ID:    "soon",
			Title: "Intro call",
			Start: now.Add(24 * time.Hour),
			End:   now.Add(24*time.Hour + 30*time.Minute),
		})
		cal.AddEvent(usecase.RemoteEvent{
			ID:    "far",
			Title: "Someday",
			Start: now.Add(45 * 24 * time.Hour),
			End:   now.Add(45*24*time.Hour + 30*time.Minute),
		})
		cal.AddEvent(usecase.RemoteEvent{
			ID:    "past",
			Title: "Last week",
			Start: now.Add(-7 * 24 * time.Hour),
			End:   now.Add(-7*24*time.Hour + 30*time.Minute),
		})

		views, err := q.ListUpcoming(context.Background(), hostID)
		require.NoError(t, err)

		require.Len(t, views, 1)
		assert.Equal(t, "soon", views[0].RemoteEventID)
	})

	t.Run("no linked calendar", func(t *testing.T) {
		cal := fake.NewCalendar()
		q := queries.NewMeetingQueries(&fake.IdentityRepository{}, cal, clock.NewMockClock(now))

		_, err := q.ListUpcoming(context.Background(), hostID)
		assert.ErrorIs(t, err, queries.ErrProviderNotLinked)
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		cal, q := newFixture()
		cal.FailList = infra.WrapProviderErr(infra.ProviderUnavailable, "calendar down", nil)

		_, err := q.ListUpcoming(context.Background(), hostID)
		assert.ErrorIs(t, err, queries.ErrProviderUnavailable)
	})
}
