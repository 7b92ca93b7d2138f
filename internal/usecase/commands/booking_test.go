//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/domain/eventtype"
	"slotly/internal/infra"
	"slotly/internal/pkg/hostlock"
	"slotly/internal/usecase"
	"slotly/internal/usecase/commands"
	"slotly/tests/common/builder"
	"slotly/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	host       *usecase.HostRecord
	eventType  *eventtype.EventType
	hosts      *fake.HostRepository
	rules      *fake.AvailabilityRepository
	eventTypes *fake.EventTypeRepository
	identities *fake.IdentityRepository
	calendar   *fake.Calendar
	bookings   commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	host := &usecase.HostRecord{
		ID:       uuid.New(),
		UserName: "casey",
		Name:     "Casey Host",
		TimeZone: "America/New_York",
	}
	et, err := eventtype.NewEventType(host.ID, "Intro call", "A quick intro meeting", "intro-call", 30, "google-meet")
	require.NoError(t, err)

	f := &bookingFixture{
		host:       host,
		eventType:  et,
		hosts:      &fake.HostRepository{Host: host},
		rules:      fake.NewAvailabilityRepository(availability.DefaultRuleSet()),
		eventTypes: fake.NewEventTypeRepository(et),
		identities: &fake.IdentityRepository{Identity: &usecase.ProviderIdentity{HostID: host.ID, CalendarID: "primary"}},
		calendar:   fake.NewCalendar(),
	}
	f.bookings = commands.NewBookingCommands(
		f.hosts, f.rules, f.eventTypes, f.identities, f.calendar, hostlock.NewSlotLocker(),
	)
	return f
}

func (f *bookingFixture) params(mutate ...func(*builder.BookingBuilder)) commands.BookMeetingParams {
	b := builder.NewBookingBuilder()
	b.EventTypeID = f.eventType.ID()
	for _, m := range mutate {
		m(b)
	}
	return b.BuildParams()
}

func TestBook(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	t.Run("books a free slot", func(t *testing.T) {
		f := newBookingFixture(t)

		result, err := f.bookings.Book(context.Background(), f.params())
		require.NoError(t, err)

		assert.NotEmpty(t, result.RemoteEventID)
		assert.NotEmpty(t, result.JoinURL)
		assert.Equal(t, "Intro call", result.Title)
		assert.True(t, result.Start.Equal(time.Date(2025, time.June, 2, 9, 0, 0, 0, newYork)))
		assert.Equal(t, 30*time.Minute, result.End.Sub(result.Start))
		assert.Equal(t, 1, f.calendar.CreateCalls())
	})

	t.Run("guest zone differs from host zone", func(t *testing.T) {
		f := newBookingFixture(t)

		// 22:00 Monday in Tokyo is 09:00 Monday in New York.
		result, err := f.bookings.Book(context.Background(), f.params(func(b *builder.BookingBuilder) {
			b.Timezone = "Asia/Tokyo"
			b.StartTime = "22:00"
		}))
		require.NoError(t, err)
		assert.True(t, result.Start.Equal(time.Date(2025, time.June, 2, 9, 0, 0, 0, newYork)))
	})

	t.Run("busy slot is rejected without touching the provider write path", func(t *testing.T) {
		f := newBookingFixture(t)
		f.calendar.AddBusy(
			time.Date(2025, time.June, 2, 9, 0, 0, 0, newYork),
			time.Date(2025, time.June, 2, 9, 30, 0, 0, newYork),
		)

		_, err := f.bookings.Book(context.Background(), f.params())
		assert.ErrorIs(t, err, commands.ErrSlotNoLongerAvailable)
		assert.Equal(t, 0, f.calendar.CreateCalls())
	})

	t.Run("start outside the availability window", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.bookings.Book(context.Background(), f.params(func(b *builder.BookingBuilder) {
			b.StartTime = "07:00"
		}))
		assert.ErrorIs(t, err, commands.ErrSlotNoLongerAvailable)
	})

	t.Run("start not aligned to the slot grid", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.bookings.Book(context.Background(), f.params(func(b *builder.BookingBuilder) {
			b.StartTime = "09:10"
		}))
		assert.ErrorIs(t, err, commands.ErrSlotNoLongerAvailable)
	})

	t.Run("busy fetch failure never reads as free", func(t *testing.T) {
		f := newBookingFixture(t)
		f.calendar.FailBusy = infra.WrapProviderErr(infra.ProviderUnavailable, "calendar down", nil)

		_, err := f.bookings.Book(context.Background(), f.params())
		assert.ErrorIs(t, err, commands.ErrProviderUnavailable)
		assert.Equal(t, 0, f.calendar.CreateCalls())
	})

	t.Run("create timeout surfaces as retryable", func(t *testing.T) {
		f := newBookingFixture(t)
		f.calendar.FailCreate = infra.WrapProviderErr(infra.ProviderTimeout, "deadline exceeded", nil)

		_, err := f.bookings.Book(context.Background(), f.params())
		assert.ErrorIs(t, err, commands.ErrProviderTimeout)
	})

	t.Run("provider rejection surfaces as reservation failure", func(t *testing.T) {
		f := newBookingFixture(t)
		f.calendar.FailCreate = infra.WrapProviderErr(infra.ProviderRejected, "invalid attendee", nil)

		_, err := f.bookings.Book(context.Background(), f.params())
		assert.ErrorIs(t, err, commands.ErrReservationFailed)
	})

	t.Run("unknown event type", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.bookings.Book(context.Background(), f.params(func(b *builder.BookingBuilder) {
			b.EventTypeID = uuid.New()
		}))
		assert.ErrorIs(t, err, commands.ErrEventTypeNotFound)
	})

	t.Run("inactive event type", func(t *testing.T) {
		f := newBookingFixture(t)
		f.eventType.SetActive(false)

		_, err := f.bookings.Book(context.Background(), f.params())
		assert.ErrorIs(t, err, commands.ErrEventTypeInactive)
	})

	t.Run("host without linked calendar", func(t *testing.T) {
		f := newBookingFixture(t)
		f.identities.Identity = nil

		_, err := f.bookings.Book(context.Background(), f.params())
		assert.ErrorIs(t, err, commands.ErrProviderNotLinked)
	})

	t.Run("request validation", func(t *testing.T) {
		f := newBookingFixture(t)

		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
		}{
			{"bad timezone", func(b *builder.BookingBuilder) { b.Timezone = "Mars/Olympus" }},
			{"bad start time", func(b *builder.BookingBuilder) { b.StartTime = "9am" }},
			{"empty guest name", func(b *builder.BookingBuilder) { b.GuestName = "  " }},
			{"empty guest email", func(b *builder.BookingBuilder) { b.GuestEmail = "" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.bookings.Book(context.Background(), f.params(tc.mutate))
				assert.ErrorIs(t, err, commands.ErrInvalidBookingRequest)
			})
		}
	})

	t.Run("two racing bookings for the same slot create one event", func(t *testing.T) {
		f := newBookingFixture(t)
		params := f.params()

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.bookings.Book(context.Background(), params)
			}(i)
		}
		wg.Wait()

		var successes, conflicts int
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, commands.ErrSlotNoLongerAvailable):
				conflicts++
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)
		assert.Equal(t, 1, f.calendar.CreateCalls())
	})
}
