//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/usecase/commands"
	"slotly/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullWeekChanges() []commands.RuleChange {
	changes := make([]commands.RuleChange, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		changes = append(changes, commands.RuleChange{
			Weekday:  d,
			IsActive: d != time.Saturday && d != time.Sunday,
			Open:     "09:00",
			Close:    "17:00",
		})
	}
	return changes
}

func TestUpdateRules(t *testing.T) {
	hostID := uuid.New()

	t.Run("stores a valid week", func(t *testing.T) {
		repo := fake.NewAvailabilityRepository(availability.DefaultRuleSet())
		cmd := commands.NewAvailabilityCommands(repo)

		require.NoError(t, cmd.UpdateRules(context.Background(), hostID, fullWeekChanges()))

		set, err := repo.RulesByHost(context.Background(), hostID)
		require.NoError(t, err)
		assert.Equal(t, "09:00", set.RuleFor(time.Monday).Open().String())
		assert.False(t, set.RuleFor(time.Saturday).IsActive())
	})

	t.Run("rejects an incomplete week", func(t *testing.T) {
		cmd := commands.NewAvailabilityCommands(fake.NewAvailabilityRepository(availability.DefaultRuleSet()))

		err := cmd.UpdateRules(context.Background(), hostID, fullWeekChanges()[:6])
		assert.ErrorIs(t, err, commands.ErrInvalidAvailability)
	})

	t.Run("rejects duplicate weekdays", func(t *testing.T) {
		cmd := commands.NewAvailabilityCommands(fake.NewAvailabilityRepository(availability.DefaultRuleSet()))

		changes := fullWeekChanges()
		changes[6].Weekday = time.Sunday
		err := cmd.UpdateRules(context.Background(), hostID, changes)
		assert.ErrorIs(t, err, commands.ErrInvalidAvailability)
	})

	t.Run("rejects an inverted window on an active day", func(t *testing.T) {
		cmd := commands.NewAvailabilityCommands(fake.NewAvailabilityRepository(availability.DefaultRuleSet()))

		changes := fullWeekChanges()
		changes[1].Open, changes[1].Close = "17:00", "09:00"
		err := cmd.UpdateRules(context.Background(), hostID, changes)
		assert.ErrorIs(t, err, commands.ErrInvalidAvailability)
	})

	t.Run("rejects unparseable times", func(t *testing.T) {
		cmd := commands.NewAvailabilityCommands(fake.NewAvailabilityRepository(availability.DefaultRuleSet()))

		changes := fullWeekChanges()
		changes[2].Open = "9am"
		err := cmd.UpdateRules(context.Background(), hostID, changes)
		assert.ErrorIs(t, err, commands.ErrInvalidAvailability)
	})

	t.Run("validation failure leaves the stored week untouched", func(t *testing.T) {
		repo := fake.NewAvailabilityRepository(availability.DefaultRuleSet())
		cmd := commands.NewAvailabilityCommands(repo)

		changes := fullWeekChanges()
		changes[0].Open = "bogus"
		require.Error(t, cmd.UpdateRules(context.Background(), hostID, changes))

		set, err := repo.RulesByHost(context.Background(), hostID)
		require.NoError(t, err)
		assert.Equal(t, "08:00", set.RuleFor(time.Monday).Open().String())
	})
}
