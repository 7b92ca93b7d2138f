//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
var monday = schedule.Date{Year: 2025, Month: time.June, Day: 2}

func workdayRule(t *testing.T, weekday time.Weekday, open, close string) availability.Rule {
	t.Helper()
	openCT, err := availability.ParseClockTime(open)
	require.NoError(t, err)
	closeCT, err := availability.ParseClockTime(close)
	require.NoError(t, err)
	rule, err := availability.NewRule(weekday, true, openCT, closeCT)
	require.NoError(t, err)
	return rule
}

func TestEnumerate(t *testing.T) {
	utc := time.UTC

	t.Run("full default day at 30 minutes", func(t *testing.T) {
		rule := workdayRule(t, time.Monday, "08:00", "18:00")
		slots := schedule.Enumerate(rule, monday, 30*time.Minute, utc, utc)

		require.Len(t, slots, 20)
		assert.Equal(t, time.Date(2025, time.June, 2, 8, 0, 0, 0, utc), slots[0].Start)
		assert.Equal(t, time.Date(2025, time.June, 2, 17, 30, 0, 0, utc), slots[len(slots)-1].Start)

		close := time.Date(2025, time.June, 2, 18, 0, 0, 0, utc)
		for i, s := range slots {
			assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
			assert.False(t, s.End.After(close), "slot %d spills past close", i)
			if i > 0 {
				assert.Equal(t, 30*time.Minute, s.Start.Sub(slots[i-1].Start), "uneven spacing at %d", i)
			}
		}
	})

	t.Run("trailing remainder shorter than duration is dropped", func(t *testing.T) {
		rule := workdayRule(t, time.Monday, "08:00", "09:15")
		slots := schedule.Enumerate(rule, monday, 30*time.Minute, utc, utc)

		// 08:00 and 08:30 fit; 09:00+30m would end at 09:30 > 09:15.
		require.Len(t, slots, 2)
		assert.Equal(t, time.Date(2025, time.June, 2, 8, 30, 0, 0, utc), slots[1].Start)
	})

	t.Run("duration longer than window yields nothing", func(t *testing.T) {
		rule := workdayRule(t, time.Monday, "08:00", "08:45")
		slots := schedule.Enumerate(rule, monday, time.Hour, utc, utc)
		assert.Empty(t, slots)
	})

	t.Run("inactive day yields nothing", func(t *testing.T) {
		open, _ := availability.ParseClockTime("08:00")
		close, _ := availability.ParseClockTime("18:00")
		rule, err := availability.NewRule(time.Monday, false, open, close)
		require.NoError(t, err)

		assert.Empty(t, schedule.Enumerate(rule, monday, 30*time.Minute, utc, utc))
	})

	t.Run("rule for a different weekday yields nothing", func(t *testing.T) {
		rule := workdayRule(t, time.Tuesday, "08:00", "18:00")
		assert.Empty(t, schedule.Enumerate(rule, monday, 30*time.Minute, utc, utc))
	})

	t.Run("non-positive duration yields nothing", func(t *testing.T) {
		rule := workdayRule(t, time.Monday, "08:00", "18:00")
		assert.Empty(t, schedule.Enumerate(rule, monday, 0, utc, utc))
	})

	t.Run("slots are anchored in the host zone and shown in the guest zone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		newYork, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		rule := workdayRule(t, time.Monday, "09:00", "10:00")
		slots := schedule.Enumerate(rule, monday, 30*time.Minute, tokyo, newYork)

		require.Len(t, slots, 2)
		// 09:00 Monday JST == 20:00 Sunday EDT; the instant is unchanged.
		hostStart := time.Date(2025, time.June, 2, 9, 0, 0, 0, tokyo)
		assert.True(t, slots[0].Start.Equal(hostStart))
		assert.Equal(t, 20, slots[0].Start.Hour())
		assert.Equal(t, time.Sunday, slots[0].Start.Weekday())

		// EDT offset in June.
		assert.Equal(t, -4*60*60, slots[0].OffsetSeconds)
	})

	t.Run("weekday is the host's, not the guest's", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)

		// The host lives this date as a Monday even though parts of it are
		// still Sunday elsewhere.
		assert.Equal(t, time.Monday, monday.Weekday(tokyo))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		rule := workdayRule(t, time.Monday, "08:00", "18:00")
		first := schedule.Enumerate(rule, monday, 45*time.Minute, utc, utc)
		second := schedule.Enumerate(rule, monday, 45*time.Minute, utc, utc)
		assert.Equal(t, first, second)
	})
}
