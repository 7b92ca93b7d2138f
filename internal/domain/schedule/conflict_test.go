//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

func enumerateDefaultDay(t *testing.T) []schedule.CandidateSlot {
	t.Helper()
	open, err := availability.ParseClockTime("08:00")
	require.NoError(t, err)
	close, err := availability.ParseClockTime("18:00")
	require.NoError(t, err)
	rule, err := availability.NewRule(time.Monday, true, open, close)
	require.NoError(t, err)
	return schedule.Enumerate(rule, monday, 30*time.Minute, time.UTC, time.UTC)
}

func slotStarts(slots []schedule.CandidateSlot) []time.Time {
	starts := make([]time.Time, len(slots))
	for i, s := range slots {
		starts[i] = s.Start
	}
	return starts
}

func TestFilterConflicts(t *testing.T) {
	t.Run("single busy interval removes exactly its slot", func(t *testing.T) {
		slots := enumerateDefaultDay(t)
		busy := []schedule.BusyInterval{{Start: at(t, 10, 0), End: at(t, 10, 30)}}

		free := schedule.FilterConflicts(slots, busy)

		require.Len(t, free, len(slots)-1)
		starts := slotStarts(free)
		assert.NotContains(t, starts, at(t, 10, 0))
		assert.Contains(t, starts, at(t, 9, 30))
		assert.Contains(t, starts, at(t, 10, 30))
	})

	t.Run("partial overlap removes every touched slot", func(t *testing.T) {
		slots := enumerateDefaultDay(t)
		// 10:15-10:45 clips both the 10:00 and the 10:30 slot.
		busy := []schedule.BusyInterval{{Start: at(t, 10, 15), End: at(t, 10, 45)}}

		free := schedule.FilterConflicts(slots, busy)

		starts := slotStarts(free)
		assert.NotContains(t, starts, at(t, 10, 0))
		assert.NotContains(t, starts, at(t, 10, 30))
		assert.Contains(t, starts, at(t, 11, 0))
	})

	t.Run("abutting busy interval does not conflict", func(t *testing.T) {
		slots := enumerateDefaultDay(t)
		// Busy ends exactly when the 10:00 slot starts and resumes exactly
		// when it ends.
		busy := []schedule.BusyInterval{
			{Start: at(t, 9, 0), End: at(t, 10, 0)},
			{Start: at(t, 10, 30), End: at(t, 11, 0)},
		}

		free := schedule.FilterConflicts(slots, busy)
		assert.Contains(t, slotStarts(free), at(t, 10, 0))
	})

	t.Run("result is independent of busy interval order", func(t *testing.T) {
		slots := enumerateDefaultDay(t)
		busy := []schedule.BusyInterval{
			{Start: at(t, 9, 0), End: at(t, 9, 45)},
			{Start: at(t, 13, 0), End: at(t, 14, 0)},
			{Start: at(t, 9, 30), End: at(t, 10, 0)},
			{Start: at(t, 16, 45), End: at(t, 17, 15)},
		}
		permuted := []schedule.BusyInterval{busy[3], busy[1], busy[0], busy[2]}

		a := schedule.FilterConflicts(slots, busy)
		b := schedule.FilterConflicts(slots, permuted)

		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("free slots differ across busy orderings (-first +second):\n%s", diff)
		}
	})

	t.Run("no busy intervals keeps every slot", func(t *testing.T) {
		slots := enumerateDefaultDay(t)
		free := schedule.FilterConflicts(slots, nil)
		assert.Equal(t, slots, free)
	})

	t.Run("busy covering the whole day removes everything", func(t *testing.T) {
		slots := enumerateDefaultDay(t)
		busy := []schedule.BusyInterval{{Start: at(t, 0, 0), End: at(t, 23, 59)}}
		assert.Empty(t, schedule.FilterConflicts(slots, busy))
	})
}

func TestMergeBusy(t *testing.T) {
	t.Run("overlapping and touching intervals coalesce", func(t *testing.T) {
		busy := []schedule.BusyInterval{
			{Start: at(t, 11, 0), End: at(t, 12, 0)},
			{Start: at(t, 9, 0), End: at(t, 10, 0)},
			{Start: at(t, 9, 30), End: at(t, 10, 30)},
			{Start: at(t, 10, 30), End: at(t, 11, 0)},
		}

		merged := schedule.MergeBusy(busy)

		require.Len(t, merged, 1)
		assert.Equal(t, at(t, 9, 0), merged[0].Start)
		assert.Equal(t, at(t, 12, 0), merged[0].End)
	})

	t.Run("disjoint intervals stay separate and sorted", func(t *testing.T) {
		busy := []schedule.BusyInterval{
			{Start: at(t, 15, 0), End: at(t, 16, 0)},
			{Start: at(t, 9, 0), End: at(t, 10, 0)},
		}

		merged := schedule.MergeBusy(busy)

		require.Len(t, merged, 2)
		assert.Equal(t, at(t, 9, 0), merged[0].Start)
		assert.Equal(t, at(t, 15, 0), merged[1].Start)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, schedule.MergeBusy(nil))
	})
}

func TestBusyIntervalOverlaps(t *testing.T) {
	b := schedule.BusyInterval{Start: at(t, 10, 0), End: at(t, 11, 0)}

	assert.True(t, b.Overlaps(at(t, 10, 30), at(t, 11, 30)))
	assert.True(t, b.Overlaps(at(t, 9, 30), at(t, 10, 30)))
	assert.True(t, b.Overlaps(at(t, 10, 15), at(t, 10, 45)))
	// Half-open: abutting on either side is not an overlap.
	assert.False(t, b.Overlaps(at(t, 9, 0), at(t, 10, 0)))
	assert.False(t, b.Overlaps(at(t, 11, 0), at(t, 12, 0)))
}

func TestParseDate(t *testing.T) {
	d, err := schedule.ParseDate("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, schedule.Date{Year: 2025, Month: time.June, Day: 2}, d)
	assert.Equal(t, "2025-06-02", d.String())

	for _, in := range []string{"", "06/02/2025", "2025-13-01", "2025-06-32", "yesterday"} {
		_, err := schedule.ParseDate(in)
		assert.ErrorIs(t, err, schedule.ErrInvalidDate, in)
	}
}
