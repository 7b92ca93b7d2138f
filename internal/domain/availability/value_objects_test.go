//go:build unit

package availability_test

import (
	"testing"
	"time"

	"slotly/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		cases := []struct {
			in      string
			hour    int
			minute  int
		}{
			{"00:00", 0, 0},
			{"08:00", 8, 0},
			{"15:04", 15, 4},
			{"23:59", 23, 59},
		}
		for _, c := range cases {
			ct, err := availability.ParseClockTime(c.in)
			require.NoError(t, err, c.in)
			assert.Equal(t, c.hour, ct.Hour())
			assert.Equal(t, c.minute, ct.Minute())
			assert.Equal(t, c.in, ct.String())
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		for _, in := range []string{"", "8am", "24:00", "12:60", "12", "12:0:0"} {
			_, err := availability.ParseClockTime(in)
			assert.ErrorIs(t, err, availability.ErrInvalidClockTime, in)
		}
	})
}

func TestNewClockTime(t *testing.T) {
	_, err := availability.NewClockTime(24, 0)
	assert.ErrorIs(t, err, availability.ErrInvalidClockTime)

	_, err = availability.NewClockTime(12, 60)
	assert.ErrorIs(t, err, availability.ErrInvalidClockTime)

	ct, err := availability.NewClockTime(18, 30)
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, ct.MinutesFromMidnight())
}

func TestClockTimeAt(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	ct, err := availability.NewClockTime(9, 30)
	require.NoError(t, err)

	instant := ct.At(2025, time.June, 2, tokyo)
	assert.Equal(t, time.Date(2025, time.June, 2, 9, 30, 0, 0, tokyo), instant)
	// 09:30 JST is 00:30 UTC the same day.
	assert.Equal(t, time.Date(2025, time.June, 2, 0, 30, 0, 0, time.UTC), instant.UTC())
}

func TestClockTimeSub(t *testing.T) {
	open, _ := availability.NewClockTime(8, 0)
	close, _ := availability.NewClockTime(18, 0)
	assert.Equal(t, 10*time.Hour, close.Sub(open))
}
