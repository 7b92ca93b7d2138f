package availability

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidClockTime = errors.New("invalid clock time")

// ClockTime is a wall-clock time of day in the host's zone, minutes since
// midnight. It carries no date and no zone; binding to an absolute instant
// happens in the slot enumerator.
type ClockTime struct {
	minutes int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: hour*60 + minute}, nil
}

// ParseClockTime accepts "HH:MM" in 24-hour form, the format the rule store
// persists.
func ParseClockTime(s string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{minutes: parsed.Hour()*60 + parsed.Minute()}, nil
}

func (t ClockTime) Hour() int {
	return t.minutes / 60
}

func (t ClockTime) Minute() int {
	return t.minutes % 60
}

func (t ClockTime) MinutesFromMidnight() int {
	return t.minutes
}

func (t ClockTime) Before(other ClockTime) bool {
	return t.minutes < other.minutes
}

// Sub returns the window length between two clock times.
func (t ClockTime) Sub(other ClockTime) time.Duration {
	return time.Duration(t.minutes-other.minutes) * time.Minute
}

// At anchors the clock time on a calendar date in the given zone, producing
// an absolute instant.
func (t ClockTime) At(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc)
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
