package schedule

import (
	"errors"
	"sort"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// BusyInterval is an occupied range on the host's external calendar,
// half-open [Start, End) in absolute time. Busy intervals are fetched fresh
// per request; they represent externally owned truth and are never cached.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval intersects [start, end). Abutting
// ranges do not overlap, so back-to-back bookings are allowed.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// CandidateSlot is a computed, not-yet-reserved bookable window. It lives for
// the duration of one availability query. Start and End are expressed in the
// guest's zone; OffsetSeconds records the guest-zone UTC offset in effect at
// Start.
type CandidateSlot struct {
	Start         time.Time
	End           time.Time
	OffsetSeconds int
}

// Date is a civil calendar date. Keeping it free of zone and time-of-day
// forces the conversion points (host zone for anchoring, guest zone for
// display) to be explicit.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate accepts "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Weekday is the weekday of this calendar day as the host lives it, anchored
// in the host's zone.
func (d Date) Weekday(hostLoc *time.Location) time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, hostLoc).Weekday()
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// MergeBusy sorts intervals by start and coalesces overlapping or touching
// ones. The result is canonical: any permutation of the same input set merges
// to the same sequence, which is what makes conflict filtering
// order-independent.
func MergeBusy(busy []BusyInterval) []BusyInterval {
	if len(busy) == 0 {
		return nil
	}

	sorted := make([]BusyInterval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := sorted[:1]
	for _, b := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !b.Start.After(last.End) {
			if b.End.After(last.End) {
				last.End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}
