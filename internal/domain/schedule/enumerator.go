package schedule

import (
	"time"

	"slotly/internal/domain/availability"
)

// Enumerate expands one weekday rule into candidate slots for a calendar
// date. Pure function of its inputs: calling it again with the same arguments
// yields the same sequence.
//
// Slot granularity equals the event duration; there is no finer stepping.
// Each start is anchored on the date in the host's zone, then re-expressed in
// the guest's zone for presentation. The rule must belong to the date's
// weekday as computed in the host's zone, otherwise nothing is produced.
func Enumerate(
	rule availability.Rule,
	date Date,
	duration time.Duration,
	hostLoc, guestLoc *time.Location,
) []CandidateSlot {
	if rule.Weekday() != date.Weekday(hostLoc) {
		return nil
	}
	if !rule.IsActive() || duration <= 0 {
		return nil
	}

	open := rule.Open().At(date.Year, date.Month, date.Day, hostLoc)
	close := rule.Close().At(date.Year, date.Month, date.Day, hostLoc)

	var slots []CandidateSlot
	for start := open; !start.Add(duration).After(close); start = start.Add(duration) {
		guestStart := start.In(guestLoc)
		_, offset := guestStart.Zone()
		slots = append(slots, CandidateSlot{
			Start:         guestStart,
			End:           start.Add(duration).In(guestLoc),
			OffsetSeconds: offset,
		})
	}
	return slots
}
