package schedule

// FilterConflicts drops candidate slots that overlap a busy interval. Busy
// input may arrive in any order; it is merged to canonical form first. Slots
// are assumed ascending by start, which Enumerate guarantees.
//
// Overlap is the half-open test busy.Start < slot.End && busy.End >
// slot.Start: a slot that exactly abuts a busy interval is kept. Runs in
// O(slots + busy) after the merge sort.
func FilterConflicts(slots []CandidateSlot, busy []BusyInterval) []CandidateSlot {
	if len(slots) == 0 {
		return nil
	}
	merged := MergeBusy(busy)
	if len(merged) == 0 {
		out := make([]CandidateSlot, len(slots))
		copy(out, slots)
		return out
	}

	var free []CandidateSlot
	i := 0
	for _, slot := range slots {
		for i < len(merged) && !merged[i].End.After(slot.Start) {
			i++
		}
		if i < len(merged) && merged[i].Overlaps(slot.Start, slot.End) {
			continue
		}
		free = append(free, slot)
	}
	return free
}
