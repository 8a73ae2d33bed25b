// ABOUTME: Candidate start-slot preprocessing for the schedule solver.
// ABOUTME: Computes every legal gene position before the search begins.

package slotsolver

// CandidateStartSlots computes the ordered set of time slots at which a
// floating activity could legally begin: every slot not covered by a
// forbidden zone and not already occupied by a fixed activity. Intervals
// are half-open ([start, end)) and clamped to problem.TotalSlots; an
// interval with start >= end contributes nothing. The result is sorted
// ascending with no duplicates and becomes the gene count of the search
// space built by the evolutionary search.
func CandidateStartSlots(problem Problem) []TimeSlot {
	total := int(problem.TotalSlots)
	if total == 0 {
		return nil
	}

	forbidden := make([]bool, total)
	for _, c := range problem.GlobalConstraints {
		if c.Kind != ForbiddenZone {
			continue
		}
		markRange(forbidden, int(c.Start), int(c.End), total)
	}

	occupied := make([]bool, total)
	for _, actIdx := range problem.FixedIndices {
		if actIdx < 0 || actIdx >= len(problem.Activities) {
			continue
		}
		activity := problem.Activities[actIdx]
		if activity.AssignedStart == nil {
			continue
		}
		start := int(*activity.AssignedStart)
		if start >= total {
			continue
		}
		end := start + int(activity.DurationSlots)
		markRange(occupied, start, end, total)
	}

	candidates := make([]TimeSlot, 0, total)
	for slot := 0; slot < total; slot++ {
		if forbidden[slot] || occupied[slot] {
			continue
		}
		candidates = append(candidates, TimeSlot(slot))
	}

	return candidates
}

// markRange sets mask[start:end] to true, clamping to [0, total) and
// skipping degenerate ranges where start >= end.
func markRange(mask []bool, start, end, total int) {
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	if start >= end {
		return
	}
	for i := start; i < end; i++ {
		mask[i] = true
	}
}
