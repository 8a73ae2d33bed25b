// ABOUTME: Builds dense lookup maps from a problem's sparse heatmap and
// ABOUTME: Markov affinity entries, for O(1) lookup during scoring.

package slotsolver

// heatmapKey and markovKey are the dense map keys BuildLookupMaps folds
// the sparse wire entries into.
type heatmapKey struct {
	activityID ActivityID
	slot       TimeSlot
}

type markovKey struct {
	from, to ActivityID
}

// BuildLookupMaps converts a Problem's sparse Heatmap and Markov entries
// into maps keyed for O(1) lookup during scoring. It is a pure function
// with no side effects on problem, called once per Solve.
func BuildLookupMaps(problem Problem) (heatmap map[heatmapKey]float32, markov map[markovKey]float32) {
	heatmap = make(map[heatmapKey]float32, len(problem.Heatmap))
	for _, entry := range problem.Heatmap {
		heatmap[heatmapKey{activityID: entry.ActivityID, slot: entry.Slot}] = entry.Weight
	}

	markov = make(map[markovKey]float32, len(problem.Markov))
	for _, entry := range problem.Markov {
		markov[markovKey{from: entry.From, to: entry.To}] = entry.Weight
	}

	return heatmap, markov
}
