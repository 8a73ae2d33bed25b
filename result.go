// ABOUTME: Decodes an evolved chromosome into placements.
// ABOUTME: Skips sentinel alleles and sorts the result ascending by start slot.

package slotsolver

import "sort"

// ExtractResult decodes the best chromosome into placements: for every
// gene whose allele is not the sentinel, it emits the chosen floating
// activity's ID at the gene's candidate start slot. Fixed activities are
// never emitted — callers already know their assigned starts. The result
// is sorted ascending by start slot.
func ExtractResult(problem Problem, candidateSlots []TimeSlot, sentinel uint32, best []uint32) []Assignment {
	var assignments []Assignment

	floatingCount := len(problem.FloatingIndices)
	for geneIdx, allele := range best {
		if geneIdx >= len(candidateSlots) {
			break
		}
		if allele == sentinel {
			continue
		}
		floatingChoice := int(allele)
		if floatingChoice >= floatingCount {
			continue
		}

		actIdx := problem.FloatingIndices[floatingChoice]
		assignments = append(assignments, Assignment{
			ActivityID: problem.Activities[actIdx].ID,
			Start:      candidateSlots[geneIdx],
		})
	}

	sort.Slice(assignments, func(i, j int) bool { return assignments[i].Start < assignments[j].Start })

	return assignments
}
