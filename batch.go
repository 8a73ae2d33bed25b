// ABOUTME: Runs independent Solve attempts concurrently and picks the best.
// ABOUTME: Each attempt stays single-threaded; parallelism lives between attempts.

package slotsolver

import (
	"time"

	"slotsolver/internal/workerpool"
)

// BatchResult is one attempt's outcome from SolveBatch.
type BatchResult struct {
	Assignments []Assignment
	Score       int64
	Err         error
}

// BatchOptions configures SolveBatch.
type BatchOptions struct {
	// Attempts is the number of independent Solve calls to run. With
	// HasSeed set, each gets its own derived seed so attempts explore
	// different regions of the search space.
	Attempts int
	// BaseSeed seeds the per-attempt seed derivation when HasSeed is true
	// (zero is a valid base seed). When HasSeed is false no per-attempt
	// seed is passed, so each attempt runs unseeded unless Config carries
	// a nonzero Seed.
	BaseSeed uint64
	HasSeed  bool
	Config   Option
	DebugLog Option
}

// SolveBatch runs opts.Attempts independent Solve calls concurrently and
// returns the highest-scoring result alongside every attempt's outcome.
// This is the Go-idiomatic answer to "caller-level retries": instead of
// every caller hand-rolling a retry loop to chase a frequency minimum
// that a single attempt might miss, SolveBatch runs the attempts in
// parallel via a worker pool. Each individual Solve call remains
// synchronous and single-threaded — parallelism lives strictly between
// whole attempts, never inside one.
func SolveBatch(problem Problem, maxGenerations int, timeLimit time.Duration, opts BatchOptions) (best BatchResult, all []BatchResult) {
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}

	all = make([]BatchResult, attempts)

	pool := workerpool.New(attempts)
	defer pool.Close()

	for i := 0; i < attempts; i++ {
		i := i
		pool.Submit(func() {
			solveOpts := []Option{}
			if opts.Config != nil {
				solveOpts = append(solveOpts, opts.Config)
			}
			if opts.DebugLog != nil {
				solveOpts = append(solveOpts, opts.DebugLog)
			}
			if opts.HasSeed {
				solveOpts = append(solveOpts, WithSeed(deriveSeed(opts.BaseSeed, i)))
			}

			assignments, err := Solve(problem, maxGenerations, timeLimit, solveOpts...)
			all[i] = BatchResult{Assignments: assignments, Err: err}
			if err == nil {
				all[i].Score = scoreAssignments(problem, assignments)
			}
		})
	}
	pool.Wait()

	best = all[0]
	for _, result := range all[1:] {
		if result.Err == nil && (best.Err != nil || result.Score > best.Score) {
			best = result
		}
	}

	return best, all
}

// deriveSeed spreads a base seed across attempts using a fixed-increment
// splitmix-style constant, so attempts sharing a base seed still explore
// distinct regions of the search space.
func deriveSeed(base uint64, attempt int) uint64 {
	return base + uint64(attempt)*0x9e3779b97f4a7c15
}

// scoreAssignments re-derives a batch attempt's score from its decoded
// assignments by re-running the evaluator over the implied chromosome.
// This keeps BatchResult.Score meaningful without Solve needing to leak
// its internal chromosome representation through the public API.
func scoreAssignments(problem Problem, assignments []Assignment) int64 {
	candidateSlots := CandidateStartSlots(problem)
	if len(candidateSlots) == 0 {
		return 0
	}

	evaluator := NewEvaluator(problem, candidateSlots)
	sentinel := evaluator.Sentinel()

	slotIndex := make(map[TimeSlot]int, len(candidateSlots))
	for i, slot := range candidateSlots {
		slotIndex[slot] = i
	}

	floatingIndexByID := make(map[ActivityID]int, len(problem.FloatingIndices))
	for choice, actIdx := range problem.FloatingIndices {
		floatingIndexByID[problem.Activities[actIdx].ID] = choice
	}

	genes := make([]uint32, len(candidateSlots))
	for i := range genes {
		genes[i] = sentinel
	}

	for _, a := range assignments {
		geneIdx, ok := slotIndex[a.Start]
		if !ok {
			continue
		}
		choice, ok := floatingIndexByID[a.ActivityID]
		if !ok {
			continue
		}
		genes[geneIdx] = uint32(choice)
	}

	return evaluator.Score(genes)
}
