// ABOUTME: The evolutionary search loop — population, selection, crossover,
// ABOUTME: mutation and stale-generation termination over candidate-slot genes.

package slotsolver

import (
	"math/rand/v2"
	"sort"
	"time"

	"slotsolver/config"
)

// individual is one candidate chromosome and its evaluated score.
type individual struct {
	genes []uint32
	score int64
}

// evolver runs the generation loop: sort by fitness, carry elites
// unmodified, fill the remainder via tournament selection, uniform
// crossover and multi-gene mutation, and swap generation buffers. The
// shape mirrors a classic elitism/tournament/crossover/mutation GA loop;
// maximization replaces minimization and alleles are candidate-slot
// choices rather than permutation elements.
type evolver struct {
	cfg       config.SearchConfig
	evaluator *Evaluator
	numGenes  int
	sentinel  uint32
	rng       *rand.Rand
	logger    *progressLogger
}

func newEvolver(cfg config.SearchConfig, evaluator *Evaluator, numGenes int, seed uint64, hasSeed bool, logger *progressLogger) *evolver {
	var rng *rand.Rand
	if hasSeed {
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &evolver{
		cfg:       cfg,
		evaluator: evaluator,
		numGenes:  numGenes,
		sentinel:  evaluator.Sentinel(),
		rng:       rng,
		logger:    logger,
	}
}

// run executes the evolutionary search until maxGenerations is reached or
// cfg.MaxStaleGenerations pass without a strictly better best score.
// timeLimit, when non-zero, is checked only at generation boundaries —
// never mid-evaluation — preserving the single-threaded, uninterruptible
// nature of one fitness evaluation.
func (ev *evolver) run(maxGenerations int, timeLimit time.Duration) []uint32 {
	startedAt := time.Now()

	current := ev.randomPopulation()
	next := make([]individual, len(current))
	for i := range next {
		next[i] = individual{genes: make([]uint32, ev.numGenes)}
	}

	ev.evaluatePopulation(current)
	ev.sortByScoreDescending(current)

	best := cloneGenes(current[0].genes)
	bestScore := current[0].score
	staleGenerations := 0

	eliteCount := int(float64(len(current)) * ev.cfg.EliteFraction)
	if eliteCount < 0 {
		eliteCount = 0
	}
	if eliteCount > len(current) {
		eliteCount = len(current)
	}

	selectionPoolSize := int(float64(len(current)) * ev.cfg.SelectPressure)
	if selectionPoolSize < 1 {
		selectionPoolSize = 1
	}
	if selectionPoolSize > len(current) {
		selectionPoolSize = len(current)
	}

	for gen := 0; gen < maxGenerations; gen++ {
		if timeLimit > 0 && time.Since(startedAt) >= timeLimit {
			break
		}

		for i := 0; i < eliteCount; i++ {
			copy(next[i].genes, current[i].genes)
		}

		for i := eliteCount; i < len(current); i++ {
			parentA := ev.tournamentSelect(current, selectionPoolSize)
			parentB := ev.tournamentSelect(current, selectionPoolSize)
			ev.crossover(next[i].genes, parentA.genes, parentB.genes)
			ev.mutate(next[i].genes)
		}

		ev.evaluatePopulation(next)
		ev.sortByScoreDescending(next)

		current, next = next, current

		improved := current[0].score > bestScore
		if improved {
			bestScore = current[0].score
			copy(best, current[0].genes)
			staleGenerations = 0
		} else {
			staleGenerations++
		}

		if ev.logger != nil {
			ev.logger.report(gen, bestScore, improved)
		}

		if staleGenerations >= ev.cfg.MaxStaleGenerations {
			break
		}
	}

	return best
}

func (ev *evolver) randomPopulation() []individual {
	population := make([]individual, ev.cfg.PopulationSize)
	for i := range population {
		genes := make([]uint32, ev.numGenes)
		for g := range genes {
			genes[g] = uint32(ev.rng.IntN(int(ev.sentinel) + 1))
		}
		population[i] = individual{genes: genes}
	}
	return population
}

func (ev *evolver) evaluatePopulation(population []individual) {
	for i := range population {
		population[i].score = ev.evaluator.Score(population[i].genes)
	}
}

func (ev *evolver) sortByScoreDescending(population []individual) {
	sort.Slice(population, func(i, j int) bool { return population[i].score > population[j].score })
}

// tournamentSelect picks the best of cfg.TournamentSize random draws from
// the selection pool — the top poolSize individuals of the
// score-descending population.
func (ev *evolver) tournamentSelect(population []individual, poolSize int) individual {
	best := population[ev.rng.IntN(poolSize)]
	for i := 1; i < ev.cfg.TournamentSize; i++ {
		candidate := population[ev.rng.IntN(poolSize)]
		if candidate.score > best.score {
			best = candidate
		}
	}
	return best
}

// crossover fills dst with a uniform mix of parentA and parentB genes,
// each gene independently drawn from parentA with probability
// cfg.CrossoverMix.
func (ev *evolver) crossover(dst, parentA, parentB []uint32) {
	for i := range dst {
		if ev.rng.Float64() < ev.cfg.CrossoverMix {
			dst[i] = parentA[i]
		} else {
			dst[i] = parentB[i]
		}
	}
}

// mutate resamples cfg.MutationGenes random genes with probability
// cfg.MutationProbability.
func (ev *evolver) mutate(genes []uint32) {
	if ev.rng.Float64() >= ev.cfg.MutationProbability {
		return
	}
	for i := 0; i < ev.cfg.MutationGenes; i++ {
		idx := ev.rng.IntN(len(genes))
		genes[idx] = uint32(ev.rng.IntN(int(ev.sentinel) + 1))
	}
}

func cloneGenes(genes []uint32) []uint32 {
	out := make([]uint32, len(genes))
	copy(out, genes)
	return out
}
