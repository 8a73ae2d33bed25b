// ABOUTME: Public entry point for the schedule solver.
// ABOUTME: Wires candidate slots, the evaluator and the evolutionary search together.

package slotsolver

import (
	"errors"
	"fmt"
	"io"
	"time"

	"slotsolver/config"
)

// Construction errors. These are returned directly from Solve and are
// never logged by the library — spec-level logging (via WithDebugLog) is
// reserved for generation-progress diagnostics, not construction
// failures.
var (
	// ErrTooManyFloatingActivities is returned when the number of
	// floating activities exceeds what the allele range can represent
	// (the sentinel value itself must also fit).
	ErrTooManyFloatingActivities = errors.New("slotsolver: too many floating activities for allele range")
	// ErrInvalidConfig is returned when the supplied SearchConfig fails
	// validation.
	ErrInvalidConfig = errors.New("slotsolver: invalid search config")
)

// maxAlleleValue is the largest allele a gene can hold. Floating choices
// occupy [0, floatingCount), and the sentinel occupies floatingCount, so
// floatingCount must be <= maxAlleleValue.
const maxAlleleValue = 1<<32 - 1

// Option configures a Solve call.
type Option func(*solveOptions)

type solveOptions struct {
	cfg          config.SearchConfig
	hasCfg       bool
	seed         uint64
	hasSeed      bool
	debugLogSink io.Writer
}

// WithConfig overrides the default search hyperparameters.
func WithConfig(cfg config.SearchConfig) Option {
	return func(o *solveOptions) {
		o.cfg = cfg
		o.hasCfg = true
	}
}

// WithSeed makes the search deterministic: the same Problem, Config, and
// seed always produce the same result, as long as the time limit does not
// end the run early. It takes precedence over a nonzero Config Seed.
func WithSeed(seed uint64) Option {
	return func(o *solveOptions) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithDebugLog turns on throttled per-generation progress logging to w.
// Construction errors are never routed through this logger.
func WithDebugLog(w io.Writer) Option {
	return func(o *solveOptions) {
		o.debugLogSink = w
	}
}

// Solve chooses start slots for every floating activity in problem,
// maximizing the weighted composite of soft preferences subject to the
// problem's hard constraints. It runs for at most maxGenerations
// generations (or until config.SearchConfig.MaxStaleGenerations pass
// without improvement), checking timeLimit only at generation boundaries
// — never mid-evaluation.
//
// Degenerate inputs (no floating activities, no legal candidate slots, or
// a zero-length horizon) return (nil, nil): empty success, never an
// error. A single call to Solve is strictly synchronous; it spawns no
// goroutines.
func Solve(problem Problem, maxGenerations int, timeLimit time.Duration, opts ...Option) ([]Assignment, error) {
	options := solveOptions{cfg: config.DefaultSearchConfig()}
	for _, opt := range opts {
		opt(&options)
	}
	if !options.hasSeed && options.cfg.Seed != 0 {
		options.seed = options.cfg.Seed
		options.hasSeed = true
	}

	if options.hasCfg {
		if err := options.cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	if len(problem.FloatingIndices) == 0 || problem.TotalSlots == 0 {
		return nil, nil
	}

	if len(problem.FloatingIndices) > maxAlleleValue {
		return nil, ErrTooManyFloatingActivities
	}

	candidateSlots := CandidateStartSlots(problem)
	if len(candidateSlots) == 0 {
		return nil, nil
	}

	evaluator := NewEvaluator(problem, candidateSlots)

	var logger *progressLogger
	if options.debugLogSink != nil {
		logger = newProgressLogger(options.debugLogSink)
	}

	ev := newEvolver(options.cfg, evaluator, len(candidateSlots), options.seed, options.hasSeed, logger)
	best := ev.run(maxGenerations, timeLimit)

	return ExtractResult(problem, candidateSlots, evaluator.Sentinel(), best), nil
}
