// ABOUTME: Configuration management for evolutionary search parameters.
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults.

// Package config manages the tunable hyperparameters of the evolutionary
// search: population size, selection pressure, elitism, crossover and
// mutation rates, and termination thresholds. The fitness evaluator's own
// penalty/reward weights are not part of this config — they are fixed
// constants chosen to preserve the hard/soft scaling separation the
// solver depends on, and are not meant to be tuned per deployment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SearchConfig holds all tunable parameters for the evolutionary search.
type SearchConfig struct {
	PopulationSize      int     `toml:"population_size"`
	MaxStaleGenerations int     `toml:"max_stale_generations"`
	SelectPressure      float64 `toml:"select_pressure"`
	EliteFraction       float64 `toml:"elite_fraction"`
	TournamentSize      int     `toml:"tournament_size"`
	CrossoverMix        float64 `toml:"crossover_mix"`
	MutationGenes       int     `toml:"mutation_genes"`
	MutationProbability float64 `toml:"mutation_probability"`

	// Seed seeds the PRNG for a reproducible run. Zero means "let Solve
	// pick an unseeded source"; a caller wanting the literal seed 0 must
	// request it explicitly through solve.go's WithSeed option.
	Seed uint64 `toml:"seed"`
}

// GetConfigPath returns the default config file path: current directory
// first, falling back to ~/.config/slotsolver/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./slotsolver.toml"); err == nil {
		return "./slotsolver.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./slotsolver.toml"
	}

	return filepath.Join(home, ".config", "slotsolver", "config.toml")
}

// LoadConfig loads a SearchConfig from a TOML file. A missing file is not
// an error: it yields DefaultSearchConfig().
func LoadConfig(path string) (SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSearchConfig(), nil
		}
		return DefaultSearchConfig(), fmt.Errorf("config: failed to read config file: %w", err)
	}

	cfg := DefaultSearchConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultSearchConfig(), fmt.Errorf("config: failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves a SearchConfig to a TOML file, creating parent
// directories as needed.
func SaveConfig(path string, cfg SearchConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("config: failed to write config: %w", err)
	}

	return nil
}

// DefaultSearchConfig returns the defaults used when no config file is
// present: population 160, tournament selection of size 4 with select
// pressure 0.8, elitism at 10%, uniform crossover with an even parent
// mix, multi-gene mutation touching 2 genes with probability 0.28, and
// termination after 60 stale generations.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		PopulationSize:      160,
		MaxStaleGenerations: 60,
		SelectPressure:      0.8,
		EliteFraction:       0.1,
		TournamentSize:      4,
		CrossoverMix:        0.5,
		MutationGenes:       2,
		MutationProbability: 0.28,
		Seed:                0,
	}
}

// Validate reports whether cfg describes a usable search.
func (cfg SearchConfig) Validate() error {
	switch {
	case cfg.PopulationSize < 2:
		return fmt.Errorf("config: population_size must be >= 2, got %d", cfg.PopulationSize)
	case cfg.TournamentSize < 1:
		return fmt.Errorf("config: tournament_size must be >= 1, got %d", cfg.TournamentSize)
	case cfg.SelectPressure <= 0 || cfg.SelectPressure > 1:
		return fmt.Errorf("config: select_pressure must be in (0, 1], got %g", cfg.SelectPressure)
	case cfg.EliteFraction < 0 || cfg.EliteFraction >= 1:
		return fmt.Errorf("config: elite_fraction must be in [0, 1), got %g", cfg.EliteFraction)
	case cfg.MutationProbability < 0 || cfg.MutationProbability > 1:
		return fmt.Errorf("config: mutation_probability must be in [0, 1], got %g", cfg.MutationProbability)
	case cfg.MutationGenes < 0:
		return fmt.Errorf("config: mutation_genes must be >= 0, got %d", cfg.MutationGenes)
	case cfg.MaxStaleGenerations < 1:
		return fmt.Errorf("config: max_stale_generations must be >= 1, got %d", cfg.MaxStaleGenerations)
	}

	return nil
}
