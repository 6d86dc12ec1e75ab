// Package config loads the lootsim run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for a lootsim run.
type Simulator struct {
	// Table is the path to the YAML loot-table file.
	Table string `yaml:"table"`

	// Simulation parameters
	Seed    uint64 `yaml:"seed"`
	Trials  int    `yaml:"trials"`
	Workers int    `yaml:"workers"`

	// Drops resolved on every trial, in order.
	Drops []DropEntry `yaml:"drops"`
}

// DropEntry describes one drop request in the config file. Luck and Stack
// are pointers so an omitted field falls back to the builder defaults
// (luck 1.0, stack 1..1) instead of a zero value.
type DropEntry struct {
	Path   string      `yaml:"path"`
	Depth  int         `yaml:"depth"`
	Luck   *float64    `yaml:"luck,omitempty"`
	Stack  *StackRange `yaml:"stack,omitempty"`
	Modify bool        `yaml:"modify"`
}

// StackRange is an inclusive min..max copy count.
type StackRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		Table:   "tables/loot.yaml",
		Seed:    1,
		Trials:  10000,
		Workers: 4,
	}
}

// LoadSimulator reads a YAML config file over the defaults.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Trials <= 0 {
		return cfg, fmt.Errorf("config %s: trials must be > 0, got %d", path, cfg.Trials)
	}
	if cfg.Workers <= 0 {
		return cfg, fmt.Errorf("config %s: workers must be > 0, got %d", path, cfg.Workers)
	}
	if len(cfg.Drops) == 0 {
		return cfg, fmt.Errorf("config %s: no drops configured", path)
	}

	return cfg, nil
}
