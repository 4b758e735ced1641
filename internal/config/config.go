// Package config provides configuration loading for stele.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"stele/internal/ast"
	"stele/internal/semantic"
)

// Config represents the complete stele configuration.
type Config struct {
	Solver    SolverConfig    `yaml:"solver"`
	Hierarchy HierarchyConfig `yaml:"hierarchy"`
	Temporal  TemporalConfig  `yaml:"temporal"`
}

// SolverConfig configures the external SMT solver.
type SolverConfig struct {
	// Path is the solver binary (default: "z3")
	Path string `yaml:"path"`
	// Args are passed before the query is fed on stdin
	Args []string `yaml:"args"`
	// Timeout bounds one solver invocation
	Timeout time.Duration `yaml:"timeout"`
}

// HierarchyConfig configures the authority level ordering.
type HierarchyConfig struct {
	// Levels orders authority levels from most to least authoritative.
	// Empty means the built-in ordering.
	Levels []string `yaml:"levels"`
}

// TemporalConfig anchors temporal validity checks.
type TemporalConfig struct {
	// ReferenceDate is a DD-MM-YYYY date the temporal checks compare
	// against. Empty means today.
	ReferenceDate string `yaml:"reference_date"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Path:    "z3",
			Args:    []string{"-in", "-smt2"},
			Timeout: 30 * time.Second,
		},
		Hierarchy: HierarchyConfig{
			Levels: append([]string(nil), semantic.DefaultLevels...),
		},
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return &cfg, nil
}

// Merge overlays non-zero fields from other onto this config.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Solver.Path != "" {
		c.Solver.Path = other.Solver.Path
	}
	if len(other.Solver.Args) > 0 {
		c.Solver.Args = other.Solver.Args
	}
	if other.Solver.Timeout > 0 {
		c.Solver.Timeout = other.Solver.Timeout
	}
	if len(other.Hierarchy.Levels) > 0 {
		c.Hierarchy.Levels = other.Hierarchy.Levels
	}
	if other.Temporal.ReferenceDate != "" {
		c.Temporal.ReferenceDate = other.Temporal.ReferenceDate
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Solver.Path == "" {
		return fmt.Errorf("solver.path must not be empty")
	}
	if c.Solver.Timeout <= 0 {
		return fmt.Errorf("solver.timeout must be positive")
	}
	if len(c.Hierarchy.Levels) == 0 {
		return fmt.Errorf("hierarchy.levels must not be empty")
	}
	seen := make(map[string]bool)
	for _, level := range c.Hierarchy.Levels {
		if seen[level] {
			return fmt.Errorf("hierarchy.levels lists %q twice", level)
		}
		seen[level] = true
	}
	if c.Temporal.ReferenceDate != "" {
		if _, err := ast.DateValue(c.Temporal.ReferenceDate); err != nil {
			return fmt.Errorf("temporal.reference_date: %q is not a DD-MM-YYYY date", c.Temporal.ReferenceDate)
		}
	}
	return nil
}

// ReferenceDate resolves the configured reference date, defaulting to
// the current day.
func (c *Config) ReferenceDate() time.Time {
	if c.Temporal.ReferenceDate != "" {
		if d, err := ast.DateValue(c.Temporal.ReferenceDate); err == nil {
			return d
		}
	}
	return time.Now().Truncate(24 * time.Hour)
}
