// Package config holds seqcannon configuration: the level domain,
// the output directory for workbooks, and logging verbosity.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"seqcannon/internal/solver"
)

// DefaultConfigFile is where Load looks when no explicit path is given.
const DefaultConfigFile = ".seqcannon.yaml"

// Config is the full seqcannon configuration.
type Config struct {
	// Levels bounds the level/rank domain combinations draw from.
	Levels LevelsConfig `yaml:"levels"`

	// Output controls where workbooks are written.
	Output OutputConfig `yaml:"output"`

	// Logging controls verbosity.
	Logging LoggingConfig `yaml:"logging"`
}

// LevelsConfig bounds the card level/rank domain.
type LevelsConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// OutputConfig controls report output.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file or environment
// overrides are present: levels 1..12, workbooks under results/.
func Default() *Config {
	return &Config{
		Levels: LevelsConfig{Min: 1, Max: 12},
		Output: OutputConfig{Dir: "results"},
	}
}

// Load builds the effective configuration: defaults, then the YAML
// file at path (missing file is fine when the path is the default),
// then environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file is the common case; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("SEQCANNON_OUTPUT_DIR"); dir != "" {
		c.Output.Dir = dir
	}
	if raw := os.Getenv("SEQCANNON_MAX_LEVEL"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			c.Levels.Max = v
		}
	}
	if raw := os.Getenv("SEQCANNON_DEBUG"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			c.Logging.Debug = v
		}
	}
}

// Domain materializes the configured level range for the solver.
func (c *Config) Domain() []solver.Level {
	domain := make([]solver.Level, 0, c.Levels.Max-c.Levels.Min+1)
	for v := c.Levels.Min; v <= c.Levels.Max; v++ {
		domain = append(domain, solver.Level(v))
	}
	return domain
}

// Validate checks the level-domain invariants.
func (c *Config) Validate() error {
	if c.Levels.Min < 1 {
		return fmt.Errorf("levels.min must be at least 1, got %d", c.Levels.Min)
	}
	if c.Levels.Min > c.Levels.Max {
		return fmt.Errorf("levels.min %d exceeds levels.max %d", c.Levels.Min, c.Levels.Max)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	return nil
}
