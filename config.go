package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config controls how a document is imported. Zero values are not meaningful,
// start from DefaultConfig.
type Config struct {
	// Workers is the number of goroutines validating artifact records.
	Workers int `yaml:"workers"`
	// Strict validates the GOOD envelope against the embedded schema first.
	Strict bool `yaml:"strict"`
	// Pretty indents the JSON output.
	Pretty bool `yaml:"pretty"`
	// LogLevel is a zerolog level name for the diagnostics channel.
	LogLevel string `yaml:"log_level"`
	// MaxSkipRatio fails the import when skipped/total exceeds it. 0 disables the check.
	MaxSkipRatio float64 `yaml:"max_skip_ratio"`
	// Summary selects the summary table style: ascii, markdown or none.
	Summary SummaryMode `yaml:"summary"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Workers:  1,
		LogLevel: zerolog.LevelWarnValue,
		Summary:  SummaryASCII,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.MaxSkipRatio < 0 || c.MaxSkipRatio > 1 {
		return fmt.Errorf("max_skip_ratio must be within [0,1], got %g", c.MaxSkipRatio)
	}
	switch c.Summary {
	case SummaryASCII, SummaryMarkdown, SummaryNone:
	default:
		return fmt.Errorf("unknown summary mode %q", c.Summary)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(fmt.Errorf("invalid log_level %q", c.LogLevel), err)
	}
	return nil
}
