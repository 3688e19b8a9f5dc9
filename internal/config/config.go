// Package config loads xmlfolder configuration from YAML.
//
// The core tree walker takes every knob as an explicit parameter; this
// package only supplies defaults for the command-line surface.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the config file location relative to the working
// directory.
const DefaultConfigPath = ".xmlfolder/config.yaml"

// HistoryConfig configures the local run-history store.
type HistoryConfig struct {
	// Enabled records a row per successful generation
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database location
	DBPath string `yaml:"db_path"`
}

// Config holds xmlfolder configuration options.
type Config struct {
	// IncludeMetadata adds size and modified attributes to file elements
	IncludeMetadata bool `yaml:"include_metadata"`

	// WarnThreshold is the pre-scanned entry count above which generate asks
	// for confirmation before walking (0 disables the warning)
	WarnThreshold int `yaml:"warn_threshold"`

	// LogLevel sets logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// History configures the run-history store
	History HistoryConfig `yaml:"history"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		IncludeMetadata: true,
		WarnThreshold:   10000,
		LogLevel:        "info",
		History: HistoryConfig{
			Enabled: true,
			DBPath:  ".xmlfolder/history.db",
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// A missing file returns the defaults without error; a malformed file is an
// error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshal over the defaults so absent keys keep their default values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigFromDir loads .xmlfolder/config.yaml relative to dir.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigPath))
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	if c.WarnThreshold < 0 {
		return fmt.Errorf("warn_threshold must not be negative, got %d", c.WarnThreshold)
	}

	switch c.LogLevel {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (valid: trace, debug, info, warn, error)", c.LogLevel)
	}

	if c.History.Enabled && c.History.DBPath == "" {
		return fmt.Errorf("history.db_path is required when history is enabled")
	}

	return nil
}
