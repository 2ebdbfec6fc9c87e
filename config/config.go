package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/dedupe"
	"github.com/brettbedarf/dedupe/internal/util"
	"gopkg.in/yaml.v3"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultLogFile is created (or appended to) in the working directory
	DefaultLogFile = "dedupe.log"

	DefaultHiddenPrefix = dedupe.DefaultHiddenPrefix

	// DefaultHasher is the in-process SHA-256 backend
	DefaultHasher = "sha256"

	DefaultVerbosity = WarnVerbose

	DefaultSummary = false
)

// Config contains runtime configuration values for a dedupe run.
type Config struct {
	LogFile      string        // Path of the append-only run log (Default dedupe.log)
	HiddenPrefix string        // Entries whose name starts with this are skipped (Default ".")
	Hasher       string        // Registered hasher name (Default sha256)
	LogLvl       util.LogLevel // Diagnostic log level (Default warn)
	Summary      bool          // Print a summary tree after the run (Default false)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
// LogLvl is a CLI style verbosity between 1 (error) and 5 (trace).
type ConfigOverride struct {
	LogFile      *string `yaml:"log_file,omitempty" json:"log_file,omitempty"`
	HiddenPrefix *string `yaml:"hidden_prefix,omitempty" json:"hidden_prefix,omitempty"`
	Hasher       *string `yaml:"hasher,omitempty" json:"hasher,omitempty"`
	LogLvl       *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Summary      *bool   `yaml:"summary,omitempty" json:"summary,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogFile:      DefaultLogFile,
		HiddenPrefix: DefaultHiddenPrefix,
		Hasher:       DefaultHasher,
		LogLvl:       VerbosityToLogLevel(DefaultVerbosity),
		Summary:      DefaultSummary,
	}
}

// NewConfig creates a Config from defaults with override applied on top.
// A nil override yields the defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogFile != nil {
		c.LogFile = *override.LogFile
	}
	if override.HiddenPrefix != nil {
		c.HiddenPrefix = *override.HiddenPrefix
	}
	if override.Hasher != nil {
		c.Hasher = *override.Hasher
	}
	if override.LogLvl != nil {
		c.LogLvl = VerbosityToLogLevel(*override.LogLvl)
	}
	if override.Summary != nil {
		c.Summary = *override.Summary
	}
}

// Validate reports configuration values that cannot drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LogFile) == "" {
		return fmt.Errorf("log file must not be empty")
	}
	if strings.TrimSpace(c.Hasher) == "" {
		return fmt.Errorf("hasher must not be empty")
	}
	if c.HiddenPrefix == "" {
		return fmt.Errorf("hidden prefix must not be empty")
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// This is a convenience function that combines NewDefaultConfig, LoadConfigOverrideFile, and Merge.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}
