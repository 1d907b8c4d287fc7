package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultVersion  = 1
	DefaultFileName = ".calc.json"

	// Default values for output configuration.
	DefaultPrecision = -1
	MaxPrecision     = 15

	DefaultLogLevel = "warn"
)

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config not found")

// Config defines CLI preferences stored in ~/.calc.json.
type Config struct {
	Version int           `json:"version"`
	Output  *OutputConfig `json:"output,omitempty"`
	Log     *LogConfig    `json:"log,omitempty"`
}

// OutputConfig holds result formatting settings.
type OutputConfig struct {
	// Precision is the number of digits after the decimal point (default -1 = shortest exact form).
	Precision *int `json:"precision,omitempty"`

	// JSON selects JSON output by default (default false).
	JSON *bool `json:"json,omitempty"`

	// Color controls styled output (default true).
	Color *bool `json:"color,omitempty"`
}

// GetPrecision returns the precision setting (default -1).
func (c *OutputConfig) GetPrecision() int {
	if c == nil || c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// IsJSON returns whether JSON output is the default (default false).
func (c *OutputConfig) IsJSON() bool {
	if c == nil || c.JSON == nil {
		return false
	}
	return *c.JSON
}

// IsColor returns whether styled output is enabled (default true).
func (c *OutputConfig) IsColor() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// Validate checks that output values are within supported ranges.
func (c *OutputConfig) Validate() error {
	if c == nil || c.Precision == nil {
		return nil
	}
	if *c.Precision < DefaultPrecision || *c.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between %d and %d, got %d", DefaultPrecision, MaxPrecision, *c.Precision)
	}
	return nil
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level *string `json:"level,omitempty"`
}

// GetLevel returns the log level name (default "warn").
func (c *LogConfig) GetLevel() string {
	if c == nil || c.Level == nil {
		return DefaultLogLevel
	}
	return *c.Level
}

// Validate checks that the log level is known.
func (c *LogConfig) Validate() error {
	if c == nil || c.Level == nil {
		return nil
	}
	switch *c.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, got %q", *c.Level)
	}
}

// Default returns the default config.
func Default() Config {
	return Config{Version: DefaultVersion}
}

// Resolved returns a copy of c with every optional field set explicitly.
func (c Config) Resolved() Config {
	precision := c.Output.GetPrecision()
	jsonOut := c.Output.IsJSON()
	color := c.Output.IsColor()
	level := c.Log.GetLevel()

	version := c.Version
	if version == 0 {
		version = DefaultVersion
	}
	return Config{
		Version: version,
		Output:  &OutputConfig{Precision: &precision, JSON: &jsonOut, Color: &color},
		Log:     &LogConfig{Level: &level},
	}
}

// DefaultPath returns the config location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a config to disk.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("invalid output config: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("invalid log config: %w", err)
	}
	return nil
}

func decode(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
