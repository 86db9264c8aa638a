// Package config loads the optional fretviz configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/fretviz/internal/domain"
	m "github.com/mouse-blink/fretviz/internal/model"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds all fretviz configuration.
type Config struct {
	// Starting selection used when no flag overrides it
	Defaults DefaultsConfig `yaml:"defaults"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Extra chords, scales and presets appended after the built-in tables
	Catalog m.TableSpec `yaml:"catalog"`
}

// DefaultsConfig is the starting selection. Empty fields keep the built-in
// defaults.
type DefaultsConfig struct {
	Preset string `yaml:"preset"`
	Tuning string `yaml:"tuning"` // e.g. "D A D G B E"
	Root   string `yaml:"root"`
	Mode   string `yaml:"mode"` // chord, scale
	Chord  string `yaml:"chord"`
	Scale  string `yaml:"scale"`
	Labels string `yaml:"labels"` // interval, note
	Frets  int    `yaml:"frets"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`
}

// Environment variables read by applyEnvOverrides.
const (
	EnvPreset   = "FRETVIZ_PRESET"
	EnvTuning   = "FRETVIZ_TUNING"
	EnvRoot     = "FRETVIZ_ROOT"
	EnvLabels   = "FRETVIZ_LABELS"
	EnvLogLevel = "FRETVIZ_LOG_LEVEL"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Root:   "C",
			Labels: string(m.LabelInterval),
			Frets:  m.DefaultFrets,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the per-user config file location, or "" when the
// platform has no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "fretviz", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)

		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvPreset); v != "" {
		c.Defaults.Preset = v
	}
	if v := os.Getenv(EnvTuning); v != "" {
		c.Defaults.Tuning = v
	}
	if v := os.Getenv(EnvRoot); v != "" {
		c.Defaults.Root = v
	}
	if v := os.Getenv(EnvLabels); v != "" {
		c.Defaults.Labels = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the fields that can be checked without the theory tables.
// Chord, scale and preset names are resolved later against the catalog.
func (c *Config) Validate() error {
	d := c.Defaults

	if d.Root != "" {
		if _, err := m.IndexOf(d.Root); err != nil {
			return fmt.Errorf("defaults.root: %w", err)
		}
	}

	if d.Tuning != "" {
		if _, err := m.ParseTuning(d.Tuning); err != nil {
			return fmt.Errorf("defaults.tuning: %w", err)
		}
	}

	if d.Mode != "" {
		if _, err := m.ParseDisplayMode(d.Mode); err != nil {
			return fmt.Errorf("defaults.mode: %w", err)
		}
	}

	if d.Labels != "" {
		if _, err := m.ParseLabelMode(d.Labels); err != nil {
			return fmt.Errorf("defaults.labels: %w", err)
		}
	}

	if d.Frets < 0 || d.Frets > m.MaxFrets {
		return fmt.Errorf("defaults.frets: %w: %d", m.ErrInvalidFretCount, d.Frets)
	}

	if c.Logging.Level != "" {
		if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("logging.level: %w", err)
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format: unknown encoding %q", c.Logging.Format)
	}

	return nil
}

// Selection converts the configured defaults into a session selection.
func (c *Config) Selection() domain.Selection {
	d := c.Defaults

	return domain.Selection{
		Preset: d.Preset,
		Tuning: d.Tuning,
		Root:   d.Root,
		Mode:   d.Mode,
		Chord:  d.Chord,
		Scale:  d.Scale,
		Labels: d.Labels,
		Frets:  d.Frets,
	}
}

// Catalogs builds the theory tables: the built-in ones followed by the
// configured extensions.
func (c *Config) Catalogs() (domain.Catalog, error) {
	return domain.DefaultCatalog(c.Catalog)
}
