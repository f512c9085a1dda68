// Package config holds the decoration run configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration accepts "30s" style values in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the decorator configuration.
type Config struct {
	Host      string `yaml:"host"`      // GDMC HTTP interface address
	Dimension string `yaml:"dimension"` // overworld, the_nether or the_end
	Biome     string `yaml:"biome"`     // decorator to run
	AssetDir  string `yaml:"asset_dir"` // root of the JSON/NBT asset pack
	Seed      int64  `yaml:"seed"`

	Buffering   bool `yaml:"buffering"`
	BufferLimit int  `yaml:"buffer_limit"`
	CacheLimit  int  `yaml:"cache_limit"`

	Retries int      `yaml:"retries"`
	Timeout Duration `yaml:"timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Host:        "http://localhost:9000",
		Dimension:   "",
		Biome:       "grass",
		Buffering:   true,
		BufferLimit: 1024,
		CacheLimit:  8192,
		Retries:     4,
		Timeout:     Duration(30 * time.Second),
	}
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["host"] {
		cfg.Host = fromFile.Host
	}
	if !explicitFlags["dimension"] {
		cfg.Dimension = fromFile.Dimension
	}
	if !explicitFlags["biome"] {
		cfg.Biome = fromFile.Biome
	}
	if !explicitFlags["assets"] {
		cfg.AssetDir = fromFile.AssetDir
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["buffering"] {
		cfg.Buffering = fromFile.Buffering
	}
	if !explicitFlags["buffer-limit"] {
		cfg.BufferLimit = fromFile.BufferLimit
	}
	if !explicitFlags["cache-limit"] {
		cfg.CacheLimit = fromFile.CacheLimit
	}
	if !explicitFlags["retries"] {
		cfg.Retries = fromFile.Retries
	}
	if !explicitFlags["timeout"] {
		cfg.Timeout = fromFile.Timeout
	}
}
