// Package config holds the presentation and integration policy of planckinfo.
//
// The numeric packages have no global settings; everything tunable (display
// window, unit scale, log-axis dynamic range, step count, overflow ceiling)
// lives here and is turned into configured core objects by the builder
// methods.
//
// Config file locations (priority order):
//  1. $PLANCKINFO_CONFIG
//  2. ./planckinfo.toml
//  3. ./planckinfo.yaml
//  4. ./planckinfo.yml
//
// The format is chosen by file extension.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides the config search.
const EnvPath = "PLANCKINFO_CONFIG"

var searchPaths = []string{"planckinfo.toml", "planckinfo.yaml", "planckinfo.yml"}

// Config is the complete policy.
type Config struct {
	Plot        PlotConfig        `toml:"plot" yaml:"plot"`
	LogScale    LogScaleConfig    `toml:"logscale" yaml:"logscale"`
	Integration IntegrationConfig `toml:"integration" yaml:"integration"`
}

// PlotConfig describes the curve display window.
type PlotConfig struct {
	Temperatures []float64 `toml:"temperatures" yaml:"temperatures"`
	WindowMinUM  float64   `toml:"window_min_um" yaml:"window_min_um"`
	WindowMaxUM  float64   `toml:"window_max_um" yaml:"window_max_um"`
	Points       int       `toml:"points" yaml:"points"`
	UnitScale    float64   `toml:"unit_scale" yaml:"unit_scale"`
	MinGlobalMax float64   `toml:"min_global_max" yaml:"min_global_max"`
}

// LogScaleConfig describes the logarithmic radiance axis. Decades must lie in
// (0, 300]; an epsilon of 0 selects the default, so it is always positive
// once loaded.
type LogScaleConfig struct {
	Decades float64 `toml:"decades" yaml:"decades"`
	Epsilon float64 `toml:"epsilon" yaml:"epsilon"`
}

// IntegrationConfig describes band integration.
type IntegrationConfig struct {
	Steps       int     `toml:"steps" yaml:"steps"`
	MaxExponent float64 `toml:"max_exponent" yaml:"max_exponent"`
}

// Load finds and loads the config file, or returns defaults if none is found.
// The second return value is the path that was read, empty for defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}

	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// LoadFromPath loads and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Parse decodes data in the given format ("toml" or "yaml"), fills missing
// values with defaults and validates the result. Unknown keys are rejected.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF and means "all defaults".
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes c to path in the format implied by its extension.
func (c *Config) Save(path string) error {
	data, err := c.Marshal(formatOf(path))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// Marshal encodes c as "toml" or "yaml".
func (c *Config) Marshal(format string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "toml":
		data, err = toml.Marshal(c)
	case "yaml":
		data, err = yaml.Marshal(c)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return data, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
}
