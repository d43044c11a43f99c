package config

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-blackbody/plot/logscale"
)

var (
	// ErrUnsupportedFormat is returned for config files that are neither
	// TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid config")
)

// Validate checks the config for values the core would silently degrade on.
func (c *Config) Validate() error {
	for _, t := range c.Plot.Temperatures {
		if !(t > 0) {
			return fmt.Errorf("%w: plot temperature must be > 0: %v", ErrInvalid, t)
		}
	}
	if !(c.Plot.WindowMinUM > 0) || !(c.Plot.WindowMinUM < c.Plot.WindowMaxUM) {
		return fmt.Errorf("%w: plot window must satisfy 0 < min < max: [%v, %v]",
			ErrInvalid, c.Plot.WindowMinUM, c.Plot.WindowMaxUM)
	}
	if c.Plot.Points < 1 {
		return fmt.Errorf("%w: plot points must be >= 1: %d", ErrInvalid, c.Plot.Points)
	}
	if !(c.Plot.UnitScale > 0) {
		return fmt.Errorf("%w: unit scale must be > 0: %v", ErrInvalid, c.Plot.UnitScale)
	}
	if !(c.Plot.MinGlobalMax > 0) {
		return fmt.Errorf("%w: min global max must be > 0: %v", ErrInvalid, c.Plot.MinGlobalMax)
	}
	if !(c.LogScale.Decades > 0) || c.LogScale.Decades > logscale.MaxDecades {
		return fmt.Errorf("%w: log scale decades must be in (0, %v]: %v",
			ErrInvalid, logscale.MaxDecades, c.LogScale.Decades)
	}
	if !(c.LogScale.Epsilon > 0) {
		return fmt.Errorf("%w: log scale epsilon must be > 0: %v", ErrInvalid, c.LogScale.Epsilon)
	}
	if c.Integration.Steps < 1 {
		return fmt.Errorf("%w: integration steps must be >= 1: %d", ErrInvalid, c.Integration.Steps)
	}
	if !(c.Integration.MaxExponent > 0) {
		return fmt.Errorf("%w: max exponent must be > 0: %v", ErrInvalid, c.Integration.MaxExponent)
	}
	return nil
}
