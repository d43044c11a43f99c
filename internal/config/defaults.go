package config

import (
	"github.com/cwbudde/algo-blackbody/physics/band"
	"github.com/cwbudde/algo-blackbody/physics/planck"
	"github.com/cwbudde/algo-blackbody/plot/curve"
	"github.com/cwbudde/algo-blackbody/plot/logscale"
)

const (
	defaultWindowMinUM = 0.1
	defaultWindowMaxUM = 3.0
	defaultPoints      = 580
)

var defaultTemperatures = []float64{3000, 4000, 5000, 6000}

// DefaultConfig returns the built-in policy.
func DefaultConfig() *Config {
	return &Config{
		Plot: PlotConfig{
			Temperatures: append([]float64(nil), defaultTemperatures...),
			WindowMinUM:  defaultWindowMinUM,
			WindowMaxUM:  defaultWindowMaxUM,
			Points:       defaultPoints,
			UnitScale:    curve.DefaultUnitScale,
			MinGlobalMax: curve.DefaultMinGlobalMax,
		},
		LogScale: LogScaleConfig{
			Decades: logscale.DefaultDecades,
			Epsilon: logscale.DefaultEpsilon,
		},
		Integration: IntegrationConfig{
			Steps:       band.DefaultSteps,
			MaxExponent: planck.DefaultMaxExponent,
		},
	}
}

// applyDefaults fills zero values with defaults.
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	if len(c.Plot.Temperatures) == 0 {
		c.Plot.Temperatures = d.Plot.Temperatures
	}
	if c.Plot.WindowMinUM == 0 {
		c.Plot.WindowMinUM = d.Plot.WindowMinUM
	}
	if c.Plot.WindowMaxUM == 0 {
		c.Plot.WindowMaxUM = d.Plot.WindowMaxUM
	}
	if c.Plot.Points == 0 {
		c.Plot.Points = d.Plot.Points
	}
	if c.Plot.UnitScale == 0 {
		c.Plot.UnitScale = d.Plot.UnitScale
	}
	if c.Plot.MinGlobalMax == 0 {
		c.Plot.MinGlobalMax = d.Plot.MinGlobalMax
	}
	if c.LogScale.Decades == 0 {
		c.LogScale.Decades = d.LogScale.Decades
	}
	if c.LogScale.Epsilon == 0 {
		c.LogScale.Epsilon = d.LogScale.Epsilon
	}
	if c.Integration.Steps == 0 {
		c.Integration.Steps = d.Integration.Steps
	}
	if c.Integration.MaxExponent == 0 {
		c.Integration.MaxExponent = d.Integration.MaxExponent
	}
}

// Law returns the Planck evaluator for the configured overflow ceiling.
func (c *Config) Law() planck.Law {
	return planck.NewLaw(planck.CODATA2018, c.Integration.MaxExponent)
}

// Integrator returns a band integrator using the configured steps and law.
func (c *Config) Integrator() *band.Integrator {
	return band.NewIntegrator(
		band.WithSteps(c.Integration.Steps),
		band.WithLaw(c.Law()),
	)
}

// Sampler returns a curve sampler using the configured display policy.
func (c *Config) Sampler() *curve.Sampler {
	return curve.NewSampler(
		curve.WithUnitScale(c.Plot.UnitScale),
		curve.WithMinGlobalMax(c.Plot.MinGlobalMax),
		curve.WithLaw(c.Law()),
	)
}

// Window returns the configured display window in metres.
func (c *Config) Window() curve.Window {
	return curve.Window{
		Min:   c.Plot.WindowMinUM * 1e-6,
		Max:   c.Plot.WindowMaxUM * 1e-6,
		Count: c.Plot.Points,
	}
}

// Scale returns the configured log-axis policy.
func (c *Config) Scale() logscale.Scale {
	return logscale.New(
		logscale.WithDecades(c.LogScale.Decades),
		logscale.WithEpsilon(c.LogScale.Epsilon),
	)
}
