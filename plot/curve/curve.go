package curve

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-blackbody/internal/numeric"
	"github.com/cwbudde/algo-blackbody/physics/planck"
	"github.com/cwbudde/algo-blackbody/plot/logscale"
)

const (
	// DefaultUnitScale converts W·m⁻³·sr⁻¹ to W·m⁻²·µm⁻¹·sr⁻¹.
	DefaultUnitScale = 1e-6

	// DefaultMinGlobalMax keeps the global maximum usable as a log-axis
	// reference when every curve is zero.
	DefaultMinGlobalMax = 1e-10
)

// Window is the wavelength domain shared by all curves of one Sample call.
type Window struct {
	Min   float64 // m
	Max   float64 // m
	Count int     // number of steps; Count+1 points are generated
}

// Valid reports whether w describes a non-empty, finite interval with at
// least one step.
func (w Window) Valid() bool {
	return w.Count >= 1 && numeric.Finite(w.Min) && numeric.Finite(w.Max) && w.Min < w.Max
}

// Step returns the spacing between adjacent points, or 0 for an invalid
// window.
func (w Window) Step() float64 {
	if !w.Valid() {
		return 0
	}
	return (w.Max - w.Min) / float64(w.Count)
}

// Wavelengths returns the Count+1 ascending sample points from Min to Max
// inclusive, or nil for an invalid window.
func (w Window) Wavelengths() []float64 {
	if !w.Valid() {
		return nil
	}

	step := w.Step()
	out := make([]float64, w.Count+1)
	for i := range out {
		out[i] = w.Min + float64(i)*step
	}
	out[w.Count] = w.Max

	return out
}

// Curve is one sampled spectrum. Each curve owns its slices.
type Curve struct {
	Temperature    float64   // K
	PeakWavelength float64   // m, Wien's law; 0 when Temperature <= 0
	MaxRadiance    float64   // display units
	Wavelengths    []float64 // m, ascending
	Radiance       []float64 // display units, parallel to Wavelengths
}

// Len returns the number of samples.
func (c Curve) Len() int { return len(c.Radiance) }

// Samples returns the curve as spectral samples. Radiance is in the display
// unit the curve was sampled with.
func (c Curve) Samples() []planck.SpectralSample {
	out := make([]planck.SpectralSample, len(c.Radiance))
	for i := range out {
		out[i] = planck.SpectralSample{
			Wavelength:  c.Wavelengths[i],
			Temperature: c.Temperature,
			Radiance:    c.Radiance[i],
		}
	}
	return out
}

// Set is the result of sampling several temperatures over one window.
type Set struct {
	Window    Window
	Curves    []Curve
	GlobalMax float64 // display units, never below the configured floor
}

// Positions maps every curve onto scale with GlobalMax as the axis top.
// The result is parallel to Curves.
func (s Set) Positions(scale logscale.Scale) [][]float64 {
	out := make([][]float64, len(s.Curves))
	for i, c := range s.Curves {
		out[i] = make([]float64, len(c.Radiance))
		scale.Positions(out[i], c.Radiance, s.GlobalMax)
	}
	return out
}

// Option configures a Sampler.
type Option func(*config)

type config struct {
	unitScale    float64
	minGlobalMax float64
	law          planck.Law
}

func defaultConfig() config {
	return config{
		unitScale:    DefaultUnitScale,
		minGlobalMax: DefaultMinGlobalMax,
		law:          planck.DefaultLaw(),
	}
}

// WithUnitScale sets the factor applied to SI radiance. Non-positive values
// are ignored.
func WithUnitScale(scale float64) Option {
	return func(c *config) {
		if numeric.Positive(scale) {
			c.unitScale = scale
		}
	}
}

// WithMinGlobalMax sets the floor of Set.GlobalMax. Non-positive values are
// ignored.
func WithMinGlobalMax(floor float64) Option {
	return func(c *config) {
		if numeric.Positive(floor) {
			c.minGlobalMax = floor
		}
	}
}

// WithLaw sets the Planck evaluator. The zero Law is ignored.
func WithLaw(law planck.Law) Option {
	return func(c *config) {
		if !law.IsZero() {
			c.law = law
		}
	}
}

// Sampler generates curve sets. It is immutable and safe for concurrent use.
type Sampler struct {
	cfg config
}

// NewSampler creates a Sampler.
func NewSampler(opts ...Option) *Sampler {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Sampler{cfg: cfg}
}

// UnitScale returns the configured display-unit factor.
func (s *Sampler) UnitScale() float64 { return s.cfg.unitScale }

// MinGlobalMax returns the configured floor of the global maximum.
func (s *Sampler) MinGlobalMax() float64 { return s.cfg.minGlobalMax }

// PeakRadiance returns the radiance at the Wien peak in display units.
func (s *Sampler) PeakRadiance(temperature float64) float64 {
	return s.cfg.law.PeakRadiance(temperature) * s.cfg.unitScale
}

// Sample evaluates one curve per temperature over w, preserving order.
// An invalid window yields curves without samples; an empty temperature list
// yields no curves. GlobalMax is floored in both cases.
func (s *Sampler) Sample(temperatures []float64, w Window) Set {
	set := Set{
		Window: w,
		Curves: make([]Curve, 0, len(temperatures)),
	}

	wavelengths := w.Wavelengths()
	global := 0.0
	for _, temp := range temperatures {
		c := s.sampleCurve(temp, wavelengths)
		if c.MaxRadiance > global {
			global = c.MaxRadiance
		}
		set.Curves = append(set.Curves, c)
	}

	set.GlobalMax = math.Max(global, s.cfg.minGlobalMax)
	return set
}

func (s *Sampler) sampleCurve(temperature float64, wavelengths []float64) Curve {
	c := Curve{
		Temperature:    temperature,
		PeakWavelength: s.cfg.law.PeakWavelength(temperature),
		Wavelengths:    append([]float64(nil), wavelengths...),
		Radiance:       make([]float64, len(wavelengths)),
	}
	if len(wavelengths) == 0 {
		return c
	}

	for i, wl := range c.Wavelengths {
		c.Radiance[i] = s.cfg.law.Radiance(wl, temperature)
	}

	vecmath.ScaleBlockInPlace(c.Radiance, s.cfg.unitScale)

	// Radiance is non-negative, so the largest magnitude is the maximum.
	c.MaxRadiance = vecmath.MaxAbs(c.Radiance)

	return c
}

var defaultSampler = NewSampler()

// Sample evaluates curves with the default unit scale, floor and law.
func Sample(temperatures []float64, w Window) Set {
	return defaultSampler.Sample(temperatures, w)
}
