package band

import (
	"math"

	"github.com/cwbudde/algo-blackbody/internal/numeric"
	"github.com/cwbudde/algo-blackbody/physics/planck"
)

// DefaultSteps is the subinterval count used when none is configured.
const DefaultSteps = 1000

// Request describes one band integration.
type Request struct {
	Temperature   float64 // K
	WavelengthMin float64 // m
	WavelengthMax float64 // m
	Steps         int
}

// Result holds band radiance and the emittance derived from it.
type Result struct {
	Radiance  float64 // W·m⁻²·sr⁻¹
	Emittance float64 // W·m⁻²
}

// Option configures an Integrator.
type Option func(*config)

type config struct {
	steps int
	law   planck.Law
}

func defaultConfig() config {
	return config{
		steps: DefaultSteps,
		law:   planck.DefaultLaw(),
	}
}

// WithSteps sets the default subinterval count. Values below 1 are ignored.
func WithSteps(steps int) Option {
	return func(c *config) {
		if steps >= 1 {
			c.steps = steps
		}
	}
}

// WithLaw sets the Planck evaluator, e.g. one with a custom overflow ceiling.
// The zero Law is ignored.
func WithLaw(law planck.Law) Option {
	return func(c *config) {
		if !law.IsZero() {
			c.law = law
		}
	}
}

// Integrator performs trapezoidal band integration. It is immutable and safe
// for concurrent use.
type Integrator struct {
	cfg config
}

// NewIntegrator creates an Integrator.
func NewIntegrator(opts ...Option) *Integrator {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Integrator{cfg: cfg}
}

// Steps returns the configured default subinterval count.
func (in *Integrator) Steps() int { return in.cfg.steps }

// Integrate returns band radiance over [wavelengthMin, wavelengthMax] using
// the configured step count.
func (in *Integrator) Integrate(temperature, wavelengthMin, wavelengthMax float64) float64 {
	return in.integrate(temperature, wavelengthMin, wavelengthMax, in.cfg.steps)
}

// Evaluate integrates req and derives the emittance. A request with
// Steps < 1 uses the configured step count.
func (in *Integrator) Evaluate(req Request) Result {
	steps := req.Steps
	if steps < 1 {
		steps = in.cfg.steps
	}

	radiance := in.integrate(req.Temperature, req.WavelengthMin, req.WavelengthMax, steps)
	return Result{
		Radiance:  radiance,
		Emittance: Emittance(radiance),
	}
}

func (in *Integrator) integrate(temperature, lo, hi float64, steps int) float64 {
	if !(temperature > 0) || !(lo < hi) {
		return 0
	}
	if !numeric.Finite(lo) || !numeric.Finite(hi) || !numeric.Finite(hi-lo) {
		return 0
	}

	width := (hi - lo) / float64(steps)
	law := in.cfg.law

	sum := 0.0
	for i := range steps {
		w1 := lo + float64(i)*width
		w2 := lo + float64(i+1)*width
		sum += (law.Radiance(w1, temperature) + law.Radiance(w2, temperature)) / 2 * width
	}

	return sum
}

var defaultIntegrator = NewIntegrator()

// Integrate returns the band radiance of a blackbody at temperature over
// [wavelengthMin, wavelengthMax] using steps trapezoids. It returns 0 when
// temperature <= 0, wavelengthMin >= wavelengthMax, or the band is not
// finite; steps < 1 selects DefaultSteps.
func Integrate(temperature, wavelengthMin, wavelengthMax float64, steps int) float64 {
	if steps < 1 {
		steps = DefaultSteps
	}
	return defaultIntegrator.integrate(temperature, wavelengthMin, wavelengthMax, steps)
}

// Evaluate integrates req with the default law.
func Evaluate(req Request) Result {
	return defaultIntegrator.Evaluate(req)
}

// Emittance converts band radiance to hemispherical emittance for a
// Lambertian emitter (M = πL).
func Emittance(radiance float64) float64 {
	return radiance * math.Pi
}
