// Package logscale maps radiance values onto a normalised logarithmic axis.
//
// The axis spans a fixed number of decades below a reference maximum M:
//
//	pos(r) = (log10(r+ε) - log10(M·10^-D + ε)) / (log10(M+ε) - log10(M·10^-D + ε))
//
// clamped to [0, 1]. Values more than D decades below M collapse onto the
// axis floor. D and ε are presentation policy and configurable.
package logscale

import (
	"math"

	"github.com/cwbudde/algo-blackbody/internal/numeric"
)

const (
	// DefaultDecades is the dynamic range shown below the axis maximum.
	DefaultDecades = 5.0

	// DefaultEpsilon keeps log10 finite for radiance values near zero.
	DefaultEpsilon = 1e-100

	// MaxDecades bounds the dynamic range; float64 spans about 308 decades
	// above its smallest normal value.
	MaxDecades = 300.0
)

// Option configures a Scale.
type Option func(*Scale)

// WithDecades sets the displayed dynamic range in decades. Values outside
// (0, MaxDecades] are ignored.
func WithDecades(d float64) Option {
	return func(s *Scale) {
		if numeric.Positive(d) && d <= MaxDecades {
			s.decades = d
		}
	}
}

// WithEpsilon sets the offset added before taking logarithms. Negative
// values are ignored.
func WithEpsilon(eps float64) Option {
	return func(s *Scale) {
		if eps >= 0 && !math.IsInf(eps, 1) {
			s.epsilon = eps
		}
	}
}

// Scale is an immutable log-axis policy.
type Scale struct {
	decades float64
	epsilon float64
}

// New returns a Scale with the defaults overridden by opts.
func New(opts ...Option) Scale {
	s := Scale{decades: DefaultDecades, epsilon: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Decades returns the dynamic range in decades.
func (s Scale) Decades() float64 { return s.decades }

// Epsilon returns the logarithm offset.
func (s Scale) Epsilon() float64 { return s.epsilon }

// Bounds returns the radiance range covered by the axis for maximum m.
// For positive m the lower bound never underflows to zero.
func (s Scale) Bounds(m float64) (low, high float64) {
	low = m * math.Pow(10, -s.decades)
	if m > 0 && low < math.SmallestNonzeroFloat64 {
		low = math.SmallestNonzeroFloat64
	}
	return low, m
}

// Position returns the normalised axis position of r in [0, 1] for an axis
// topped by m. Non-positive r maps to 0.
func (s Scale) Position(r, m float64) float64 {
	if !(r > 0) {
		return 0
	}

	low, high := s.Bounds(m)
	floor := math.Log10(low + s.epsilon)
	span := math.Log10(high+s.epsilon) - floor
	if !(span > 0) {
		return 0
	}

	return numeric.Clamp((math.Log10(r+s.epsilon)-floor)/span, 0, 1)
}

// Positions maps every value of rs into dst, which must have len(rs).
func (s Scale) Positions(dst, rs []float64, m float64) {
	if len(dst) != len(rs) {
		panic("logscale: dst and rs must have the same length")
	}
	for i, r := range rs {
		dst[i] = s.Position(r, m)
	}
}

// DecadeTicks returns the powers of ten inside the axis range for maximum m,
// in ascending order.
func (s Scale) DecadeTicks(m float64) []float64 {
	if !numeric.Positive(m) {
		return nil
	}

	low, high := s.Bounds(m)
	first := int(math.Ceil(math.Log10(low)))
	last := int(math.Floor(math.Log10(high)))
	if last < first {
		return nil
	}

	ticks := make([]float64, 0, last-first+1)
	for e := first; e <= last; e++ {
		ticks = append(ticks, math.Pow(10, float64(e)))
	}
	return ticks
}
