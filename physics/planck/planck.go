package planck

import "math"

// DefaultMaxExponent is the largest hc/(λkT) evaluated before the radiance is
// reported as zero. e^700 is close to the float64 ceiling.
const DefaultMaxExponent = 700.0

// SpectralSample is one evaluation of Planck's law.
type SpectralSample struct {
	Wavelength  float64 // m
	Temperature float64 // K
	Radiance    float64 // W·m⁻³·sr⁻¹
}

// Law evaluates Planck's law with a configurable overflow ceiling.
// The zero value is not usable; construct with DefaultLaw or NewLaw.
// Options elsewhere that accept a Law ignore the zero value.
type Law struct {
	constants   Constants
	maxExponent float64
}

// IsZero reports whether l is the unusable zero value.
func (l Law) IsZero() bool { return l == Law{} }

// DefaultLaw returns a Law using CODATA2018 constants and DefaultMaxExponent.
func DefaultLaw() Law {
	return Law{constants: CODATA2018, maxExponent: DefaultMaxExponent}
}

// NewLaw returns a Law with the given constants and overflow ceiling.
// A non-positive maxExponent selects DefaultMaxExponent.
func NewLaw(constants Constants, maxExponent float64) Law {
	if !(maxExponent > 0) {
		maxExponent = DefaultMaxExponent
	}
	return Law{constants: constants, maxExponent: maxExponent}
}

// Constants returns the physical constants used by l.
func (l Law) Constants() Constants { return l.constants }

// MaxExponent returns the overflow ceiling of l.
func (l Law) MaxExponent() float64 { return l.maxExponent }

// Radiance returns the spectral radiance of a blackbody at temperature (K)
// for wavelength (m), in W·m⁻³·sr⁻¹.
func (l Law) Radiance(wavelength, temperature float64) float64 {
	if !(wavelength > 0) || !(temperature > 0) {
		return 0
	}

	h := l.constants.Planck
	c := l.constants.Light
	k := l.constants.Boltzmann

	w2 := wavelength * wavelength
	numerator := 2 * h * c * c / (w2 * w2 * wavelength)
	exponent := h * c / (wavelength * k * temperature)
	if exponent > l.maxExponent {
		return 0
	}

	// Expm1 keeps precision when the exponent approaches zero.
	denom := math.Expm1(exponent)
	if denom == 0 {
		return 0
	}

	return numerator / denom
}

// Evaluate returns the full sample for (wavelength, temperature).
func (l Law) Evaluate(wavelength, temperature float64) SpectralSample {
	return SpectralSample{
		Wavelength:  wavelength,
		Temperature: temperature,
		Radiance:    l.Radiance(wavelength, temperature),
	}
}

// PeakWavelength returns b/T, the wavelength of maximum spectral radiance.
// It returns 0 for non-positive temperatures.
func (l Law) PeakWavelength(temperature float64) float64 {
	if !(temperature > 0) {
		return 0
	}
	return l.constants.Wien / temperature
}

// PeakRadiance returns the spectral radiance at the Wien peak.
func (l Law) PeakRadiance(temperature float64) float64 {
	return l.Radiance(l.PeakWavelength(temperature), temperature)
}

var defaultLaw = DefaultLaw()

// Radiance evaluates Planck's law with the default constants and overflow
// ceiling.
func Radiance(wavelength, temperature float64) float64 {
	return defaultLaw.Radiance(wavelength, temperature)
}

// Evaluate returns a SpectralSample using the default law.
func Evaluate(wavelength, temperature float64) SpectralSample {
	return defaultLaw.Evaluate(wavelength, temperature)
}

// PeakWavelength returns the Wien peak wavelength (m) for temperature (K).
func PeakWavelength(temperature float64) float64 {
	return defaultLaw.PeakWavelength(temperature)
}

// PeakRadiance returns the spectral radiance at the Wien peak using the
// default law.
func PeakRadiance(temperature float64) float64 {
	return defaultLaw.PeakRadiance(temperature)
}
