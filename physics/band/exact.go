package band

import (
	"math"

	"github.com/cwbudde/algo-blackbody/internal/numeric"
	"github.com/cwbudde/algo-blackbody/physics/planck"
)

const (
	// Below this x = c2/λT the Bernoulli expansion is used instead of the
	// exponential series.
	smallXLimit = 1.0

	maxSeriesTerms = 10000
)

// Fraction returns the fraction of total blackbody emission radiated at
// wavelengths below λ, as a function of the product λT (m·K). The result is
// in [0, 1]; non-positive products return 0.
func Fraction(wavelengthTemperature float64) float64 {
	return fraction(planck.CODATA2018, wavelengthTemperature)
}

func fraction(c planck.Constants, lt float64) float64 {
	if !(lt > 0) {
		return 0
	}
	if math.IsInf(lt, 1) {
		return 1
	}

	x := c.SecondRadiation() / lt
	norm := 15 / math.Pow(math.Pi, 4)

	if x < smallXLimit {
		// ∫₀ˣ t³/(eᵗ-1) dt = Σ B_k x^(k+3) / (k!(k+3)).
		x2 := x * x
		poly := 1.0/3 - x/8 + x2/60 - x2*x2/5040 + x2*x2*x2/272160 - x2*x2*x2*x2/13305600
		return clampUnit(1 - norm*x*x2*poly)
	}

	x2 := x * x
	x3 := x2 * x
	sum := 0.0
	for n := 1; n <= maxSeriesTerms; n++ {
		fn := float64(n)
		term := math.Exp(-fn*x) / fn * (x3 + 3*x2/fn + 6*x/(fn*fn) + 6/(fn*fn*fn))
		sum += term
		if term <= 1e-17*sum {
			break
		}
	}

	return clampUnit(norm * sum)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// TotalRadiance returns σT⁴/π, the radiance integrated over all wavelengths.
func TotalRadiance(temperature float64) float64 {
	if !(temperature > 0) {
		return 0
	}
	return TotalEmittance(temperature) / math.Pi
}

// TotalEmittance returns σT⁴ (Stefan–Boltzmann law).
func TotalEmittance(temperature float64) float64 {
	if !(temperature > 0) {
		return 0
	}
	t2 := temperature * temperature
	return planck.CODATA2018.StefanBoltzmann() * t2 * t2
}

// Exact returns the band radiance over [wavelengthMin, wavelengthMax] from
// the closed-form fractional function. It follows the same degenerate-input
// rules as Integrate.
func Exact(temperature, wavelengthMin, wavelengthMax float64) float64 {
	if !(temperature > 0) || !(wavelengthMin < wavelengthMax) {
		return 0
	}
	if !numeric.Finite(wavelengthMin) || !numeric.Finite(wavelengthMax) ||
		!numeric.Finite(wavelengthMax-wavelengthMin) {
		return 0
	}

	lo := Fraction(math.Max(wavelengthMin, 0) * temperature)
	hi := Fraction(wavelengthMax * temperature)
	return TotalRadiance(temperature) * (hi - lo)
}
