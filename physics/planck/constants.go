package planck

import "math"

// Constants bundles the physical constants used by Planck's law.
type Constants struct {
	Planck    float64 // h, J·s
	Light     float64 // c, m/s
	Boltzmann float64 // k_B, J/K
	Wien      float64 // b, m·K
}

// CODATA2018 holds the exact SI-2019 values of h, c and k_B together with the
// CODATA 2018 Wien wavelength displacement constant.
var CODATA2018 = Constants{
	Planck:    6.62607015e-34,
	Light:     299792458,
	Boltzmann: 1.380649e-23,
	Wien:      2.897771955e-3,
}

// FirstRadiation returns 2hc², the numerator coefficient of Planck's law per
// steradian.
func (c Constants) FirstRadiation() float64 {
	return 2 * c.Planck * c.Light * c.Light
}

// SecondRadiation returns c2 = hc/k_B in m·K.
func (c Constants) SecondRadiation() float64 {
	return c.Planck * c.Light / c.Boltzmann
}

// StefanBoltzmann returns σ = 2π⁵k⁴ / (15c²h³) in W·m⁻²·K⁻⁴.
func (c Constants) StefanBoltzmann() float64 {
	k4 := math.Pow(c.Boltzmann, 4)
	h3 := c.Planck * c.Planck * c.Planck
	return 2 * math.Pow(math.Pi, 5) * k4 / (15 * c.Light * c.Light * h3)
}
