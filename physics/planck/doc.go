// Package planck evaluates Planck's law for blackbody spectral radiance.
//
// Radiance is expressed per unit wavelength in SI units (W·m⁻³·sr⁻¹) for a
// wavelength in metres and a temperature in kelvin. Evaluation is pure and
// never returns NaN or Inf: non-positive inputs and exponents beyond the
// overflow ceiling produce exactly zero.
//
// Wien's displacement law locates the wavelength of maximum spectral
// radiance:
//
//	λ_peak = b / T
package planck
