// Package band integrates Planck's law over a wavelength interval.
//
// [Integrate] estimates band radiance (W·m⁻²·sr⁻¹) with the composite
// trapezoidal rule over equal-width subintervals, summed in ascending
// wavelength order so repeated calls are bit-identical. [Emittance] converts
// band radiance to hemispherical flux for a Lambertian emitter.
//
// [Fraction] and [Exact] provide a closed-form reference from the series
// expansion of the blackbody fractional function.
package band
