// Package curve samples Planck spectra for plotting.
//
// [Sample] evaluates one curve per temperature over a shared wavelength
// window, converts radiance into a display unit, and reports each curve's
// Wien peak and in-window maximum together with the global maximum used as
// the top of a logarithmic radiance axis (see package logscale).
//
// Curves keep the order of the requested temperatures so that consumers can
// assign colours and legend entries consistently.
package curve
