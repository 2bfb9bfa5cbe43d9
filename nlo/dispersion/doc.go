// Package dispersion provides Sellmeier-type refractive-index models for the
// periodically-poled crystals supported by the phase-matching code.
//
// Every model is exposed as an [IndexFunc] taking the vacuum wavelength in
// meters and the crystal temperature in degrees Celsius, so callers stay
// agnostic of the crystal:
//
//	n, err := dispersion.PPLN(dispersion.ERay)
//	idx := n(1.55e-6, 40)
//
// Named models (see [Names]) are resolved with [Lookup]:
//
//	m, err := dispersion.Lookup("raicol-ppktp-z")
//	idx := m.Index(1.55e-6, 40)
package dispersion
