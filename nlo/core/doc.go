// Package core holds numeric helpers, physical constants, unit conversions
// and the shared option set used by the nonlinear-optics packages.
//
// Wavelengths cross package boundaries in meters. Dispersion fits are
// published in micrometers and filter data usually arrives in nanometers,
// so every conversion goes through the named helpers in units.go rather than
// ad-hoc factors.
package core
