// Package cavity models a two-mirror Fabry-Pérot resonator around the
// nonlinear crystal: Airy transmission, finesse and free spectral range.
package cavity
