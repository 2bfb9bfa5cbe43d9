// Package phasematch computes energy conservation, phase mismatch and the
// quasi-phase-matching efficiency of three-wave mixing in a poled crystal.
//
// All wavelengths are vacuum wavelengths in meters; temperatures are in
// degrees Celsius; poling periods and crystal lengths are in meters. The
// crystal enters only through a dispersion.IndexFunc, so every function
// here works for any supported material.
//
// # Conventions
//
// The pump is the highest-energy wave: 1/λp = 1/λ1 + 1/λ2. The mismatch is
//
//	Δk = 2π·(n(λp)/λp − n(λ1)/λ1 − n(λ2)/λ2 − 1/Λ)
//
// and a uniform grating of length L responds with sinc²(Δk·L/2).
// [ProfileResponse] generalizes the response to apodized gratings.
package phasematch
