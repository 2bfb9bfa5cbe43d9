// Package poling describes the nonlinear-coefficient envelope of a
// periodically-poled grating along the crystal.
//
// A uniform grating phase-matches with a sinc² response; apodized gratings
// (Gaussian, Tukey, Hann) trade main-lobe width for lower side lobes. Feed a
// generated profile to phasematch.ProfileResponse to obtain the response.
package poling
