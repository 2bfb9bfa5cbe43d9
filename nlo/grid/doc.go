// Package grid builds the wavelength grids the phase-matching and
// filter-comb code iterates over.
//
// The canonical grid is the 50 GHz ITU DWDM grid between 191.15 THz and
// 196.15 THz (stop exclusive), returned as ascending vacuum wavelengths in
// meters. [Linspace] provides evenly spaced simulation axes.
package grid
