// Package interp resamples tabulated curves.
//
//   - [Linear]:       piecewise-linear value at one query point
//   - [LinearSlice]:  the same over a slice of query points
//   - [ClosestIndex]: nearest sample of an ascending grid (binary search)
//
// Control points must ascend. Queries outside the control range take the
// value of the nearest end point (constant extrapolation); a single control
// point is returned for every query.
package interp
