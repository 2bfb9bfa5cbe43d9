// Package spectrum holds tabulated spectral curves (x → transmission or
// intensity) and the boundary where external data enters the module.
//
// Tabulated filter data usually comes in nanometers; convert once with
// [Curve.ScaleX] (e.g. ScaleX(core.Nanometer)) before handing the curve to
// code that expects meters. [ReadCSV] and [ReadFile] load two numeric
// columns from CSV, optionally gzip-compressed.
package spectrum
