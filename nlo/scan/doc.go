// Package scan enumerates signal/idler pairs on a channel grid and keeps
// the pairs a given crystal and grating phase-match.
//
// A run is described by [Config], usually loaded from YAML:
//
//	crystal: ppln-e
//	temperature_c: 40
//	poling_period_m: 16.4e-6   # 0 derives it from the degenerate center pair
//	length_m: 0.01
//	min_efficiency: 0.5
//	grid:
//	  start_hz: 191.15e12
//	  stop_hz: 196.15e12
//	  spacing_hz: 50e9
//
// Results can be exported as Parquet rows with [WriteParquet].
package scan
