// Package comb tiles one filter transmission curve across a channel grid to
// build a multi-channel filter response on a simulation wavelength axis.
//
// For each channel center the filter's x axis is shifted onto the center,
// the nearest axis sample is located by binary search, and the tile is
// written outward from that sample in both directions until either side
// leaves the axis or lies farther than the window from the seed. Both the left and the right slot of a step receive the
// tile value sampled at the right-hand position, so a tile is mirrored
// about its seed sample even when the filter is asymmetric.
//
// Tiles are applied in the order the centers are given. A later tile
// overwrites earlier ones where they overlap; nothing is summed or
// normalized. Samples no tile reaches stay zero.
//
// The window is expressed in the units of the wavelength axis; the default
// of 0.2 suits axes in nanometers.
package comb
