// Package lattice places items on concentric hexagonal rings around the
// origin.
//
// Ring 0 is the single center point. Ring k (k >= 1) holds 6k points spaced
// 360/(6k) degrees apart at radius k*spacing, so neighbours on a ring sit
// roughly one spacing apart and rings never overlap. Items fill the center,
// then ring 1 in angular order, then ring 2, and so on; the last ring may be
// partial.
//
//	positions := lattice.Distribute(7, 100) // center + full first ring
//	positions = lattice.AddJitter(positions, 20, 42)
//
// [CircleRadius] sizes a bounding circle for camera fitting.
package lattice
