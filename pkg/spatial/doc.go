// Package spatial is the root of the layout and camera engine behind the
// "My Reality" view.
//
// # Overview
//
// Captured somethings are positioned in a 2D world, seen through a camera and
// picked back out by pointer clicks. The work is split into small packages,
// each pure and independently testable:
//
//  1. Depth ([depth]): nesting depth over a flat parent-linked collection.
//  2. Lattice ([lattice]): concentric hexagonal rings around the origin.
//  3. Camera ([camera]): world/screen transforms, pan, zoom and hit-testing.
//  4. Mystery ([mystery]): question-mark placement for the "Ur Reality" map.
//  5. Placement ([placement]): floating panel placement with edge avoidance.
//  6. Geometry ([geom]): shared value types and 3D to 2D flattening.
//
// # Typical flow
//
//	depths := depth.CalculateAll(entities)
//	positions := lattice.Distribute(len(entities), 100)
//	cam := camera.Fit(positions, vp, 40, camera.DefaultMinZoom, camera.DefaultMaxZoom)
//	screen := camera.WorldToScreen(positions[0], cam, vp)
//	id, ok := camera.DetectClick(x, y, points, cam, vp, camera.DefaultHitRadius)
//
// # Concurrency
//
// No package here holds mutable state. The camera is a value: every transform
// returns a new one and the caller stores it as the next state.
package spatial
