// Package geom defines the value types shared by the spatial packages.
//
// Positions carry no identity: they are plain coordinate pairs and triples
// copied by value. [Something2D] is the one positioned, renderable record; it
// is built by callers for each render or hit-test pass and never mutated here.
//
// The package also provides the top-down projection used when a 3D lattice is
// shown on the 2D canvas:
//
//	flat := geom.Flatten3DTo2D(geom.Position3D{X: 1, Y: 5, Z: 2}) // {1, 2}
package geom
