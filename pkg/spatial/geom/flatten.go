package geom

// Flatten3DTo2D projects p onto the ground plane for a top-down view. The
// vertical Y axis is dropped and Z becomes the 2D Y.
func Flatten3DTo2D(p Position3D) Position2D {
	return Position2D{X: p.X, Y: p.Z}
}

// FlattenPositions applies [Flatten3DTo2D] to every position, preserving
// order and length. A nil input yields an empty, non-nil slice.
func FlattenPositions(ps []Position3D) []Position2D {
	out := make([]Position2D, len(ps))
	for i, p := range ps {
		out[i] = Flatten3DTo2D(p)
	}
	return out
}
