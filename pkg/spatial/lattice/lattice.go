package lattice

import "github.com/matzehuels/myreality/pkg/spatial/geom"

// CircleRadiusRatio is the world radius per unit of bound used by
// [CircleRadius].
const CircleRadiusRatio = 50.0

// PointsInRing returns how many lattice points ring k holds.
func PointsInRing(k int) int {
	if k <= 0 {
		return 1
	}
	return 6 * k
}

// RingOf returns the ring that the i-th produced position lies on, and its
// index within that ring.
func RingOf(i int) (ring, slot int) {
	if i <= 0 {
		return 0, 0
	}
	i-- // skip the center
	ring = 1
	for i >= PointsInRing(ring) {
		i -= PointsInRing(ring)
		ring++
	}
	return ring, i
}

// RingCount returns how many rings, center included, are needed for count
// items.
func RingCount(count int) int {
	if count <= 0 {
		return 0
	}
	ring, _ := RingOf(count - 1)
	return ring + 1
}

// Distribute returns count positions on the hexagonal lattice with the given
// ring spacing. The first position is always the origin.
func Distribute(count int, ringSpacing float64) []geom.Position2D {
	if count <= 0 {
		return []geom.Position2D{}
	}

	positions := make([]geom.Position2D, 0, count)
	positions = append(positions, geom.Position2D{})

	for ring := 1; len(positions) < count; ring++ {
		n := PointsInRing(ring)
		radius := float64(ring) * ringSpacing
		step := 360.0 / float64(n)
		for j := 0; j < n && len(positions) < count; j++ {
			positions = append(positions, geom.Polar(float64(j)*step, radius))
		}
	}
	return positions
}

// CircleRadius returns the radius of a circle sized for maxBound, a linear
// measure of how far the layout extends (for example its ring count).
func CircleRadius(maxBound float64) float64 {
	return CircleRadiusRatio * maxBound
}
