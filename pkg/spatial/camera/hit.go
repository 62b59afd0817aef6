package camera

import (
	"math"

	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// DetectClick returns the id of the last point in input order whose screen
// position lies within hitRadius pixels of (x, y). ok is false when no point
// is close enough.
func DetectClick(x, y float64, points []geom.Something2D, c Camera, vp geom.Viewport, hitRadius float64) (id string, ok bool) {
	for _, p := range points {
		s := WorldToScreen(p.Position(), c, vp)
		if math.Hypot(s.X-x, s.Y-y) <= hitRadius {
			id, ok = p.ID, true
		}
	}
	return id, ok
}
