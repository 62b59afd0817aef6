package camera

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// TestTransformProperties checks camera invariants over generated inputs.
func TestTransformProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("screenToWorld inverts worldToScreen", prop.ForAll(
		func(wx, wy, cx, cy, zoom, w, h float64) bool {
			c := Camera{X: cx, Y: cy, Zoom: zoom}
			vp := geom.Viewport{Width: w, Height: h}
			s := WorldToScreen(geom.Position2D{X: wx, Y: wy}, c, vp)
			back := ScreenToWorld(s.X, s.Y, c, vp)
			return math.Abs(back.X-wx) <= 1e-6 && math.Abs(back.Y-wy) <= 1e-6
		},
		gen.Float64Range(-1e5, 1e5),
		gen.Float64Range(-1e5, 1e5),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(DefaultMinZoom, DefaultMaxZoom),
		gen.Float64Range(1, 4000),
		gen.Float64Range(1, 4000),
	))

	properties.Property("zoom stays within bounds", prop.ForAll(
		func(zoom, delta float64) bool {
			z := Zoom(Camera{Zoom: zoom}, delta).Zoom
			return z >= DefaultMinZoom && z <= DefaultMaxZoom
		},
		gen.Float64Range(-10, 10),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.Property("pan is undone by the opposite pan", prop.ForAll(
		func(cx, cy, zoom, dx, dy float64) bool {
			c := Camera{X: cx, Y: cy, Zoom: zoom}
			back := Pan(Pan(c, dx, dy), -dx, -dy)
			return math.Abs(back.X-cx) <= 1e-6 && math.Abs(back.Y-cy) <= 1e-6 && back.Zoom == zoom
		},
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(-1e4, 1e4),
		gen.Float64Range(DefaultMinZoom, DefaultMaxZoom),
		gen.Float64Range(-2000, 2000),
		gen.Float64Range(-2000, 2000),
	))

	properties.TestingRun(t)
}
