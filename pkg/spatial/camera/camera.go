package camera

import (
	"math"

	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// Zoom limits and step size.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 2.0

	// ZoomSensitivity converts wheel delta to a multiplicative zoom step:
	// factor = exp(delta * ZoomSensitivity).
	ZoomSensitivity = 0.001
)

// DefaultHitRadius is the on-screen click tolerance in pixels.
const DefaultHitRadius = 20.0

// Camera is the world-space focus point and scale of a 2D view.
type Camera struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Zoom float64 `json:"zoom" yaml:"zoom"`
}

// Default returns a camera focused on the origin at zoom 1.
func Default() Camera { return Camera{Zoom: 1} }

// Focus returns the world point the camera looks at.
func (c Camera) Focus() geom.Position2D { return geom.Position2D{X: c.X, Y: c.Y} }

// WorldToScreen converts a world position to screen pixels.
func WorldToScreen(p geom.Position2D, c Camera, vp geom.Viewport) geom.Position2D {
	return geom.Position2D{
		X: vp.Width/2 + (p.X-c.X)*c.Zoom,
		Y: vp.Height/2 + (p.Y-c.Y)*c.Zoom,
	}
}

// ScreenToWorld converts screen pixels back to a world position.
func ScreenToWorld(x, y float64, c Camera, vp geom.Viewport) geom.Position2D {
	return geom.Position2D{
		X: (x-vp.Width/2)/c.Zoom + c.X,
		Y: (y-vp.Height/2)/c.Zoom + c.Y,
	}
}

// Pan moves the camera opposite to a screen-space drag. The delta is divided
// by zoom so a drag covers the same screen distance at any zoom level.
func Pan(c Camera, dx, dy float64) Camera {
	return Camera{
		X:    c.X - dx/c.Zoom,
		Y:    c.Y - dy/c.Zoom,
		Zoom: c.Zoom,
	}
}

// Zoom applies a wheel delta within [DefaultMinZoom, DefaultMaxZoom].
func Zoom(c Camera, delta float64) Camera {
	return ZoomWithin(c, delta, DefaultMinZoom, DefaultMaxZoom)
}

// ZoomWithin applies a wheel delta and clamps the result to [minZoom, maxZoom].
// A positive delta zooms in and a negative delta zooms out.
func ZoomWithin(c Camera, delta, minZoom, maxZoom float64) Camera {
	z := c.Zoom * math.Exp(delta*ZoomSensitivity)
	if math.IsNaN(z) {
		z = c.Zoom
	}
	c.Zoom = clamp(z, minZoom, maxZoom)
	return c
}

// ZoomAt zooms like [ZoomWithin] but keeps the world point under the screen
// position (sx, sy) fixed.
func ZoomAt(c Camera, delta, sx, sy float64, vp geom.Viewport, minZoom, maxZoom float64) Camera {
	anchor := ScreenToWorld(sx, sy, c, vp)
	next := ZoomWithin(c, delta, minZoom, maxZoom)
	// Re-center so anchor maps back to (sx, sy).
	next.X = anchor.X - (sx-vp.Width/2)/next.Zoom
	next.Y = anchor.Y - (sy-vp.Height/2)/next.Zoom
	return next
}

// Centroid returns the arithmetic mean of points, or the origin when points
// is empty.
func Centroid(points []geom.Position2D) geom.Position2D {
	if len(points) == 0 {
		return geom.Position2D{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return geom.Position2D{X: sx / n, Y: sy / n}
}

// Fit returns a camera centered on the centroid of points with the largest
// zoom in [minZoom, maxZoom] that keeps every point at least padding pixels
// inside the viewport.
func Fit(points []geom.Position2D, vp geom.Viewport, padding, minZoom, maxZoom float64) Camera {
	center := Centroid(points)
	var reach float64
	for _, p := range points {
		reach = max(reach, geom.Distance(p, center))
	}

	zoom := maxZoom
	half := min(vp.Width, vp.Height)/2 - padding
	if reach > 0 && half > 0 {
		zoom = half / reach
	}
	return Camera{X: center.X, Y: center.Y, Zoom: clamp(zoom, minZoom, maxZoom)}
}

// Visible reports whether p lands on screen, allowing margin pixels beyond
// each edge.
func Visible(p geom.Position2D, c Camera, vp geom.Viewport, margin float64) bool {
	s := WorldToScreen(p, c, vp)
	return s.X >= -margin && s.X <= vp.Width+margin &&
		s.Y >= -margin && s.Y <= vp.Height+margin
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
