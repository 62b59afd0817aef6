package geom

import "math"

// Position2D is a point in a 2D plane. All coordinates are in world units
// unless a function documents otherwise.
type Position2D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Position3D is a point in 3D space. Y is the vertical axis.
type Position3D struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Viewport is the pixel size of the drawing surface.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Center returns the pixel center of the viewport.
func (v Viewport) Center() Position2D { return Position2D{X: v.Width / 2, Y: v.Height / 2} }

// Something2D is a positioned point ready for rendering or hit-testing.
// Care and Opacity are optional; nil means unset.
type Something2D struct {
	ID      string   `json:"id" yaml:"id"`
	X       float64  `json:"x" yaml:"x"`
	Y       float64  `json:"y" yaml:"y"`
	Care    *float64 `json:"care" yaml:"care"`
	Content string   `json:"content" yaml:"content"`
	Opacity *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// Position returns the world position of s.
func (s Something2D) Position() Position2D { return Position2D{X: s.X, Y: s.Y} }

// Add returns p translated by q.
func (p Position2D) Add(q Position2D) Position2D { return Position2D{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Position2D) Sub(q Position2D) Position2D { return Position2D{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both coordinates multiplied by f.
func (p Position2D) Scale(f float64) Position2D { return Position2D{X: p.X * f, Y: p.Y * f} }

// Len returns the Euclidean length of p seen as a vector from the origin.
func (p Position2D) Len() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Position2D) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

// Polar converts an angle in degrees and a radius to a Cartesian point around
// the origin. Angle 0 points along +X and angles grow counter-clockwise in a
// Y-up frame.
func Polar(angleDeg, radius float64) Position2D {
	rad := angleDeg * math.Pi / 180
	return Position2D{X: radius * math.Cos(rad), Y: radius * math.Sin(rad)}
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Bounds returns the bounding box of points. The zero BBox is returned for
// an empty slice.
func Bounds(points []Position2D) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	b := BBox{MinX: points[0].X, MaxX: points[0].X, MinY: points[0].Y, MaxY: points[0].Y}
	for _, p := range points[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}

// Width returns the horizontal span of the box.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the box.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the box.
func (b BBox) Center() Position2D {
	return Position2D{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}
