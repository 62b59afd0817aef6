// Package animation samples the fly-in and fade transitions used when the
// view moves between items.
//
// Transitions are plain values sampled at an elapsed duration. There is no
// timer or goroutine: a host calls Sample on each frame and stops calling it
// to cancel.
package animation

import (
	"time"

	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// DefaultFlight is the fly-in duration used by the explorer.
const DefaultFlight = 600 * time.Millisecond

// VisualState is a sampled frame of a [Flight].
type VisualState struct {
	Position geom.Position2D
	Opacity  float64
	Progress float64
	Done     bool
}

// Flight moves an item from From to To over Duration with cubic
// ease-in-out. FadeIn and FadeOut are the lengths of the opacity ramps at
// either end; zero disables a ramp.
type Flight struct {
	From     geom.Position2D
	To       geom.Position2D
	Duration time.Duration
	FadeIn   time.Duration
	FadeOut  time.Duration
}

// Sample returns the state of f after elapsed.
func (f Flight) Sample(elapsed time.Duration) VisualState {
	t := progress(elapsed, f.Duration)
	e := EaseInOutCubic(t)

	opacity := 1.0
	if f.FadeIn > 0 && elapsed < f.FadeIn {
		opacity = min(opacity, progress(elapsed, f.FadeIn))
	}
	if f.FadeOut > 0 && f.Duration > 0 {
		if left := f.Duration - elapsed; left < f.FadeOut {
			opacity = min(opacity, progress(left, f.FadeOut))
		}
	}

	return VisualState{
		Position: geom.Position2D{
			X: f.From.X + (f.To.X-f.From.X)*e,
			Y: f.From.Y + (f.To.Y-f.From.Y)*e,
		},
		Opacity:  opacity,
		Progress: t,
		Done:     t >= 1,
	}
}

// Fade interpolates opacity linearly from From to To over Duration.
type Fade struct {
	Duration time.Duration
	From     float64
	To       float64
}

// Sample returns the opacity after elapsed.
func (f Fade) Sample(elapsed time.Duration) float64 {
	t := progress(elapsed, f.Duration)
	return f.From + (f.To-f.From)*t
}

// Done reports whether the fade has finished after elapsed.
func (f Fade) Done(elapsed time.Duration) bool {
	return elapsed >= f.Duration
}

// EaseInOutCubic maps t in [0, 1] to an eased value in [0, 1].
func EaseInOutCubic(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return 4 * t * t * t
	default:
		u := -2*t + 2
		return 1 - u*u*u/2
	}
}

// progress returns elapsed/total clamped to [0, 1]. A non-positive total is
// already complete.
func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return max(0, min(1, float64(elapsed)/float64(total)))
}
