package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/myreality/pkg/observability"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
	"github.com/matzehuels/myreality/pkg/spatial/mystery"
	"github.com/matzehuels/myreality/pkg/spatial/placement"
)

// =============================================================================
// Scene Loading
// =============================================================================

// LoadScene reads a scene file ("-" for stdin), assigns ids to somethings
// that lack one and validates the result.
func LoadScene(ctx context.Context, path string) (*scene.Scene, error) {
	start := time.Now()
	s, err := scene.ReadFile(path)
	if err == nil {
		s.AssignMissingIDs()
		err = s.Validate()
	}

	count := 0
	if s != nil {
		count = s.Len()
	}
	observability.Pipeline().OnSceneLoad(ctx, path, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// =============================================================================
// Interaction
// =============================================================================

// HitTest returns the point under screen position (x, y) as seen through
// the layout's camera. A radius <= 0 uses [camera.DefaultHitRadius].
func HitTest(l scene.Layout, x, y, radius float64) (scene.Point, bool) {
	return HitTestWith(l, l.Camera, x, y, radius)
}

// HitTestWith is HitTest for a camera that has moved away from the
// layout's fitted one.
func HitTestWith(l scene.Layout, cam camera.Camera, x, y, radius float64) (scene.Point, bool) {
	if radius <= 0 {
		radius = camera.DefaultHitRadius
	}
	id, ok := camera.DetectClick(x, y, l.Somethings(), cam, l.Viewport, radius)
	if !ok {
		return scene.Point{}, false
	}
	return l.Find(id)
}

// Mystery scatters question marks for items over the unexplored map.
// A zero seed draws a fresh arrangement every call.
func Mystery[T any](items []T, seed uint64) []mystery.Distributed[T] {
	if seed == 0 {
		return mystery.Distribute(items)
	}
	return mystery.Distribute(items, mystery.WithSeed(seed))
}

// Place resolves where the content panel for a question mark at pos opens.
func Place(pos mystery.Position, vp geom.Viewport, opts *placement.Options) placement.ContentPosition {
	return placement.Calculate(pos.X, pos.Y, pos.Size, vp, opts)
}
