package pipeline

import (
	"slices"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/depth"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
	"github.com/matzehuels/myreality/pkg/spatial/lattice"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout places every something of s on the hexagonal lattice.
//
// Somethings are ordered by depth, ties keeping scene order, so roots take
// the center and the innermost rings and descendants spread outward. Each
// point fades by the depth fade per level down to [MinOpacity]. The returned
// camera frames all points inside the viewport.
func GenerateLayout(s *scene.Scene, opts Options) (scene.Layout, error) {
	if s == nil {
		return scene.Layout{}, errors.New(errors.ErrCodeInvalidScene, "nil scene")
	}
	opts.UseSceneViewport(s)
	if err := opts.ValidateForLayout(); err != nil {
		return scene.Layout{}, err
	}
	vp := opts.Viewport()
	if err := errors.ValidateViewport(vp.Width, vp.Height); err != nil {
		return scene.Layout{}, err
	}

	depths := depth.CalculateAll(s.Entities(), depth.WithLogger(opts.Logger))

	order := make([]int, s.Len())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return depths[s.Somethings[a].ID] - depths[s.Somethings[b].ID]
	})

	positions := lattice.Distribute(len(order), opts.RingSpacing)
	if opts.Randomize && opts.Jitter > 0 {
		positions = lattice.AddJitter(positions, opts.Jitter, opts.Seed)
	}

	points := make([]scene.Point, len(order))
	for slot, idx := range order {
		st := s.Somethings[idx]
		d := depths[st.ID]
		ring, _ := lattice.RingOf(slot)
		points[slot] = scene.Point{
			ID:       st.ID,
			ParentID: st.ParentID,
			Kind:     st.Kind,
			Realm:    st.Realm,
			Content:  st.Content,
			Care:     st.Care,
			X:        positions[slot].X,
			Y:        positions[slot].Y,
			Depth:    d,
			Ring:     ring,
			Opacity:  DepthOpacity(d, *opts.DepthFade),
		}
	}

	l := scene.Layout{
		Scene:       s.Name,
		Viewport:    vp,
		Camera:      camera.Fit(positions, vp, *opts.Padding, opts.MinZoom, opts.MaxZoom),
		RingSpacing: opts.RingSpacing,
		Seed:        opts.Seed,
		Rings:       max(0, lattice.RingCount(len(points))-1),
		Radius:      reach(positions),
		Points:      points,
	}
	if opts.Randomize {
		l.Jitter = opts.Jitter
	}

	opts.Logger.Debug("layout generated",
		"scene", s.Name,
		"somethings", len(points),
		"rings", l.Rings,
		"zoom", l.Camera.Zoom)
	return l, nil
}

// DepthOpacity is the opacity of a point d levels below its root.
func DepthOpacity(d int, fade float64) float64 {
	return max(MinOpacity, 1-float64(d)*fade)
}

// reach is the largest distance of any position from the origin.
func reach(positions []geom.Position2D) float64 {
	var r float64
	for _, p := range positions {
		r = max(r, geom.Distance(p, geom.Position2D{}))
	}
	return r
}
