package scene

import (
	"github.com/google/uuid"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/depth"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// =============================================================================
// Constants
// =============================================================================

// Realms group somethings at the top level.
const (
	RealmPhysical = "physical"
	RealmMind     = "mind"
)

// Kinds of captured content.
const (
	KindText  = "text"
	KindPhoto = "photo"
	KindVideo = "video"
	KindLink  = "link"
)

// ValidKinds is the set of accepted something kinds. An empty kind is
// treated as text.
var ValidKinds = map[string]bool{
	KindText:  true,
	KindPhoto: true,
	KindVideo: true,
	KindLink:  true,
}

// =============================================================================
// Scene - Input Format
// =============================================================================

// Scene is a collection of somethings to lay out.
type Scene struct {
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	Viewport   *geom.Viewport `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	Somethings []Something    `json:"somethings" yaml:"somethings"`
}

// Something is a captured item. ParentID points at another something in the
// same scene (an abode); empty means it sits at the top level.
type Something struct {
	ID       string   `json:"id" yaml:"id"`
	ParentID string   `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Realm    string   `json:"realm,omitempty" yaml:"realm,omitempty"`
	Care     *float64 `json:"care,omitempty" yaml:"care,omitempty"`
	Content  string   `json:"content,omitempty" yaml:"content,omitempty"`
}

// Len returns the number of somethings.
func (s *Scene) Len() int { return len(s.Somethings) }

// Entities returns the id/parent pairs used for depth calculation.
func (s *Scene) Entities() []depth.Entity {
	out := make([]depth.Entity, len(s.Somethings))
	for i, st := range s.Somethings {
		out[i] = depth.Entity{ID: st.ID, ParentID: st.ParentID}
	}
	return out
}

// Find returns the something with the given id.
func (s *Scene) Find(id string) (Something, bool) {
	for _, st := range s.Somethings {
		if st.ID == id {
			return st, true
		}
	}
	return Something{}, false
}

// AssignMissingIDs gives every something without an id a random UUID and
// returns how many were assigned.
func (s *Scene) AssignMissingIDs() int {
	n := 0
	for i := range s.Somethings {
		if s.Somethings[i].ID == "" {
			s.Somethings[i].ID = uuid.NewString()
			n++
		}
	}
	return n
}

// Validate checks ids, kinds and the optional viewport. Parents that are
// not in the scene are allowed; they make the something a root.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Somethings))
	for i, st := range s.Somethings {
		if err := errors.ValidateEntityID(st.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScene, err, "something %d", i)
		}
		if seen[st.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate id %q", st.ID)
		}
		seen[st.ID] = true

		if st.Kind != "" && !ValidKinds[st.Kind] {
			return errors.New(errors.ErrCodeInvalidScene, "something %q: unknown kind %q", st.ID, st.Kind)
		}
	}
	if s.Viewport != nil {
		if err := errors.ValidateViewport(s.Viewport.Width, s.Viewport.Height); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Layout - Output Format
// =============================================================================

// Layout is a laid-out scene: positioned points and a camera that frames
// them.
type Layout struct {
	Scene       string        `json:"scene,omitempty"`
	Viewport    geom.Viewport `json:"viewport"`
	Camera      camera.Camera `json:"camera"`
	RingSpacing float64       `json:"ring_spacing"`
	Jitter      float64       `json:"jitter,omitempty"`
	Seed        uint64        `json:"seed,omitempty"`
	Rings       int           `json:"rings"`
	Radius      float64       `json:"radius"`
	Points      []Point       `json:"points"`
}

// Point is one positioned something.
type Point struct {
	ID       string   `json:"id"`
	ParentID string   `json:"parent_id,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Realm    string   `json:"realm,omitempty"`
	Content  string   `json:"content,omitempty"`
	Care     *float64 `json:"care,omitempty"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Depth    int      `json:"depth"`
	Ring     int      `json:"ring"`
	Opacity  float64  `json:"opacity"`
}

// Position returns the world position of p.
func (p Point) Position() geom.Position2D { return geom.Position2D{X: p.X, Y: p.Y} }

// Something2D converts p for hit-testing and rendering.
func (p Point) Something2D() geom.Something2D {
	opacity := p.Opacity
	return geom.Something2D{
		ID:      p.ID,
		X:       p.X,
		Y:       p.Y,
		Care:    p.Care,
		Content: p.Content,
		Opacity: &opacity,
	}
}

// Somethings returns every point as a [geom.Something2D] in paint order.
func (l *Layout) Somethings() []geom.Something2D {
	out := make([]geom.Something2D, len(l.Points))
	for i, p := range l.Points {
		out[i] = p.Something2D()
	}
	return out
}

// Positions returns the world position of every point in paint order.
func (l *Layout) Positions() []geom.Position2D {
	out := make([]geom.Position2D, len(l.Points))
	for i, p := range l.Points {
		out[i] = p.Position()
	}
	return out
}

// Find returns the point with the given id.
func (l *Layout) Find(id string) (Point, bool) {
	for _, p := range l.Points {
		if p.ID == id {
			return p, true
		}
	}
	return Point{}, false
}

// MaxDepth returns the deepest point depth, or 0 for an empty layout.
func (l *Layout) MaxDepth() int {
	d := 0
	for _, p := range l.Points {
		d = max(d, p.Depth)
	}
	return d
}
