package pipeline

import (
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/depth"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

func quiet() *log.Logger { return log.New(io.Discard) }

func ptr(f float64) *float64 { return &f }

// morning is a small scene whose input order differs from depth order.
func morning() *scene.Scene {
	return &scene.Scene{
		Name: "morning",
		Somethings: []scene.Something{
			{ID: "cup", ParentID: "tea", Kind: scene.KindPhoto, Realm: scene.RealmPhysical, Care: ptr(0.9)},
			{ID: "home", Realm: scene.RealmPhysical},
			{ID: "tea", ParentID: "home", Kind: scene.KindText, Content: "green tea"},
			{ID: "work", Realm: scene.RealmMind},
		},
	}
}

func TestGenerateLayoutOrdersByDepth(t *testing.T) {
	l, err := GenerateLayout(morning(), Options{Logger: quiet()})
	require.NoError(t, err)
	require.Len(t, l.Points, 4)

	var ids []string
	for _, p := range l.Points {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"home", "work", "tea", "cup"}, ids)

	assert.Equal(t, 0.0, l.Points[0].X)
	assert.Equal(t, 0.0, l.Points[0].Y)
	assert.InDelta(t, DefaultRingSpacing, l.Points[1].X, 1e-9)
	assert.InDelta(t, 0, l.Points[1].Y, 1e-9)
	assert.Equal(t, 0, l.Points[0].Ring)
	assert.Equal(t, 1, l.Points[3].Ring)
}

func TestGenerateLayoutCarriesFields(t *testing.T) {
	l, err := GenerateLayout(morning(), Options{Logger: quiet()})
	require.NoError(t, err)

	cup, ok := l.Find("cup")
	require.True(t, ok)
	assert.Equal(t, "tea", cup.ParentID)
	assert.Equal(t, scene.KindPhoto, cup.Kind)
	assert.Equal(t, 2, cup.Depth)
	require.NotNil(t, cup.Care)
	assert.Equal(t, 0.9, *cup.Care)

	tea, _ := l.Find("tea")
	assert.Equal(t, "green tea", tea.Content)
	assert.Equal(t, 1, tea.Depth)

	assert.Equal(t, "morning", l.Scene)
	assert.Equal(t, DefaultRingSpacing, l.RingSpacing)
	assert.Equal(t, 1, l.Rings)
	assert.InDelta(t, DefaultRingSpacing, l.Radius, 1e-9)
	assert.Equal(t, 2, l.MaxDepth())
}

func TestGenerateLayoutOpacity(t *testing.T) {
	l, err := GenerateLayout(morning(), Options{Logger: quiet()})
	require.NoError(t, err)

	want := map[string]float64{"home": 1, "work": 1, "tea": 0.85, "cup": 0.7}
	for _, p := range l.Points {
		assert.InDelta(t, want[p.ID], p.Opacity, 1e-9, p.ID)
	}
}

func TestGenerateLayoutZeroFadeKept(t *testing.T) {
	l, err := GenerateLayout(morning(), Options{DepthFade: Float(0), Logger: quiet()})
	require.NoError(t, err)

	for _, p := range l.Points {
		assert.InDelta(t, 1.0, p.Opacity, 1e-9, "%s at depth %d", p.ID, p.Depth)
	}
}

func TestGenerateLayoutZeroPaddingKept(t *testing.T) {
	s := &scene.Scene{Somethings: []scene.Something{{ID: "a"}, {ID: "b"}}}
	opts := Options{Width: 400, Height: 400, MaxZoom: 10, Padding: Float(0), Logger: quiet()}

	l, err := GenerateLayout(s, opts)
	require.NoError(t, err)

	// a and b sit 100 apart, so each is 50 from the centroid.
	assert.InDelta(t, 200.0/50, l.Camera.Zoom, 1e-9)

	opts.Padding = nil
	l, err = GenerateLayout(s, opts)
	require.NoError(t, err)
	assert.InDelta(t, (200-DefaultPadding)/50, l.Camera.Zoom, 1e-9)
}

func TestDepthOpacity(t *testing.T) {
	tests := []struct {
		depth int
		fade  float64
		want  float64
	}{
		{0, 0.15, 1},
		{1, 0.15, 0.85},
		{4, 0.15, 0.4},
		{10, 0.15, MinOpacity},
		{depth.MaxSteps, 0.5, MinOpacity},
		{3, 0, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, DepthOpacity(tt.depth, tt.fade), 1e-9, "depth %d fade %v", tt.depth, tt.fade)
	}
}

func TestGenerateLayoutFitsCamera(t *testing.T) {
	opts := Options{Width: 800, Height: 600, Logger: quiet()}
	s := &scene.Scene{}
	for i := range 40 {
		s.Somethings = append(s.Somethings, scene.Something{ID: fmt.Sprintf("s%d", i)})
	}

	l, err := GenerateLayout(s, opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, l.Camera.Zoom, camera.DefaultMinZoom)
	assert.LessOrEqual(t, l.Camera.Zoom, camera.DefaultMaxZoom)
	for _, p := range l.Points {
		sp := camera.WorldToScreen(p.Position(), l.Camera, l.Viewport)
		assert.True(t, sp.X >= 0 && sp.X <= 800 && sp.Y >= 0 && sp.Y <= 600, "%s off screen at %+v", p.ID, sp)
	}
}

func TestGenerateLayoutJitter(t *testing.T) {
	base, err := GenerateLayout(morning(), Options{Logger: quiet()})
	require.NoError(t, err)

	opts := Options{Randomize: true, Seed: 9, Logger: quiet()}
	a, err := GenerateLayout(morning(), opts)
	require.NoError(t, err)
	b, err := GenerateLayout(morning(), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Points, b.Points, "same seed, same layout")
	assert.Equal(t, DefaultJitterRatio*DefaultRingSpacing, a.Jitter)

	half := a.Jitter / 2
	for i := range a.Points {
		assert.LessOrEqual(t, math.Abs(a.Points[i].X-base.Points[i].X), half)
		assert.LessOrEqual(t, math.Abs(a.Points[i].Y-base.Points[i].Y), half)
	}
	assert.Zero(t, base.Jitter)
}

func TestGenerateLayoutCycleTerminates(t *testing.T) {
	s := &scene.Scene{Somethings: []scene.Something{
		{ID: "a", ParentID: "b"},
		{ID: "b", ParentID: "a"},
		{ID: "root"},
	}}

	l, err := GenerateLayout(s, Options{Logger: quiet()})
	require.NoError(t, err)
	assert.Equal(t, "root", l.Points[0].ID)
	for _, p := range l.Points[1:] {
		assert.Equal(t, depth.MaxSteps, p.Depth)
		assert.Equal(t, MinOpacity, p.Opacity)
	}
}

func TestGenerateLayoutEmptyScene(t *testing.T) {
	l, err := GenerateLayout(&scene.Scene{}, Options{Logger: quiet()})
	require.NoError(t, err)
	assert.Empty(t, l.Points)
	assert.Equal(t, 0, l.Rings)
	assert.Equal(t, camera.DefaultMaxZoom, l.Camera.Zoom)
}

func TestGenerateLayoutErrors(t *testing.T) {
	_, err := GenerateLayout(nil, Options{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidScene))

	_, err = GenerateLayout(morning(), Options{Width: -10})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestGenerateLayoutUsesSceneViewport(t *testing.T) {
	s := morning()
	s.Viewport = &geomViewport390
	l, err := GenerateLayout(s, Options{Logger: quiet()})
	require.NoError(t, err)
	assert.Equal(t, geomViewport390, l.Viewport)
}

var geomViewport390 = geom.Viewport{Width: 390, Height: 844}
