package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// Defaults for [Render].
const (
	DefaultPointSize  = 18.0
	DefaultBackground = "#0f1020"
	cullMargin        = 40.0
	labelFontSize     = 12.0
	labelMaxRunes     = 24
)

// RealmColors maps realms to fill colors. Unknown realms use [OtherColor].
var RealmColors = map[string]string{
	scene.RealmPhysical: "#5cb85c",
	scene.RealmMind:     "#8e7cf0",
}

// OtherColor fills points without a known realm.
const OtherColor = "#c9c9d6"

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	cam         *camera.Camera
	labels      bool
	parentLinks bool
	rings       bool
	background  string
	pointSize   float64
	highlight   string
}

// WithCamera overrides the layout camera.
func WithCamera(c camera.Camera) Option { return func(r *renderer) { r.cam = &c } }

// WithLabels writes each point's content (or id) beside it.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithParentLinks draws a line from every point to its parent.
func WithParentLinks() Option { return func(r *renderer) { r.parentLinks = true } }

// WithRings draws the lattice ring guides.
func WithRings() Option { return func(r *renderer) { r.rings = true } }

// WithBackground sets the background fill. An empty color leaves it
// transparent.
func WithBackground(color string) Option { return func(r *renderer) { r.background = color } }

// WithPointSize sets the base point radius in pixels at zoom 1.
func WithPointSize(px float64) Option {
	return func(r *renderer) {
		if px > 0 {
			r.pointSize = px
		}
	}
}

// WithHighlight outlines the point with the given id.
func WithHighlight(id string) Option { return func(r *renderer) { r.highlight = id } }

// Render draws l and returns the SVG document.
func Render(l scene.Layout, opts ...Option) []byte {
	r := renderer{background: DefaultBackground, pointSize: DefaultPointSize}
	for _, opt := range opts {
		opt(&r)
	}

	cam := l.Camera
	if r.cam != nil {
		cam = *r.cam
	}
	if cam.Zoom == 0 {
		cam.Zoom = 1
	}
	vp := l.Viewport

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.Width, vp.Height, vp.Width, vp.Height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escape(r.background))
	}

	if r.rings {
		renderRings(&buf, l, cam)
	}
	if r.parentLinks {
		renderLinks(&buf, l, cam)
	}

	for _, p := range l.Points {
		if !camera.Visible(p.Position(), cam, vp, cullMargin) {
			continue
		}
		renderPoint(&buf, &r, p, cam, vp)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderRings(buf *bytes.Buffer, l scene.Layout, cam camera.Camera) {
	c := camera.WorldToScreen(geom.Position2D{}, cam, l.Viewport)
	for k := 1; k <= l.Rings; k++ {
		fmt.Fprintf(buf, `  <circle class="ring" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="#ffffff" stroke-opacity="0.08" stroke-dasharray="4 6"/>`+"\n",
			c.X, c.Y, float64(k)*l.RingSpacing*cam.Zoom)
	}
}

func renderLinks(buf *bytes.Buffer, l scene.Layout, cam camera.Camera) {
	index := make(map[string]scene.Point, len(l.Points))
	for _, p := range l.Points {
		index[p.ID] = p
	}
	for _, p := range l.Points {
		parent, ok := index[p.ParentID]
		if p.ParentID == "" || !ok {
			continue
		}
		a := camera.WorldToScreen(p.Position(), cam, l.Viewport)
		b := camera.WorldToScreen(parent.Position(), cam, l.Viewport)
		fmt.Fprintf(buf, `  <line class="link" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#ffffff" stroke-opacity="%.2f" stroke-width="1"/>`+"\n",
			a.X, a.Y, b.X, b.Y, 0.25*p.Opacity)
	}
}

func renderPoint(buf *bytes.Buffer, r *renderer, p scene.Point, cam camera.Camera, vp geom.Viewport) {
	s := camera.WorldToScreen(p.Position(), cam, vp)
	radius := PointRadius(r.pointSize, p.Care, cam.Zoom)

	stroke := ""
	if p.ID == r.highlight {
		stroke = ` stroke="#ffd54a" stroke-width="3"`
	}
	fmt.Fprintf(buf, `  <circle id="p-%s" class="something" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.2f"%s/>`+"\n",
		escape(p.ID), s.X, s.Y, radius, colorFor(p.Realm), p.Opacity, stroke)

	if r.labels {
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.0f" fill="#e8e8f0" fill-opacity="%.2f">%s</text>`+"\n",
			s.X+radius+4, s.Y+labelFontSize/3, labelFontSize, p.Opacity, escape(Label(p)))
	}
}

// PointRadius scales a base radius by care and zoom. A nil care counts as
// 0.5; care is clamped to [0, 1].
func PointRadius(base float64, care *float64, zoom float64) float64 {
	c := 0.5
	if care != nil {
		c = max(0, min(1, *care))
	}
	return base * (0.6 + 0.8*c) * zoom
}

// Label returns the display text for p: its content truncated with an
// ellipsis, or its id when there is no content.
func Label(p scene.Point) string {
	text := p.Content
	if text == "" {
		text = p.ID
	}
	runes := []rune(text)
	if len(runes) > labelMaxRunes {
		return string(runes[:labelMaxRunes-1]) + "…"
	}
	return text
}

func colorFor(realm string) string {
	if c, ok := RealmColors[realm]; ok {
		return c
	}
	return OtherColor
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
