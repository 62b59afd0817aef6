package placement

import "github.com/matzehuels/myreality/pkg/spatial/geom"

// Layout constants in pixels.
const (
	DefaultMaxWidth        = 400.0
	DefaultEstimatedHeight = 200.0

	// EdgeMargin is the gap kept between the panel and the viewport edge.
	EdgeMargin = 20.0

	// AnchorGap separates the panel from the anchor it belongs to.
	AnchorGap = 10.0
)

// ContentPosition is the top-left corner and width of a panel, in pixels.
type ContentPosition struct {
	Top      float64 `json:"top" yaml:"top"`
	Left     float64 `json:"left" yaml:"left"`
	MaxWidth float64 `json:"max_width" yaml:"max_width"`
}

// Options sizes the panel. Zero fields take the defaults.
type Options struct {
	MaxWidth        float64
	EstimatedHeight float64
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.MaxWidth <= 0 {
		out.MaxWidth = DefaultMaxWidth
	}
	if out.EstimatedHeight <= 0 {
		out.EstimatedHeight = DefaultEstimatedHeight
	}
	return out
}

// Calculate places a panel for an anchor at (xPct, yPct) percent of the
// viewport with the given pixel size. The anchor coordinates are its center.
// A nil opts uses [DefaultMaxWidth] and [DefaultEstimatedHeight].
func Calculate(xPct, yPct, anchorSize float64, vp geom.Viewport, opts *Options) ContentPosition {
	o := opts.withDefaults()

	width := min(o.MaxWidth, vp.Width-2*EdgeMargin)
	centerX := xPct * vp.Width / 100
	anchorTop := yPct*vp.Height/100 - anchorSize/2

	left := centerX - width/2
	if left+width > vp.Width-EdgeMargin {
		left = vp.Width - width - EdgeMargin
	}
	if left < EdgeMargin {
		left = EdgeMargin
	}

	top := anchorTop + anchorSize + AnchorGap
	if top+o.EstimatedHeight > vp.Height-EdgeMargin {
		top = anchorTop - o.EstimatedHeight - AnchorGap
		if top < EdgeMargin {
			top = EdgeMargin
		}
	}

	return ContentPosition{Top: top, Left: left, MaxWidth: width}
}

// Anchor returns the pixel center of an anchor given in viewport percent.
func Anchor(xPct, yPct float64, vp geom.Viewport) geom.Position2D {
	return geom.Position2D{X: xPct * vp.Width / 100, Y: yPct * vp.Height / 100}
}
