package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/render"
	"github.com/matzehuels/myreality/pkg/render/svg"
	"github.com/matzehuels/myreality/pkg/render/treeview"
	"github.com/matzehuels/myreality/pkg/scene"
)

// pngScale is the rasterization factor for PNG output.
const pngScale = 2.0

// Render generates output artifacts in the requested formats.
//
// SVG is drawn once and shared by the PNG and PDF conversions, which need
// rsvg-convert on PATH. The tree format lays out the parent chain with
// Graphviz instead of the lattice.
func Render(ctx context.Context, l scene.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var sceneSVG []byte
	drawSVG := func() []byte {
		if sceneSVG == nil {
			sceneSVG = svg.Render(l, buildSVGOptions(opts)...)
		}
		return sceneSVG
	}

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error
		switch format {
		case FormatSVG:
			data = drawSVG()
		case FormatPNG:
			data, err = render.ToPNG(drawSVG(), pngScale)
		case FormatPDF:
			data, err = render.ToPDF(drawSVG())
		case FormatJSON:
			data, err = scene.MarshalLayout(l)
		case FormatDOT:
			data = []byte(treeview.ToDOT(l, treeview.Options{Detailed: opts.Detailed}))
		case FormatTree:
			data, err = treeview.RenderSVG(ctx, treeview.ToDOT(l, treeview.Options{Detailed: opts.Detailed}))
		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) []svg.Option {
	var out []svg.Option
	if opts.Labels {
		out = append(out, svg.WithLabels())
	}
	if opts.ParentLinks {
		out = append(out, svg.WithParentLinks())
	}
	if opts.Rings {
		out = append(out, svg.WithRings())
	}
	if opts.Background != "" {
		out = append(out, svg.WithBackground(opts.Background))
	}
	if opts.PointSize > 0 {
		out = append(out, svg.WithPointSize(opts.PointSize))
	}
	if opts.Highlight != "" {
		out = append(out, svg.WithHighlight(opts.Highlight))
	}
	return out
}
