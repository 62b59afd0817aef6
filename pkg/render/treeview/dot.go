package treeview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/myreality/pkg/scene"
)

// Options configures diagram generation.
type Options struct {
	// Detailed adds depth, ring and realm to node labels.
	Detailed bool
}

// ToDOT converts the parent tree of l to Graphviz DOT.
func ToDOT(l scene.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	known := make(map[string]bool, len(l.Points))
	for _, p := range l.Points {
		known[p.ID] = true
	}

	for _, p := range l.Points {
		fmt.Fprintf(&buf, "  %q [%s];\n", p.ID, strings.Join(fmtAttrs(p, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, p := range l.Points {
		if p.ParentID != "" && known[p.ParentID] {
			fmt.Fprintf(&buf, "  %q -> %q;\n", p.ParentID, p.ID)
		}
	}

	for d, ids := range byDepth(l) {
		if len(ids) < 2 {
			continue
		}
		quoted := make([]string, len(ids))
		for i, id := range ids {
			quoted[i] = strconv.Quote(id)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; } // depth %d\n", strings.Join(quoted, "; "), d)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func byDepth(l scene.Layout) [][]string {
	out := make([][]string, l.MaxDepth()+1)
	for _, p := range l.Points {
		out[p.Depth] = append(out[p.Depth], p.ID)
	}
	return out
}

func fmtLabel(p scene.Point, detailed bool) string {
	label := p.Content
	if label == "" {
		label = p.ID
	}
	if !detailed {
		return label
	}
	parts := []string{
		fmt.Sprintf("depth: %d", p.Depth),
		fmt.Sprintf("ring: %d", p.Ring),
	}
	if p.Realm != "" {
		parts = append(parts, "realm: "+p.Realm)
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p scene.Point, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(p, detailed))}
	if p.Depth == 0 {
		attrs = append(attrs, "penwidth=2")
	}
	if p.Opacity < 1 {
		attrs = append(attrs, fmt.Sprintf("fontcolor=\"#000000%02x\"", alpha(p.Opacity)))
	}
	return attrs
}

func alpha(opacity float64) int {
	return int(max(0, min(1, opacity))*255 + 0.5)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a
// pixel-sized one so the diagram scales like the scene renderer output.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
