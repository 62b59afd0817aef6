// Package render turns laid-out scenes into images.
//
// # Overview
//
//   - [svg]: the camera view of a layout as SVG
//   - [treeview]: the parent tree of a layout as a Graphviz diagram
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg).
//
//	data := svg.Render(layout)
//	pdf, err := render.ToPDF(data)
//	png, err := render.ToPNG(data, 2.0)  // 2x scale
//
// [svg]: github.com/matzehuels/myreality/pkg/render/svg
// [treeview]: github.com/matzehuels/myreality/pkg/render/treeview
package render
