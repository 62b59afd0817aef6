// Package treeview draws the parent tree of a layout as a node-link
// diagram.
//
// Abodes sit above the somethings they hold, one rank per depth. The
// diagram is produced as Graphviz DOT and rendered in-process with
// [github.com/goccy/go-graphviz]:
//
//	dot := treeview.ToDOT(layout, treeview.Options{})
//	svg, err := treeview.RenderSVG(ctx, dot)
//
// Nodes whose parent is missing from the layout are drawn as roots, and
// cyclic parent links are drawn as they are without breaking the diagram.
package treeview
