// Package svg draws a laid-out scene as an SVG image of what the camera
// sees.
//
// Every point is projected through the layout camera into a viewport-sized
// canvas, points off screen are culled, and each visible point becomes a
// circle sized by care, colored by realm and faded by depth. Options add
// parent links, ring guides, labels and a highlighted point.
//
//	data := svg.Render(layout, svg.WithLabels(), svg.WithParentLinks())
package svg
