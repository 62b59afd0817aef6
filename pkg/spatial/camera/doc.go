// Package camera maps between world and screen space and moves a 2D camera.
//
// A [Camera] is a world-space focus point plus a zoom factor. The focus point
// always sits at the viewport center:
//
//	screen.X = vp.Width/2  + (world.X - cam.X) * cam.Zoom
//	screen.Y = vp.Height/2 + (world.Y - cam.Y) * cam.Zoom
//
// [ScreenToWorld] is the exact inverse of [WorldToScreen]. [Pan] and [Zoom]
// never modify their input; they return the next camera, and the caller keeps
// it as state between input events.
//
// # Hit-testing
//
// [DetectClick] compares pointer coordinates with every point in screen
// space. The radius is in pixels and does not scale with zoom. When points
// overlap, the last one in input order wins, matching paint order where
// later points are drawn on top.
package camera
