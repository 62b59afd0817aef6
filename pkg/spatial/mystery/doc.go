// Package mystery scatters question-mark markers over the "Ur Reality" map.
//
// Positions are percentages of the viewport (x and y in 0..100) with a size
// in pixels. One to five markers use fixed, hand-balanced layouts. Six or
// more are drawn at random inside the [10, 90] square with a best-effort
// minimum separation: each marker gets a bounded number of draws and keeps
// the first one that clears every marker already placed, or the last draw
// if none does.
//
//	marks := mystery.Distribute(items, mystery.WithSeed(7))
//	for _, m := range marks {
//		fmt.Println(m.Item, m.Position.X, m.Position.Y, m.Position.Size)
//	}
package mystery
