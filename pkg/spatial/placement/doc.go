// Package placement positions a floating content panel next to an on-screen
// anchor such as a question mark.
//
// The panel goes below the anchor, horizontally centered on it, and is then
// pushed back inside the viewport: away from the right edge first, then the
// left edge. If it would run off the bottom it flips above the anchor, and
// if that runs off the top it is pinned to the top margin.
package placement
