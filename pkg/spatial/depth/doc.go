// Package depth computes nesting depth over a flat, parent-linked collection.
//
// Somethings may be merged into abodes, and abodes into other abodes. The
// result is a forest described only by parent references:
//
//	items := []depth.Entity{
//	    {ID: "home"},
//	    {ID: "kitchen", ParentID: "home"},
//	    {ID: "fridge", ParentID: "kitchen"},
//	}
//	depth.Calculate("fridge", items) // 2
//
// # Malformed input
//
// Parent links are not validated. A parent that is missing from the
// collection makes its child a root. Cycles are tolerated: the upward walk is
// capped at [MaxSteps] and a warning is logged when the cap is reached. The
// depth reached so far is returned; it is never an error.
package depth
