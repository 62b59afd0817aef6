// Package pkg provides the core libraries for the My Reality spatial view.
//
// # Overview
//
// My Reality places a person's captured "somethings" (photos, notes, videos,
// links) on a 2D map: roots in the middle, descendants on hexagonal rings
// further out, and a camera the viewer pans and zooms. The pkg directory is
// organized into these areas:
//
//  1. [spatial] - Pure geometry (depth, lattice, camera, mystery, placement)
//  2. [animation] - Time-sampled flight and fade effects
//  3. [scene] - Wire types for scenes and computed layouts
//  4. [pipeline] - Orchestration (scene → layout → render) with caching
//  5. [render] - SVG, Graphviz and format conversion
//
// # Architecture
//
// The typical data flow:
//
//	scene file (YAML/JSON)
//	         ↓
//	    [scene] package (decode, assign ids, validate)
//	         ↓
//	    [spatial/depth] package (depth over the parent chain)
//	         ↓
//	    [spatial/lattice] package (hexagonal ring positions)
//	         ↓
//	    [spatial/camera] package (fit, pan, zoom, hit-test)
//	         ↓
//	    SVG/PNG/PDF/JSON/DOT output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/myreality/pkg/pipeline"
//	)
//
//	s, _ := pipeline.LoadScene(ctx, "today.yaml")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, _ := runner.Execute(ctx, s, pipeline.Options{Formats: []string{"svg"}})
//	os.WriteFile("today.svg", res.Artifacts["svg"], 0o644)
//
// # Main Packages
//
// [spatial] - Stateless helpers shared by every host. Everything is a pure
// function of its inputs; randomized helpers take a seed.
//
// [cache] - File, Redis and null caches for layouts and rendered artifacts.
//
// [config] - Optional TOML configuration merged under CLI flags.
//
// [errors] - Coded errors with user-facing messages and exit codes.
//
// [observability] - Hooks for pipeline, cache and scene events.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/spatial/...   # Geometry only
//	go test -run Example        # Examples only
//
// [spatial]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/spatial
// [spatial/depth]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/spatial/depth
// [spatial/lattice]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/spatial/lattice
// [spatial/camera]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/spatial/camera
// [animation]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/animation
// [scene]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/scene
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/myreality/pkg/observability
package pkg
