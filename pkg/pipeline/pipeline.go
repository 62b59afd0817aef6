// Package pipeline turns scenes into layouts and layouts into artifacts.
//
// This package implements the load → layout → render flow shared by every
// myreality command, so the CLI and any other host lay out and draw scenes
// identically.
//
// # Architecture
//
//  1. Load: read a scene file, assign missing ids and validate it
//  2. Layout: compute depths, place somethings on the hexagonal lattice and
//     fit a camera (see [GenerateLayout])
//  3. Render: draw the layout as SVG, PNG, PDF, JSON, DOT or a Graphviz tree
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	s, err := pipeline.LoadScene(ctx, "today.yaml")
//	result, err := runner.Execute(ctx, s, pipeline.Options{Formats: []string{"svg"}})
//	svg := result.Artifacts["svg"]
//
// Stages can also be run on their own:
//
//	l, err := runner.GenerateLayout(ctx, s, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/myreality/pkg/cache"
	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default viewport width in pixels.
	DefaultWidth = 1280.0

	// DefaultHeight is the default viewport height in pixels.
	DefaultHeight = 800.0

	// DefaultRingSpacing is the world distance between lattice rings.
	DefaultRingSpacing = 100.0

	// DefaultJitterRatio sizes jitter relative to ring spacing when
	// Randomize is set and Jitter is zero.
	DefaultJitterRatio = 0.2

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultPadding keeps fitted points this many pixels inside the viewport.
	DefaultPadding = 40.0

	// DefaultDepthFade is the opacity lost per level of depth.
	DefaultDepthFade = 0.15

	// MinOpacity is the floor for depth fading.
	MinOpacity = 0.2
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTree = "tree"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatTree: true,
}

// FormatExtensions maps formats to output file extensions.
var FormatExtensions = map[string]string{
	FormatSVG:  ".svg",
	FormatPNG:  ".png",
	FormatPDF:  ".pdf",
	FormatJSON: ".json",
	FormatDOT:  ".dot",
	FormatTree: ".tree.svg",
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline. Zero values take the
// defaults above, except for the pointer fields where nil means default and
// an explicit 0 is kept.
type Options struct {
	// Layout options
	Width       float64  `json:"width,omitempty" toml:"width" validate:"gte=0"`
	Height      float64  `json:"height,omitempty" toml:"height" validate:"gte=0"`
	RingSpacing float64  `json:"ring_spacing,omitempty" toml:"ring_spacing" validate:"gte=0"`
	Randomize   bool     `json:"randomize,omitempty" toml:"randomize"`
	Jitter      float64  `json:"jitter,omitempty" toml:"jitter" validate:"gte=0"`
	Seed        uint64   `json:"seed,omitempty" toml:"seed"`
	DepthFade   *float64 `json:"depth_fade,omitempty" toml:"depth_fade" validate:"omitempty,gte=0,lte=1"`

	// Camera options
	Padding *float64 `json:"padding,omitempty" toml:"padding" validate:"omitempty,gte=0"`
	MinZoom float64  `json:"min_zoom,omitempty" toml:"min_zoom" validate:"gte=0"`
	MaxZoom float64  `json:"max_zoom,omitempty" toml:"max_zoom" validate:"gte=0"`

	// Render options
	Formats     []string `json:"formats,omitempty" toml:"formats" validate:"dive,oneof=svg png pdf json dot tree"`
	Labels      bool     `json:"labels,omitempty" toml:"labels"`
	ParentLinks bool     `json:"parent_links,omitempty" toml:"parent_links"`
	Rings       bool     `json:"rings,omitempty" toml:"rings"`
	Detailed    bool     `json:"detailed,omitempty" toml:"detailed"`
	Background  string   `json:"background,omitempty" toml:"background" validate:"omitempty,max=32"`
	PointSize   float64  `json:"point_size,omitempty" toml:"point_size" validate:"gte=0"`
	Highlight   string   `json:"highlight,omitempty" toml:"-"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-" toml:"-"`
	Logger  *log.Logger `json:"-" toml:"-" validate:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SceneHash is the content hash of the input scene.
	SceneHash string

	// Layout is the computed layout.
	Layout scene.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Somethings int
	Rings      int
	MaxDepth   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

var validate = validator.New()

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(formatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

func formatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// Validate checks field ranges through struct tags and the zoom bounds.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return formatValidationError(err)
	}
	if o.MinZoom > 0 && o.MaxZoom > 0 && o.MinZoom > o.MaxZoom {
		return errors.New(errors.ErrCodeInvalidInput, "min_zoom %v exceeds max_zoom %v", o.MinZoom, o.MaxZoom)
	}
	return nil
}

func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	e := verrs[0]
	field := e.Field()
	switch e.Tag() {
	case "gte":
		return errors.New(errors.ErrCodeInvalidInput, "%s: must be at least %s", field, e.Param())
	case "lte", "max":
		return errors.New(errors.ErrCodeInvalidInput, "%s: must not exceed %s", field, e.Param())
	case "oneof":
		return errors.New(errors.ErrCodeInvalidFormat, "%s: %q is not one of %s", field, e.Value(), e.Param())
	default:
		return errors.New(errors.ErrCodeInvalidInput, "%s: validation failed (%s)", field, e.Tag())
	}
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults validates and applies defaults for the full
// pipeline. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// UseSceneViewport adopts the scene's viewport when no size was given.
func (o *Options) UseSceneViewport(s *scene.Scene) {
	if s == nil || s.Viewport == nil {
		return
	}
	if o.Width == 0 && o.Height == 0 {
		o.Width = s.Viewport.Width
		o.Height = s.Viewport.Height
	}
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.RingSpacing == 0 {
		o.RingSpacing = DefaultRingSpacing
	}
	if o.Randomize && o.Jitter == 0 {
		o.Jitter = DefaultJitterRatio * o.RingSpacing
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.DepthFade == nil {
		o.DepthFade = Float(DefaultDepthFade)
	}
	if o.Padding == nil {
		o.Padding = Float(DefaultPadding)
	}
	if o.MinZoom == 0 {
		o.MinZoom = camera.DefaultMinZoom
	}
	if o.MaxZoom == 0 {
		o.MaxZoom = camera.DefaultMaxZoom
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Float returns a pointer to v for the optional Options fields.
func Float(v float64) *float64 { return &v }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.SetLayoutDefaults()
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Viewport returns the configured viewport.
func (o *Options) Viewport() geom.Viewport {
	return geom.Viewport{Width: o.Width, Height: o.Height}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:       o.Width,
		Height:      o.Height,
		RingSpacing: o.RingSpacing,
		Randomize:   o.Randomize,
		Jitter:      o.Jitter,
		Seed:        o.Seed,
		Padding:     deref(o.Padding),
		MinZoom:     o.MinZoom,
		MaxZoom:     o.MaxZoom,
		DepthFade:   deref(o.DepthFade),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:      format,
		Labels:      o.Labels,
		ParentLinks: o.ParentLinks,
		Rings:       o.Rings,
		Detailed:    o.Detailed,
		Background:  o.Background,
		PointSize:   o.PointSize,
		Highlight:   o.Highlight,
	}
}

// String summarizes the layout options for log lines.
func (o *Options) String() string {
	return fmt.Sprintf("%gx%g spacing=%g seed=%d", o.Width, o.Height, o.RingSpacing, o.Seed)
}
