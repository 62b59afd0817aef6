package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/myreality/pkg/cache"
	"github.com/matzehuels/myreality/pkg/observability"
	"github.com/matzehuels/myreality/pkg/scene"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger: it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	opts.UseSceneViewport(s)
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	hash, err := SceneHash(s)
	if err != nil {
		return nil, err
	}
	result.SceneHash = hash

	// Stage 1: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Somethings = len(l.Points)
	result.Stats.Rings = l.Rings
	result.Stats.MaxDepth = l.MaxDepth()
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"somethings", len(l.Points),
		"rings", l.Rings,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateLayoutWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, s *scene.Scene, opts Options) (scene.Layout, bool, error) {
	if s == nil {
		l, err := GenerateLayout(s, opts)
		return l, false, err
	}
	opts.UseSceneViewport(s)
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return scene.Layout{}, false, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnLayoutStart(ctx, s.Name, s.Len())
	start := time.Now()

	sceneHash, err := SceneHash(s)
	if err != nil {
		return scene.Layout{}, false, err
	}
	cacheKey := r.Keyer.LayoutKey(sceneHash, opts.LayoutKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := scene.UnmarshalLayout(data); err == nil {
				cacheHooks.OnCacheHit(ctx, "layout")
				hooks.OnLayoutComplete(ctx, s.Name, len(cached.Points), time.Since(start), nil)
				return cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		cacheHooks.OnCacheMiss(ctx, "layout")
	}

	l, err := GenerateLayout(s, opts)
	hooks.OnLayoutComplete(ctx, s.Name, len(l.Points), time.Since(start), err)
	if err != nil {
		return scene.Layout{}, false, err
	}

	if data, err := scene.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err != nil {
			r.Logger.Warn("cache layout", "error", err)
		} else {
			cacheHooks.OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, s *scene.Scene, opts Options) (scene.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, s, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l scene.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	// Compute cache key from layout data
	layoutData, err := scene.MarshalLayout(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			cacheHooks.OnCacheHit(ctx, "artifact")
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, true, nil // All artifacts from cache
		}
		cacheHooks.OnCacheMiss(ctx, "artifact")
	}

	rendered, err := Render(ctx, l, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache artifact", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l scene.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// SceneHash is the content hash of s used in layout cache keys.
func SceneHash(s *scene.Scene) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("serialize scene for cache key: %w", err)
	}
	return cache.Hash(data), nil
}
