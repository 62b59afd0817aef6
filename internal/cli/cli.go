package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/myreality/pkg/buildinfo"
	"github.com/matzehuels/myreality/pkg/cache"
	"github.com/matzehuels/myreality/pkg/config"
	"github.com/matzehuels/myreality/pkg/observability"
	"github.com/matzehuels/myreality/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "myreality"

	// redisTimeout bounds the initial redis connection check.
	redisTimeout = 5 * time.Second
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs. It is never nil once
	// the root command's pre-run has completed.
	Config *config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: &config.Config{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "myreality lays out captured life moments as a navigable map",
		Long: `myreality places the somethings of a scene on a hexagonal lattice,
frames them with a camera and renders the result.

Scenes are YAML or JSON files listing somethings with optional parents.
Roots sit at the center, descendants spread outward and fade with depth.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/myreality/config.toml)")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.depthCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.mysteryCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// preRun applies --verbose and loads the config file.
func (c *CLI) preRun(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, c.newKeyer(), c.Logger), nil
}

// newKeyer returns the default keyer, prefixed when the config sets a scope.
func (c *CLI) newKeyer() cache.Keyer {
	if scope := c.Config.Cache.Scope; scope != "" {
		return cache.NewScopedKeyer(nil, scope+":")
	}
	return nil
}

// newCache opens the cache backend selected in the config file.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.Config.Cache
	if noCache || cfg.Backend == config.BackendNone {
		return cache.NewNullCache(), nil
	}

	if cfg.Backend == config.BackendRedis {
		ctx, cancel := context.WithTimeout(ctx, redisTimeout)
		defer cancel()
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{URL: cfg.Redis.URL, Prefix: redisPrefix(cfg.Redis.Prefix)})
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		return rc, nil
	}

	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "error", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

func redisPrefix(p string) string {
	if p == "" {
		return appName + ":"
	}
	return p
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/myreality/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// optionFlags holds flag values shared by the layout and render commands.
// Only flags the user actually set override the config file.
type optionFlags struct {
	opts      pipeline.Options
	formats   string
	depthFade float64
	padding   float64
}

// addLayoutFlags registers the lattice and camera flags.
func (f *optionFlags) addLayoutFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&f.opts.Width, "width", pipeline.DefaultWidth, "viewport width in pixels")
	fs.Float64Var(&f.opts.Height, "height", pipeline.DefaultHeight, "viewport height in pixels")
	fs.Float64Var(&f.opts.RingSpacing, "spacing", pipeline.DefaultRingSpacing, "distance between lattice rings")
	fs.BoolVar(&f.opts.Randomize, "randomize", false, "jitter lattice positions")
	fs.Float64Var(&f.opts.Jitter, "jitter", 0, "maximum jitter (default: 0.2 x spacing)")
	fs.Uint64Var(&f.opts.Seed, "seed", pipeline.DefaultSeed, "random seed for jitter")
	fs.Float64Var(&f.depthFade, "depth-fade", pipeline.DefaultDepthFade, "opacity lost per depth level")
	fs.Float64Var(&f.padding, "padding", pipeline.DefaultPadding, "camera fit padding in pixels")
	fs.Float64Var(&f.opts.MinZoom, "min-zoom", 0, "minimum camera zoom (default 0.1)")
	fs.Float64Var(&f.opts.MaxZoom, "max-zoom", 0, "maximum camera zoom (default 2)")
	fs.BoolVar(&f.opts.Refresh, "refresh", false, "recompute even when cached")
}

// addRenderFlags registers the output flags.
func (f *optionFlags) addRenderFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, tree (comma-separated)")
	fs.BoolVar(&f.opts.Labels, "labels", false, "draw content labels")
	fs.BoolVar(&f.opts.ParentLinks, "links", false, "draw parent links")
	fs.BoolVar(&f.opts.Rings, "rings", false, "draw lattice rings")
	fs.BoolVar(&f.opts.Detailed, "detailed", false, "show depth and kind in tree output")
	fs.StringVar(&f.opts.Background, "background", "", "background color (default #0f1020)")
	fs.Float64Var(&f.opts.PointSize, "point-size", 0, "base point radius in pixels")
	fs.StringVar(&f.opts.Highlight, "highlight", "", "id of the something to highlight")
}

// options merges config file values with the flags set on cmd.
func (c *CLI) options(cmd *cobra.Command, f *optionFlags) pipeline.Options {
	opts := pipeline.Options{Logger: c.Logger}
	c.Config.Apply(&opts)

	fs := cmd.Flags()
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("width", func() { opts.Width = f.opts.Width })
	set("height", func() { opts.Height = f.opts.Height })
	set("spacing", func() { opts.RingSpacing = f.opts.RingSpacing })
	set("randomize", func() { opts.Randomize = f.opts.Randomize })
	set("jitter", func() { opts.Jitter = f.opts.Jitter })
	set("seed", func() { opts.Seed = f.opts.Seed })
	set("depth-fade", func() { opts.DepthFade = pipeline.Float(f.depthFade) })
	set("padding", func() { opts.Padding = pipeline.Float(f.padding) })
	set("min-zoom", func() { opts.MinZoom = f.opts.MinZoom })
	set("max-zoom", func() { opts.MaxZoom = f.opts.MaxZoom })
	set("refresh", func() { opts.Refresh = f.opts.Refresh })
	set("format", func() { opts.Formats = parseFormats(f.formats) })
	set("labels", func() { opts.Labels = f.opts.Labels })
	set("links", func() { opts.ParentLinks = f.opts.ParentLinks })
	set("rings", func() { opts.Rings = f.opts.Rings })
	set("detailed", func() { opts.Detailed = f.opts.Detailed })
	set("background", func() { opts.Background = f.opts.Background })
	set("point-size", func() { opts.PointSize = f.opts.PointSize })
	set("highlight", func() { opts.Highlight = f.opts.Highlight })
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
