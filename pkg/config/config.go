// Package config loads the optional myreality configuration file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/myreality/config.toml
// (~/.config/myreality/config.toml when XDG_CONFIG_HOME is unset). Every key
// is optional; values present in the file become the base for
// [pipeline.Options] and command-line flags override them.
//
//	[layout]
//	ring_spacing = 120
//	randomize = true
//
//	[camera]
//	max_zoom = 3
//
//	[render]
//	formats = ["svg", "png"]
//	labels = true
//
//	[cache]
//	backend = "redis"
//	[cache.redis]
//	url = "redis://localhost:6379/0"
//	prefix = "myreality:"
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/pipeline"
)

const (
	appName  = "myreality"
	fileName = "config.toml"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config mirrors the sections of the configuration file.
type Config struct {
	Layout Layout `toml:"layout"`
	Camera Camera `toml:"camera"`
	Render Render `toml:"render"`
	Cache  Cache  `toml:"cache"`

	// Path is the file the configuration was read from, empty when no file
	// was found.
	Path string `toml:"-"`
}

// Layout holds lattice settings.
type Layout struct {
	Width       float64  `toml:"width" validate:"gte=0"`
	Height      float64  `toml:"height" validate:"gte=0"`
	RingSpacing float64  `toml:"ring_spacing" validate:"gte=0"`
	Randomize   bool     `toml:"randomize"`
	Jitter      float64  `toml:"jitter" validate:"gte=0"`
	Seed        uint64   `toml:"seed"`
	DepthFade   *float64 `toml:"depth_fade" validate:"omitempty,gte=0,lte=1"`
}

// Camera holds framing and interaction settings.
type Camera struct {
	Padding   *float64 `toml:"padding" validate:"omitempty,gte=0"`
	MinZoom   float64  `toml:"min_zoom" validate:"gte=0"`
	MaxZoom   float64  `toml:"max_zoom" validate:"gte=0"`
	HitRadius float64  `toml:"hit_radius" validate:"gte=0"`
}

// Render holds output settings.
type Render struct {
	Formats     []string `toml:"formats" validate:"dive,oneof=svg png pdf json dot tree"`
	Labels      bool     `toml:"labels"`
	ParentLinks bool     `toml:"parent_links"`
	Rings       bool     `toml:"rings"`
	Detailed    bool     `toml:"detailed"`
	Background  string   `toml:"background" validate:"omitempty,max=32"`
	PointSize   float64  `toml:"point_size" validate:"gte=0"`
}

// Cache selects and configures the layout cache. A non-empty Scope
// namespaces cache keys so several users can share one backend.
type Cache struct {
	Backend string `toml:"backend" validate:"omitempty,oneof=file redis none"`
	Dir     string `toml:"dir"`
	Scope   string `toml:"scope" validate:"omitempty,max=64"`
	Redis   Redis  `toml:"redis"`
}

// Redis configures the redis cache backend.
type Redis struct {
	URL    string `toml:"url"`
	Prefix string `toml:"prefix"`
}

var validate = validator.New()

// DefaultPath returns the XDG location of the configuration file.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration at path. An empty path reads the default
// location, where a missing file yields an empty configuration. A missing
// explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return &Config{}, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return &Config{}, nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	cfg.Path = path
	return &cfg, nil
}

// Validate checks value ranges and the cache backend.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			e := verrs[0]
			return errors.New(errors.ErrCodeInvalidConfig, "%s: failed %s %s", e.Namespace(), e.Tag(), e.Param())
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.Redis.URL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis.url is required for the redis backend")
	}
	return nil
}

// Apply copies every value set in the file onto opts.
func (c *Config) Apply(opts *pipeline.Options) {
	setFloat(&opts.Width, c.Layout.Width)
	setFloat(&opts.Height, c.Layout.Height)
	setFloat(&opts.RingSpacing, c.Layout.RingSpacing)
	setFloat(&opts.Jitter, c.Layout.Jitter)
	setOptional(&opts.DepthFade, c.Layout.DepthFade)
	if c.Layout.Randomize {
		opts.Randomize = true
	}
	if c.Layout.Seed != 0 {
		opts.Seed = c.Layout.Seed
	}

	setOptional(&opts.Padding, c.Camera.Padding)
	setFloat(&opts.MinZoom, c.Camera.MinZoom)
	setFloat(&opts.MaxZoom, c.Camera.MaxZoom)

	if len(c.Render.Formats) > 0 {
		opts.Formats = append([]string(nil), c.Render.Formats...)
	}
	opts.Labels = opts.Labels || c.Render.Labels
	opts.ParentLinks = opts.ParentLinks || c.Render.ParentLinks
	opts.Rings = opts.Rings || c.Render.Rings
	opts.Detailed = opts.Detailed || c.Render.Detailed
	if c.Render.Background != "" {
		opts.Background = c.Render.Background
	}
	setFloat(&opts.PointSize, c.Render.PointSize)
}

// setOptional copies a value present in the file, including an explicit 0.
func setOptional(dst **float64, v *float64) {
	if v != nil {
		*dst = pipeline.Float(*v)
	}
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
