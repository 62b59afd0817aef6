package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/pipeline"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "myreality", "config.toml"), p)
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Path)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[layout]
ring_spacing = 120
randomize = true
seed = 7

[camera]
min_zoom = 0.5
max_zoom = 3
hit_radius = 30

[render]
formats = ["svg", "dot"]
labels = true
background = "#000"

[cache]
backend = "redis"
scope = "alice"
[cache.redis]
url = "redis://localhost:6379/1"
prefix = "mr:"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, 120.0, cfg.Layout.RingSpacing)
	assert.True(t, cfg.Layout.Randomize)
	assert.Equal(t, uint64(7), cfg.Layout.Seed)
	assert.Equal(t, 30.0, cfg.Camera.HitRadius)
	assert.Equal(t, []string{"svg", "dot"}, cfg.Render.Formats)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "mr:", cfg.Cache.Redis.Prefix)
	assert.Equal(t, "alice", cfg.Cache.Scope)
}

func TestLoadDefaultLocation(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "myreality")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[render]\nrings = true\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Render.Rings)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[layout\nwidth = 1"},
		{"unknown key", "[layout]\nwidht = 100\n"},
		{"negative", "[layout]\nring_spacing = -1\n"},
		{"fade", "[layout]\ndepth_fade = 2.0\n"},
		{"format", "[render]\nformats = [\"gif\"]\n"},
		{"backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestApply(t *testing.T) {
	cfg := Config{
		Layout: Layout{RingSpacing: 80, Randomize: true, Seed: 3},
		Camera: Camera{MaxZoom: 4},
		Render: Render{Formats: []string{"json"}, Rings: true, PointSize: 10},
	}
	opts := pipeline.Options{Width: 640, Labels: true}
	cfg.Apply(&opts)

	assert.Equal(t, 640.0, opts.Width)
	assert.Equal(t, 80.0, opts.RingSpacing)
	assert.True(t, opts.Randomize)
	assert.Equal(t, uint64(3), opts.Seed)
	assert.Equal(t, 4.0, opts.MaxZoom)
	assert.Equal(t, []string{"json"}, opts.Formats)
	assert.True(t, opts.Labels)
	assert.True(t, opts.Rings)
	assert.Equal(t, 10.0, opts.PointSize)

	cfg.Render.Formats[0] = "svg"
	assert.Equal(t, "json", opts.Formats[0], "formats are copied")
}

func TestApplyExplicitZero(t *testing.T) {
	path := writeConfig(t, "[layout]\ndepth_fade = 0\n[camera]\npadding = 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	var opts pipeline.Options
	cfg.Apply(&opts)
	require.NotNil(t, opts.DepthFade)
	require.NotNil(t, opts.Padding)
	assert.Equal(t, 0.0, *opts.DepthFade)
	assert.Equal(t, 0.0, *opts.Padding)

	opts.SetLayoutDefaults()
	assert.Equal(t, 0.0, *opts.DepthFade, "defaults must not replace an explicit zero")
}

func TestApplyEmpty(t *testing.T) {
	opts := pipeline.Options{Width: 100, Seed: 9}
	(&Config{}).Apply(&opts)
	assert.Equal(t, pipeline.Options{Width: 100, Seed: 9}, opts)
}
