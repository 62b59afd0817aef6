package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/myreality/pkg/cache"
	"github.com/matzehuels/myreality/pkg/config"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err = cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, want)
	}
}

func TestNewCache(t *testing.T) {
	base := isolate(t)
	custom := filepath.Join(base, "layouts")

	tests := []struct {
		name    string
		cfg     config.Cache
		noCache bool
		wantDir string // empty means a NullCache
	}{
		{"default dir", config.Cache{}, false, filepath.Join(base, "cache", appName)},
		{"configured dir", config.Cache{Backend: config.BackendFile, Dir: custom}, false, custom},
		{"backend none", config.Cache{Backend: config.BackendNone, Dir: custom}, false, ""},
		{"no-cache flag", config.Cache{Dir: custom}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(io.Discard, LogInfo)
			c.Config = &config.Config{Cache: tt.cfg}

			got, err := c.newCache(context.Background(), tt.noCache)
			if err != nil {
				t.Fatalf("newCache() error: %v", err)
			}
			defer got.Close()

			if tt.wantDir == "" {
				if _, ok := got.(*cache.NullCache); !ok {
					t.Fatalf("newCache() = %T, want *cache.NullCache", got)
				}
				return
			}
			fc, ok := got.(*cache.FileCache)
			if !ok {
				t.Fatalf("newCache() = %T, want *cache.FileCache", got)
			}
			if fc.Dir() != tt.wantDir {
				t.Errorf("cache dir = %q, want %q", fc.Dir(), tt.wantDir)
			}
			if _, err := os.Stat(tt.wantDir); err != nil {
				t.Errorf("cache dir not created: %v", err)
			}
		})
	}
}

func TestNewKeyerScope(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config = &config.Config{}
	if k := c.newKeyer(); k != nil {
		t.Errorf("newKeyer() without scope = %T, want nil", k)
	}

	c.Config.Cache.Scope = "alice"
	key := c.newKeyer().LayoutKey("abc", cache.LayoutKeyOpts{})
	if !strings.HasPrefix(key, "alice:layout:") {
		t.Errorf("scoped key = %q", key)
	}
}

func TestScopedRunnerSeparatesEntries(t *testing.T) {
	isolate(t)
	c := New(io.Discard, LogInfo)
	c.Config = &config.Config{}

	plain, err := c.newRunner(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer plain.Close()

	c.Config.Cache.Scope = "alice"
	scoped, err := c.newRunner(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}
	defer scoped.Close()

	opts := cache.LayoutKeyOpts{RingSpacing: 100}
	if plain.Keyer.LayoutKey("h", opts) == scoped.Keyer.LayoutKey("h", opts) {
		t.Error("scoped runner should not share layout keys with the unscoped one")
	}
}

func TestRedisPrefix(t *testing.T) {
	if got := redisPrefix(""); got != appName+":" {
		t.Errorf("redisPrefix(\"\") = %q", got)
	}
	if got := redisPrefix("mr:"); got != "mr:" {
		t.Errorf("redisPrefix(\"mr:\") = %q", got)
	}
}
