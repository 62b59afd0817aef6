package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/config"
	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/scene"
)

const testScene = `name: garden
somethings:
  - id: bed
    realm: physical
  - id: tomato
    parent_id: bed
    kind: photo
    content: First red one
  - id: idea
    realm: mind
`

// isolate points config and cache lookups at temporary directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func writeScene(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "garden.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,dot,tree", []string{"svg", "dot", "tree"}},
		{"spaces trimmed", "svg, json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		input, name, want string
	}{
		{"today.yaml", "", "today"},
		{"dir/today.yml", "", "dir/today"},
		{"today.json", "", "today"},
		{"today.layout.json", "", "today"},
		{"-", "piped", "piped"},
		{"-", "", "scene"},
	}
	for _, tt := range tests {
		if got := basePath(tt.input, tt.name); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.input, tt.name, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	got := outputPaths([]string{"svg"}, "today", "out/me.svg")
	if got["svg"] != "out/me.svg" {
		t.Errorf("single format with output = %q", got["svg"])
	}

	got = outputPaths([]string{"svg", "tree"}, "today", "")
	if got["svg"] != "today.svg" || got["tree"] != "today.tree.svg" {
		t.Errorf("default paths = %v", got)
	}

	got = outputPaths([]string{"svg", "json"}, "today", "out/me.svg")
	if got["svg"] != "out/me.svg" || got["json"] != "out/me.json" {
		t.Errorf("base output paths = %v", got)
	}
}

func TestOptionsFlagsOverrideConfig(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config = &config.Config{
		Layout: config.Layout{RingSpacing: 80, Seed: 5},
		Render: config.Render{Formats: []string{"json"}, Labels: true},
	}

	var flags optionFlags
	cmd := &cobra.Command{Use: "x"}
	flags.addLayoutFlags(cmd.Flags())
	flags.addRenderFlags(cmd.Flags())
	if err := cmd.Flags().Parse([]string{"--seed", "9", "--format", "svg,dot"}); err != nil {
		t.Fatal(err)
	}

	opts := c.options(cmd, &flags)
	if opts.RingSpacing != 80 {
		t.Errorf("RingSpacing = %v, want config value 80", opts.RingSpacing)
	}
	if opts.Seed != 9 {
		t.Errorf("Seed = %v, want flag value 9", opts.Seed)
	}
	if !opts.Labels {
		t.Error("Labels from config lost")
	}
	if strings.Join(opts.Formats, ",") != "svg,dot" {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Width != 0 {
		t.Errorf("unset width flag leaked default %v", opts.Width)
	}
	if opts.Logger != c.Logger {
		t.Error("options should carry the CLI logger")
	}
}

func TestOptionsZeroFlagsKept(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.Config = &config.Config{}

	var flags optionFlags
	cmd := &cobra.Command{Use: "x"}
	flags.addLayoutFlags(cmd.Flags())
	if err := cmd.Flags().Parse([]string{"--depth-fade", "0", "--padding", "0"}); err != nil {
		t.Fatal(err)
	}

	opts := c.options(cmd, &flags)
	if opts.DepthFade == nil || *opts.DepthFade != 0 {
		t.Errorf("DepthFade = %v, want explicit 0", opts.DepthFade)
	}
	if opts.Padding == nil || *opts.Padding != 0 {
		t.Errorf("Padding = %v, want explicit 0", opts.Padding)
	}

	unset := c.options(&cobra.Command{Use: "y"}, &optionFlags{})
	if unset.DepthFade != nil || unset.Padding != nil {
		t.Error("unset flags should leave fade and padding to the pipeline defaults")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)
	out := filepath.Join(dir, "out", "garden")

	if err := runCLI(t, "render", input, "-f", "svg,json,dot", "-o", out, "--labels"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `id="p-tomato"`) {
		t.Error("svg missing tomato")
	}

	l, err := scene.ReadLayoutFile(out + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if len(l.Points) != 3 || l.Scene != "garden" {
		t.Errorf("layout = %d points, scene %q", len(l.Points), l.Scene)
	}

	if _, err := os.Stat(out + ".dot"); err != nil {
		t.Errorf("dot output: %v", err)
	}
}

func TestLayoutThenVisualize(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)

	if err := runCLI(t, "layout", input, "--spacing", "60"); err != nil {
		t.Fatalf("layout: %v", err)
	}
	layoutPath := filepath.Join(dir, "garden.layout.json")
	l, err := scene.ReadLayoutFile(layoutPath)
	if err != nil {
		t.Fatal(err)
	}
	if l.RingSpacing != 60 {
		t.Errorf("RingSpacing = %v, want 60", l.RingSpacing)
	}

	if err := runCLI(t, "visualize", layoutPath, "--rings"); err != nil {
		t.Fatalf("visualize: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "garden.svg")); err != nil {
		t.Errorf("svg output: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)

	if err := runCLI(t, "render", input, "-f", "gif"); err == nil {
		t.Error("unknown format should fail")
	}
	if err := runCLI(t, "render", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing scene should fail")
	}
	if err := runCLI(t, "render", input, "--config", filepath.Join(dir, "nope.toml")); err == nil {
		t.Error("missing explicit config should fail")
	}
}

func TestConfigFileApplies(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)
	cfg := filepath.Join(dir, "my.toml")
	body := "[layout]\nring_spacing = 33\n[render]\nformats = [\"json\"]\n[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runCLI(t, "render", input, "--config", cfg); err != nil {
		t.Fatalf("render: %v", err)
	}
	l, err := scene.ReadLayoutFile(filepath.Join(dir, "garden"+pipeline.FormatExtensions[pipeline.FormatJSON]))
	if err != nil {
		t.Fatal(err)
	}
	if l.RingSpacing != 33 {
		t.Errorf("RingSpacing = %v, want 33 from config", l.RingSpacing)
	}
}

func TestInspectCommands(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)

	if err := runCLI(t, "depth", input); err != nil {
		t.Errorf("depth: %v", err)
	}
	if err := runCLI(t, "depth", input, "tomato", "ghost"); err != nil {
		t.Errorf("depth with ids: %v", err)
	}
	if err := runCLI(t, "mystery", "8", "--seed", "3", "--open", "2"); err != nil {
		t.Errorf("mystery: %v", err)
	}
	if err := runCLI(t, "mystery", "3", "--open", "4"); err == nil {
		t.Error("mystery --open out of range should fail")
	}
	if err := runCLI(t, "mystery", "-2"); err == nil {
		t.Error("negative mystery count should fail")
	}

	if err := runCLI(t, "layout", input); err != nil {
		t.Fatalf("layout: %v", err)
	}
	layoutPath := filepath.Join(dir, "garden.layout.json")
	if err := runCLI(t, "hit", layoutPath, "640", "400", "--zoom", "100"); err != nil {
		t.Errorf("hit: %v", err)
	}
	if err := runCLI(t, "hit", layoutPath, "abc", "1"); err == nil {
		t.Error("non-numeric x should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)

	if err := runCLI(t, "render", input, "-f", "json"); err != nil {
		t.Fatalf("render: %v", err)
	}
	cacheRoot := filepath.Join(dir, "cache", appName)
	if dirSize(cacheRoot) == 0 {
		t.Fatal("render should populate the cache")
	}

	if err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n := dirSize(cacheRoot); n != 0 {
		t.Errorf("cache holds %d bytes after clear", n)
	}
	if err := runCLI(t, "cache", "path"); err != nil {
		t.Errorf("cache path: %v", err)
	}
}
