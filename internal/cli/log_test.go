package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// runCLILogged runs the root command with the CLI logger writing to buf.
func runCLILogged(t *testing.T, buf *bytes.Buffer, args ...string) error {
	t.Helper()
	root := New(buf, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("cycle") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	prog.done("layout written", "path", "today.layout.json", "somethings", 4)

	out := buf.String()
	for _, want := range []string{"layout written", "path=today.layout.json", "somethings=4", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("done() output %q missing %q", out, want)
		}
	}
}

func TestWithScene(t *testing.T) {
	var buf bytes.Buffer
	base := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), base)

	if got := loggerFromContext(withScene(ctx, "")); got != base {
		t.Error("withScene with an empty name should keep the logger")
	}

	loggerFromContext(withScene(ctx, "garden")).Warn("parent chain exceeds step limit")
	if !strings.Contains(buf.String(), "scene=garden") {
		t.Errorf("scene tag missing from %q", buf.String())
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}
}

func TestDepthCommandLogsCycleWithScene(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "loop.yaml")
	body := "name: loop\nsomethings:\n  - id: chicken\n    parent_id: egg\n  - id: egg\n    parent_id: chicken\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runCLILogged(t, &buf, "depth", path, "--max-steps", "5"); err != nil {
		t.Fatalf("depth: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "possible cycle") {
		t.Errorf("expected a cycle warning, got %q", out)
	}
	if !strings.Contains(out, "scene=loop") {
		t.Errorf("cycle warning should name the scene, got %q", out)
	}
}

func TestLayoutCommandLogsProgress(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir)
	output := filepath.Join(dir, "garden.layout.json")

	var buf bytes.Buffer
	if err := runCLILogged(t, &buf, "layout", input, "-o", output, "--no-cache"); err != nil {
		t.Fatalf("layout: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"layout written", "path=" + output, "somethings=3", "cached=false", "scene=garden"} {
		if !strings.Contains(out, want) {
			t.Errorf("layout log %q missing %q", out, want)
		}
	}
}
