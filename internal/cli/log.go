// Package cli implements the myreality command-line interface.
//
// The commands load scenes, lay them out on the hexagonal lattice, render
// layouts and probe them the way the app does: hit-testing clicks,
// scattering question marks and flying the camera around in a terminal
// explorer. The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a layout.json from a scene file
//   - visualize: Render a layout.json to SVG, PNG, PDF, DOT or a tree diagram
//   - render: Scene to artifacts in one step
//   - depth: Print the depth of every something
//   - hit: Resolve a screen click against a layout
//   - mystery: Scatter question marks for the unexplored map
//   - explore: Pan, zoom and select somethings in the terminal
//   - cache: Manage the layout cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs pipeline and cache events. The logger is attached to the command
// context for helpers that only see a context.
//
// # Configuration
//
// Defaults come from $XDG_CONFIG_HOME/myreality/config.toml or --config;
// flags override the file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps read "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with keyvals and an elapsed key rounded to
// the millisecond, e.g. "layout written path=today.layout.json elapsed=12ms".
func (p *progress) done(msg string, keyvals ...any) {
	kv := make([]any, 0, len(keyvals)+2)
	kv = append(kv, keyvals...)
	kv = append(kv, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, kv...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for helpers that only see a context.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// withScene tags the context logger with the scene name, so warnings from
// the spatial packages, like a parent cycle hitting the step limit, say
// which scene they came from.
func withScene(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return withLogger(ctx, loggerFromContext(ctx).With("scene", name))
}
