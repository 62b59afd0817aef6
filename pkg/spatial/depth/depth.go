package depth

import (
	"io"

	"github.com/charmbracelet/log"
)

// MaxSteps bounds the upward parent walk so cyclic graphs terminate.
const MaxSteps = 100

// Entity is anything with an identifier and an optional parent. An empty
// ParentID means the entity has no parent.
type Entity struct {
	ID       string `json:"id" yaml:"id"`
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// Option configures depth calculation.
type Option func(*config)

type config struct {
	logger   *log.Logger
	maxSteps int
}

// WithLogger sets the logger that receives the cycle warning. Without it the
// warning goes to [log.Default].
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMaxSteps overrides [MaxSteps]. Values below 1 are ignored.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSteps = n
		}
	}
}

// Quiet discards the cycle warning.
func Quiet() Option {
	return WithLogger(log.New(io.Discard))
}

func newConfig(opts []Option) config {
	c := config{logger: log.Default(), maxSteps: MaxSteps}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// parentIndex maps each id to its parent id. When ids repeat, the last entry
// wins.
func parentIndex(items []Entity) map[string]string {
	idx := make(map[string]string, len(items))
	for _, e := range items {
		idx[e.ID] = e.ParentID
	}
	return idx
}

// Calculate returns the depth of id within items. Roots have depth 0, and an
// id that is not in items is treated as a root.
func Calculate(id string, items []Entity, opts ...Option) int {
	c := newConfig(opts)
	return walk(id, parentIndex(items), c)
}

// CalculateAll returns the depth of every id in items. Each depth is exactly
// what [Calculate] would return for that id.
func CalculateAll(items []Entity, opts ...Option) map[string]int {
	c := newConfig(opts)
	idx := parentIndex(items)

	depths := make(map[string]int, len(idx))
	for _, e := range items {
		if _, done := depths[e.ID]; done {
			continue
		}
		depths[e.ID] = walk(e.ID, idx, c)
	}
	return depths
}

func walk(id string, parents map[string]string, c config) int {
	d := 0
	cur := id
	for {
		parent, ok := parents[cur]
		if !ok || parent == "" {
			return d
		}
		if _, known := parents[parent]; !known {
			return d
		}
		if d >= c.maxSteps {
			c.logger.Warn("parent chain exceeds step limit, possible cycle",
				"id", id,
				"steps", c.maxSteps)
			return d
		}
		d++
		cur = parent
	}
}
