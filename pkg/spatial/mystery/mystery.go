package mystery

import (
	"math"
	"math/rand/v2"
)

// Bounds and sizing for randomized layouts.
const (
	MinCoord = 10.0
	MaxCoord = 90.0
	MinSize  = 30.0

	// DefaultMaxAttempts is the number of draws per marker before the last
	// draw is accepted regardless of collisions.
	DefaultMaxAttempts = 10
)

// Position is a marker location in viewport percent with a pixel size.
type Position struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	Size float64 `json:"size" yaml:"size"`
}

// Distributed pairs a caller item with its marker position.
type Distributed[T any] struct {
	Item     T        `json:"item" yaml:"item"`
	Position Position `json:"position" yaml:"position"`
}

var fixed = [][]Position{
	1: {{50, 50, 120}},
	2: {{35, 50, 100}, {65, 50, 100}},
	3: {{50, 30, 90}, {30, 68, 90}, {70, 68, 90}},
	4: {{30, 30, 70}, {70, 30, 70}, {30, 70, 70}, {70, 70, 70}},
	5: {{30, 30, 60}, {70, 30, 60}, {50, 50, 60}, {30, 70, 60}, {70, 70, 60}},
}

// Option configures [Distribute].
type Option func(*config)

type config struct {
	rng         *rand.Rand
	maxAttempts int
}

// WithSeed makes randomized layouts reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
}

// WithRand supplies the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithMaxAttempts overrides [DefaultMaxAttempts]. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// Distribute assigns a marker position to every item, preserving order.
// Layouts for one to five items are fixed; larger sets are randomized.
func Distribute[T any](items []T, opts ...Option) []Distributed[T] {
	out := make([]Distributed[T], len(items))
	if len(items) == 0 {
		return out
	}

	var positions []Position
	if len(items) < len(fixed) {
		positions = fixed[len(items)]
	} else {
		c := config{maxAttempts: DefaultMaxAttempts}
		for _, opt := range opts {
			opt(&c)
		}
		if c.rng == nil {
			c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		positions = scatter(len(items), c)
	}

	for i, item := range items {
		out[i] = Distributed[T]{Item: item, Position: positions[i]}
	}
	return out
}

// SizeFor returns the marker size used for a randomized layout of n markers.
func SizeFor(n int) float64 {
	return max(MinSize, 100-2*float64(n))
}

func scatter(n int, c config) []Position {
	size := SizeFor(n)
	minSep := size + 10

	placed := make([]Position, 0, n)
	for range n {
		var p Position
		for range c.maxAttempts {
			p = Position{X: draw(c.rng), Y: draw(c.rng), Size: size}
			if separated(p, placed, minSep) {
				break
			}
		}
		placed = append(placed, p)
	}
	return placed
}

func draw(rng *rand.Rand) float64 {
	return MinCoord + rng.Float64()*(MaxCoord-MinCoord)
}

func separated(p Position, placed []Position, minSep float64) bool {
	for _, q := range placed {
		if math.Hypot(p.X-q.X, p.Y-q.Y) < minSep {
			return false
		}
	}
	return true
}
