package lattice

import (
	"math/rand/v2"

	"github.com/matzehuels/myreality/pkg/spatial/geom"
)

// AddJitter returns a copy of positions with each coordinate offset by an
// independent uniform amount in [-maxJitter/2, +maxJitter/2]. The same seed
// always yields the same offsets. The input slice is not modified.
func AddJitter(positions []geom.Position2D, maxJitter float64, seed uint64) []geom.Position2D {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	return AddJitterRand(positions, maxJitter, rng)
}

// AddJitterRand is [AddJitter] with a caller-supplied random source.
func AddJitterRand(positions []geom.Position2D, maxJitter float64, rng *rand.Rand) []geom.Position2D {
	out := make([]geom.Position2D, len(positions))
	for i, p := range positions {
		out[i] = geom.Position2D{
			X: p.X + (rng.Float64()-0.5)*maxJitter,
			Y: p.Y + (rng.Float64()-0.5)*maxJitter,
		}
	}
	return out
}
