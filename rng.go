package cellpotts

import "math/rand/v2"

// RNG is a thin, deterministic wrapper around math/rand/v2's PCG source.
// Reproducible runs require a seeded RNG threaded through simulation
// state rather than an implicit global one, so every Simulation owns
// exactly one RNG and
// every draw in mh_step goes through it.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG from the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a uniform random integer in [0, n). Panics if n <= 0, same
// as the underlying rand.Rand.IntN.
func (g *RNG) IntN(n int) int { return g.r.IntN(n) }

// Float64 returns a uniform random float in [0, 1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Source exposes the underlying rand.Rand for callers that need a
// *rand.Rand directly.
func (g *RNG) Source() *rand.Rand { return g.r }
