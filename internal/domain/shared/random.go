package shared

import (
	"math"
	"math/rand"
)

// RNG is the single seeded draw stream shared by generation and stepping.
//
// Every stochastic decision in a run goes through one RNG so that a fixed seed
// reproduces the run exactly. Reordering draws changes the output even when the
// number of draws stays the same.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a draw stream from a seed
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0, 1)
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Uniform returns a uniform draw in [lo, hi)
func (g *RNG) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.r.Float64()
}

// Chance returns true with probability p
func (g *RNG) Chance(p float64) bool {
	return g.r.Float64() < p
}

// Intn returns a uniform integer in [0, n)
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// IntBetween returns a uniform integer in [lo, hi], both ends inclusive
func (g *RNG) IntBetween(lo, hi int64) int64 {
	return lo + g.r.Int63n(hi-lo+1)
}

// Shuffle permutes n elements in place through swap
func (g *RNG) Shuffle(n int, swap func(i, j int)) {
	g.r.Shuffle(n, swap)
}

// Poisson draws from a Poisson distribution with the given mean.
// Knuth's multiplication method; fine for the small means used in generation.
func (g *RNG) Poisson(mean float64) int {
	if mean <= 0 {
		return 0
	}
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= g.r.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// Categorical draws an index with probability proportional to weights.
// Returns the last index when rounding leaves the draw past the final bucket.
func (g *RNG) Categorical(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Pick returns a uniformly chosen element of items. Panics on an empty slice.
func Pick[T any](g *RNG, items []T) T {
	return items[g.Intn(len(items))]
}
