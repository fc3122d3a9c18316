package pcg

import "math/rand"

// RandomSource provides bounded uniform integers for the generators.
// Every generator takes its own RandomSource; there is no global RNG.
//
// The stream is math/rand's Go 1 source (rand.NewSource). The choice
// is fixed for the process: two invocations with the same seed draw
// identical streams, and saved games are bound to the generator
// version that produced them.
type RandomSource struct {
	seed int64
	rng  *rand.Rand
}

// NewRandomSource creates a deterministic source from the given seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this source was created with, for logging.
func (rs *RandomSource) Seed() int64 {
	return rs.seed
}

// IntRange returns a uniform integer in the closed interval [lo, hi].
// When lo > hi it returns lo.
func (rs *RandomSource) IntRange(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + rs.rng.Intn(hi-lo+1)
}

// Intn returns a uniform integer in [0, n). It panics if n <= 0.
func (rs *RandomSource) Intn(n int) int {
	return rs.rng.Intn(n)
}

// Float64 returns a uniform float64 in [0.0, 1.0).
func (rs *RandomSource) Float64() float64 {
	return rs.rng.Float64()
}

// Chance reports true with probability pct/100.
func (rs *RandomSource) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return rs.rng.Intn(100) < pct
}

// PickPoint returns a uniformly chosen element of pts.
// The slice must be non-empty.
func (rs *RandomSource) PickPoint(pts []Point) Point {
	return pts[rs.rng.Intn(len(pts))]
}

// PickString returns a uniformly chosen element of choices,
// or "" when choices is empty.
func (rs *RandomSource) PickString(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[rs.rng.Intn(len(choices))]
}
