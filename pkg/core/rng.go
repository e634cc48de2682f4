package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Range returns a value in [lo, hi). Swapped bounds are reordered.
func (r *RNG) Range(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.Float64()*(hi-lo)
}

// Jitter scales base by a factor drawn from [lo, hi).
func (r *RNG) Jitter(base, lo, hi float64) float64 {
	return base * r.Range(lo, hi)
}
