package core

import "math/rand/v2"

// Uniform yields independent uniform draws in [0, 1). *rand.Rand satisfies it.
type Uniform interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillDensity calls set for each of n positions with true at probability
// density, drawing once per position from src.
func FillDensity(src Uniform, n int, density float64, set func(i int, alive bool)) {
	for i := 0; i < n; i++ {
		set(i, src.Float64() < density)
	}
}
