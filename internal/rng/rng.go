// Package rng provides the injectable random source threaded through the
// planner and the scheduler.
package rng

import "math/rand/v2"

// Source supplies every random value the replay engine draws.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Uniform returns a value in [a, b].
	Uniform(a, b float64) float64
	// IntBetween returns an integer in [a, b].
	IntBetween(a, b int) int
	// Choice returns an index in [0, n). n must be positive.
	Choice(n int) int
}

// Pick returns a random element of items, or the zero value when empty.
func Pick[T any](src Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}

	return items[src.Choice(len(items))]
}

// Seeded is a deterministic pseudo-random source.
type Seeded struct {
	r *rand.Rand
}

// NewSeeded creates a PCG-backed source. Equal seeds yield equal sequences.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Float64() float64 {
	return s.r.Float64()
}

func (s *Seeded) Uniform(a, b float64) float64 {
	return a + (b-a)*s.r.Float64()
}

func (s *Seeded) IntBetween(a, b int) int {
	if b <= a {
		return a
	}

	return a + s.r.IntN(b-a+1)
}

func (s *Seeded) Choice(n int) int {
	if n <= 1 {
		return 0
	}

	return s.r.IntN(n)
}

// Midpoint always answers from the middle of the range: Float64 is 0.5,
// Uniform and IntBetween return the midpoint and Choice the first index.
// It makes planner and scheduler output predictable in tests.
type Midpoint struct{}

// NewMidpoint returns a Midpoint source.
func NewMidpoint() Midpoint {
	return Midpoint{}
}

func (Midpoint) Float64() float64 { return 0.5 }

func (Midpoint) Uniform(a, b float64) float64 { return (a + b) / 2 }

func (Midpoint) IntBetween(a, b int) int { return (a + b) / 2 }

func (Midpoint) Choice(int) int { return 0 }
