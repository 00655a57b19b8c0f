package random

import (
	"math/rand/v2"
)

// Service draws integers for loot rolls
type Service interface {
	// Next returns a value in [min, max)
	Next(min, max int) int
}

// Source is a seeded PCG generator
type Source struct {
	rng *rand.Rand
}

// New creates a generator. A zero seed draws one from the runtime.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Next(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min)
}
