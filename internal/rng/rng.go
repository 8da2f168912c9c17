// Package rng is the injected randomness boundary. Simulation and generation
// code never touch math/rand directly so tests can pin a seed.
package rng

import (
	"math/rand"
	"time"
)

type Source interface {
	Float64() float64
	Intn(n int) int
}

type seeded struct {
	r *rand.Rand
}

// New returns a Source backed by math/rand with the given seed.
func New(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

// RandomSeed derives a seed from the wall clock for non-reproducible runs.
func RandomSeed() int64 {
	return time.Now().UnixNano()
}

func (s *seeded) Float64() float64 { return s.r.Float64() }

func (s *seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Between returns a uniform integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Chance reports a success roll with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
