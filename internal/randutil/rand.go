// Package randutil centralises how the game obtains randomness so shuffles can
// be made reproducible in tests and simulations.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// Source yields uniformly distributed integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Two 64-bit PCG seeds are derived from the single seed so that all call
// sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewFromTime returns a generator seeded from the wall clock. Used when no
// seed is configured.
func NewFromTime() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Sequence is a Source that replays fixed values. Each value is reduced
// modulo n so any sequence is valid for any range; once exhausted it wraps
// around. An empty Sequence always yields 0.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a Sequence replaying values in order.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN implements Source.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("randutil: invalid argument to IntN")
	}
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
