package core

import "math/rand"

// Random is the random source consumed by the simulation.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Random interface {
	Intn(n int) int
}

// NewRandom returns a seeded pseudo-random source.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// OneIn reports a 1-in-n draw. n <= 1 always succeeds.
func OneIn(r Random, n int) bool {
	if n <= 1 {
		return true
	}
	return r.Intn(n) == 0
}

// Pick returns one of the given values uniformly.
func Pick[T any](r Random, values ...T) T {
	if len(values) == 1 {
		return values[0]
	}
	return values[r.Intn(len(values))]
}

// Sequence is a scripted Random that replays fixed values in order, cycling.
// Each value is reduced modulo n, so 0 always selects the first option and
// makes OneIn succeed.
type Sequence struct {
	Values []int
	pos    int
}

// Intn returns the next scripted value modulo n.
func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	if v < 0 {
		v = -v
	}
	return v % n
}
