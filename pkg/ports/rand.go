package ports

import "math/rand/v2"

// Source draws uniform integers. IntN returns a value in [0, n) and may
// panic if n <= 0. *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. Equal seeds yield equal sequences.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewRandomSource returns a Source seeded from the runtime's entropy.
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
