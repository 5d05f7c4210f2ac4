package prng

import "math/rand"

// MathRand wraps a deterministic math/rand.Rand as a Source. It stands in
// for the Mersenne-Twister generator the original library specifies only
// by contract: math/rand's generator is itself deterministic given a seed,
// which is all Source requires, the same way ntru.RNG wraps math/rand "for
// tests" rather than hand-rolling a generator.
type MathRand struct {
	r *rand.Rand
}

// NewMathRand constructs a Source deterministically seeded from seed.
func NewMathRand(seed uint32) *MathRand {
	return &MathRand{r: rand.New(rand.NewSource(int64(seed)))}
}

// Uint32 returns a value uniform over [0, 2^32).
func (m *MathRand) Uint32() uint32 {
	return m.r.Uint32()
}
