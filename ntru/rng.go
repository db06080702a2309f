package ntru

import (
	"math/rand"
)

// RNG wraps a deterministic rand.Rand for tests.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a new RNG with given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Read fills p with pseudo-random bytes so an RNG can stand in as a
// Generator source.
func (r *RNG) Read(p []byte) (int, error) {
	return r.r.Read(p)
}

// SmallPoly returns an N-coefficient polynomial with entries uniform in
// [-bound, bound].
func (r *RNG) SmallPoly(N int, bound int) IntPoly {
	p := NewIntPoly(N)
	for i := range p.Coeffs {
		p.Coeffs[i].SetInt64(int64(r.r.Intn(2*bound+1) - bound))
	}
	return p
}
