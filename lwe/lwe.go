// Package lwe turns NTRU keys into LWE instances (A, b = s·A + e mod q) for
// lattice-reduction experiments. The secret and error are kept as ground truth.
package lwe

import (
	"errors"
	"fmt"
	"io"

	"lwe-hints/ntru"
)

// DefaultMaxTrials bounds the number of seeds drawn while looking for an
// invertible f.
const DefaultMaxTrials = 64

// Instance is an LWE instance with optional ground truth S and E.
type Instance struct {
	A [][]int64
	B []int64
	Q int64
	S []int64
	E []int64
}

// RotMatrix returns the n×n matrix whose row i holds the coefficients of
// x^i·poly mod x^n - 1, or mod x^n + 1 when negacyclic is set.
func RotMatrix(poly []int64, negacyclic bool) [][]int64 {
	n := len(poly)
	A := make([][]int64, n)
	for i := range A {
		A[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			c := int64(1)
			if negacyclic && j < i {
				c = -1
			}
			A[i][j] = c * poly[((j-i)%n+n)%n]
		}
	}
	return A
}

// Build returns b = s·A + e mod q as an instance, with b in [0, q).
func Build(A [][]int64, s, e []int64, q int64) (*Instance, error) {
	if len(A) != len(s) {
		return nil, fmt.Errorf("lwe: %d rows but secret of length %d", len(A), len(s))
	}
	m := len(e)
	b := make([]int64, m)
	for i, row := range A {
		if len(row) != m {
			return nil, fmt.Errorf("lwe: row %d has %d columns, want %d", i, len(row), m)
		}
		if s[i] == 0 {
			continue
		}
		for j, a := range row {
			b[j] = (b[j] + s[i]*a) % q
		}
	}
	for j := range b {
		b[j] += e[j]
	}
	return &Instance{A: A, B: ntru.DecenterToModQ(b, q), Q: q, S: s, E: e}, nil
}

// DrawKey draws seeds from gen until one yields an invertible f. It returns
// the seed, the key and the number of seeds tried.
func DrawKey(gen *ntru.Generator, maxTrials int) (ntru.Bits, ntru.Key, int, error) {
	if maxTrials <= 0 {
		maxTrials = DefaultMaxTrials
	}
	for trial := 1; trial <= maxTrials; trial++ {
		seed, err := gen.NewSeed()
		if err != nil {
			return nil, ntru.Key{}, trial, err
		}
		k, err := gen.GetKey(seed)
		if errors.Is(err, ntru.ErrNotInvertible) {
			continue
		}
		if err != nil {
			return nil, ntru.Key{}, trial, err
		}
		return seed, k, trial, nil
	}
	return nil, ntru.Key{}, maxTrials, fmt.Errorf("lwe: no invertible key in %d trials: %w", maxTrials, ntru.ErrNotInvertible)
}

// FromKey builds the NTRU instance A = rot(h) (cyclic), s = f, e = -g.
func FromKey(k ntru.Key, q int64) (*Instance, error) {
	e := make([]int64, len(k.G))
	for i, v := range k.G {
		e[i] = -v
	}
	return Build(RotMatrix(k.H, false), append([]int64(nil), k.F...), e, q)
}

// NewNTRUInstance generates a key for the named variant (HPS-509, HPS-677,
// HPS-821 or HRSS) from src and returns its LWE instance.
func NewNTRUInstance(variant string, src io.Reader, maxTrials int) (*Instance, error) {
	par, err := ntru.Preset(variant)
	if err != nil {
		return nil, err
	}
	gen, err := ntru.NewGenerator(par, ntru.GeneratorOpts{Source: src})
	if err != nil {
		return nil, err
	}
	_, k, _, err := DrawKey(gen, maxTrials)
	if err != nil {
		return nil, err
	}
	return FromKey(k, par.Q)
}
