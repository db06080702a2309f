package ntru

import (
	"fmt"
	"math/big"
)

// IntPoly represents a polynomial over Z with a fixed number of coefficients.
// Coeffs[i] is the coefficient of x^i.
type IntPoly struct {
	Coeffs []*big.Int
}

// NewIntPoly allocates a zero IntPoly with N coefficients.
func NewIntPoly(N int) IntPoly {
	coeffs := make([]*big.Int, N)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}
	return IntPoly{Coeffs: coeffs}
}

// FromInt64 builds an IntPoly holding a copy of a.
func FromInt64(a []int64) IntPoly {
	r := NewIntPoly(len(a))
	for i, v := range a {
		r.Coeffs[i].SetInt64(v)
	}
	return r
}

// Len returns the number of coefficients.
func (p IntPoly) Len() int { return len(p.Coeffs) }

// Clone returns a deep copy of p.
func (p IntPoly) Clone() IntPoly {
	r := NewIntPoly(len(p.Coeffs))
	for i, c := range p.Coeffs {
		r.Coeffs[i].Set(c)
	}
	return r
}

// Add adds two IntPolys of equal length.
func (p IntPoly) Add(q IntPoly) (IntPoly, error) {
	if len(p.Coeffs) != len(q.Coeffs) {
		return IntPoly{}, fmt.Errorf("Add: %w (%d vs %d)", ErrLengthMismatch, len(p.Coeffs), len(q.Coeffs))
	}
	r := NewIntPoly(len(p.Coeffs))
	for i := range p.Coeffs {
		r.Coeffs[i].Add(p.Coeffs[i], q.Coeffs[i])
	}
	return r, nil
}

// Sub subtracts q from p. Both must have the same length.
func (p IntPoly) Sub(q IntPoly) (IntPoly, error) {
	if len(p.Coeffs) != len(q.Coeffs) {
		return IntPoly{}, fmt.Errorf("Sub: %w (%d vs %d)", ErrLengthMismatch, len(p.Coeffs), len(q.Coeffs))
	}
	r := NewIntPoly(len(p.Coeffs))
	for i := range p.Coeffs {
		r.Coeffs[i].Sub(p.Coeffs[i], q.Coeffs[i])
	}
	return r, nil
}

// Neg negates polynomial.
func (p IntPoly) Neg() IntPoly {
	r := NewIntPoly(len(p.Coeffs))
	for i := range p.Coeffs {
		r.Coeffs[i].Neg(p.Coeffs[i])
	}
	return r
}

// ConstSub returns c - p, keeping the length of p.
func (p IntPoly) ConstSub(c int64) IntPoly {
	r := p.Neg()
	if len(r.Coeffs) == 0 {
		return FromInt64([]int64{c})
	}
	r.Coeffs[0].Add(r.Coeffs[0], big.NewInt(c))
	return r
}

// Mul returns the full product p*q of length len(p)+len(q)-1. No reduction
// is applied.
func (p IntPoly) Mul(q IntPoly) IntPoly {
	if len(p.Coeffs) == 0 || len(q.Coeffs) == 0 {
		return NewIntPoly(0)
	}
	r := NewIntPoly(len(p.Coeffs) + len(q.Coeffs) - 1)
	tmp := new(big.Int)
	for i, a := range p.Coeffs {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.Coeffs {
			if b.Sign() == 0 {
				continue
			}
			tmp.Mul(a, b)
			r.Coeffs[i+j].Add(r.Coeffs[i+j], tmp)
		}
	}
	return r
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p IntPoly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// Pad returns a copy of p zero-extended to N coefficients. It fails when p
// has a non-zero coefficient at index >= N.
func (p IntPoly) Pad(N int) (IntPoly, error) {
	if p.Degree() >= N {
		return IntPoly{}, fmt.Errorf("Pad: %w (degree %d does not fit %d coefficients)", ErrLengthMismatch, p.Degree(), N)
	}
	r := NewIntPoly(N)
	for i := 0; i < N && i < len(p.Coeffs); i++ {
		r.Coeffs[i].Set(p.Coeffs[i])
	}
	return r, nil
}

// Equal reports whether p and q have the same length and coefficients.
func (p IntPoly) Equal(q IntPoly) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if p.Coeffs[i].Cmp(q.Coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether p is the constant polynomial 1.
func (p IntPoly) IsOne() bool {
	return p.Degree() == 0 && p.Coeffs[0].Cmp(big.NewInt(1)) == 0
}

// Eval1 returns p(1), the sum of the coefficients.
func (p IntPoly) Eval1() *big.Int {
	s := new(big.Int)
	for _, c := range p.Coeffs {
		s.Add(s, c)
	}
	return s
}

// Int64s converts the coefficients to int64. It fails if one does not fit.
func (p IntPoly) Int64s() ([]int64, error) {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		if !c.IsInt64() {
			return nil, fmt.Errorf("Int64s: coefficient %d overflows int64", i)
		}
		out[i] = c.Int64()
	}
	return out, nil
}

// CoeffMod reduces every coefficient modulo m. For m = 2 the result lies in
// {0,1}; otherwise it is centered in [-m/2, m/2).
func (p IntPoly) CoeffMod(m int64) IntPoly {
	r := NewIntPoly(len(p.Coeffs))
	bm := big.NewInt(m)
	twice := new(big.Int)
	for i, c := range p.Coeffs {
		r.Coeffs[i].Mod(c, bm)
		if m != 2 && twice.Lsh(r.Coeffs[i], 1).Cmp(bm) >= 0 {
			r.Coeffs[i].Sub(r.Coeffs[i], bm)
		}
	}
	return r
}

// Rem returns the remainder of p divided by the monic polynomial mod,
// computed over Z. The result has len(mod)-1 coefficients.
func (p IntPoly) Rem(mod IntPoly) (IntPoly, error) {
	dm := mod.Degree()
	if dm < 0 {
		return IntPoly{}, ErrZeroModulus
	}
	if mod.Coeffs[dm].Cmp(big.NewInt(1)) != 0 {
		return IntPoly{}, fmt.Errorf("Rem: %w (leading coefficient %s)", ErrNonMonicModulus, mod.Coeffs[dm])
	}
	r := p.Clone()
	tmp := new(big.Int)
	for i := r.Degree(); i >= dm; i-- {
		c := r.Coeffs[i]
		if c.Sign() == 0 {
			continue
		}
		lead := new(big.Int).Set(c)
		shift := i - dm
		for j := 0; j <= dm; j++ {
			if mod.Coeffs[j].Sign() == 0 {
				continue
			}
			tmp.Mul(lead, mod.Coeffs[j])
			r.Coeffs[shift+j].Sub(r.Coeffs[shift+j], tmp)
		}
	}
	out := NewIntPoly(len(mod.Coeffs) - 1)
	for i := 0; i < len(out.Coeffs) && i < len(r.Coeffs); i++ {
		out.Coeffs[i].Set(r.Coeffs[i])
	}
	return out, nil
}

// ReduceMod returns p mod (m, mod): the remainder by mod followed by a
// coefficient reduction modulo m.
func ReduceMod(p, mod IntPoly, m int64) (IntPoly, error) {
	if m == 0 {
		return IntPoly{}, fmt.Errorf("ReduceMod: %w (m = 0)", ErrZeroModulus)
	}
	r, err := p.Rem(mod)
	if err != nil {
		return IntPoly{}, err
	}
	return r.CoeffMod(m), nil
}
