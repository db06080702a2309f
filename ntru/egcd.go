package ntru

import (
	"fmt"
	"math/big"
)

// Polynomials over GF(2) are held as bitsets: bit i of the big.Int is the
// coefficient of x^i.

func gf2FromPoly(p IntPoly) *big.Int {
	out := new(big.Int)
	for i, c := range p.Coeffs {
		if c.Bit(0) == 1 { // two's complement parity also holds for negatives
			out.SetBit(out, i, 1)
		}
	}
	return out
}

func gf2ToPoly(a *big.Int, N int) (IntPoly, error) {
	if a.BitLen() > N {
		return IntPoly{}, fmt.Errorf("gf2ToPoly: %w (degree %d does not fit %d coefficients)", ErrLengthMismatch, a.BitLen()-1, N)
	}
	p := NewIntPoly(N)
	for i := 0; i < a.BitLen(); i++ {
		p.Coeffs[i].SetUint64(uint64(a.Bit(i)))
	}
	return p, nil
}

func gf2Degree(a *big.Int) int { return a.BitLen() - 1 }

// gf2DivMod returns q, r with a = q*b + r and deg r < deg b. b must be
// non-zero.
func gf2DivMod(a, b *big.Int) (q, r *big.Int) {
	q = new(big.Int)
	r = new(big.Int).Set(a)
	db := gf2Degree(b)
	tmp := new(big.Int)
	for dr := gf2Degree(r); dr >= db; dr = gf2Degree(r) {
		shift := dr - db
		r.Xor(r, tmp.Lsh(b, uint(shift)))
		q.SetBit(q, shift, 1)
	}
	return q, r
}

// gf2Mul is carry-less multiplication.
func gf2Mul(a, b *big.Int) *big.Int {
	out := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < a.BitLen(); i++ {
		if a.Bit(i) == 1 {
			out.Xor(out, tmp.Lsh(b, uint(i)))
		}
	}
	return out
}

// eea2Bits returns g, s, t with g = s*f1 + t*f2 over GF(2) and g = gcd(f1, f2).
// The quotients of the Euclidean descent are kept on a stack and the Bézout
// coefficients are rebuilt on the way back: at each level (s, t) becomes
// (t - q*s, s), starting from (0, 1) once the remainder vanishes.
func eea2Bits(f1, f2 *big.Int) (g, s, t *big.Int) {
	var quots []*big.Int
	a, b := new(big.Int).Set(f1), new(big.Int).Set(f2)
	for a.Sign() != 0 {
		q, r := gf2DivMod(b, a)
		quots = append(quots, q)
		a, b = r, a
	}
	g = b
	s, t = new(big.Int), big.NewInt(1)
	for i := len(quots) - 1; i >= 0; i-- {
		next := new(big.Int).Xor(t, gf2Mul(quots[i], s))
		s, t = next, s
	}
	return g, s, t
}

// EEA2 runs the extended Euclidean algorithm over GF(2) on f1 mod 2 and
// f2 mod 2. It returns g = gcd and s, t with g = s*f1 + t*f2 (mod 2). All
// three results have max(len(f1), len(f2)) coefficients in {0,1}.
func EEA2(f1, f2 IntPoly) (g, s, t IntPoly, err error) {
	N := max(f1.Len(), f2.Len())
	gb, sb, tb := eea2Bits(gf2FromPoly(f1), gf2FromPoly(f2))
	if g, err = gf2ToPoly(gb, N); err != nil {
		return
	}
	if s, err = gf2ToPoly(sb, N); err != nil {
		return
	}
	t, err = gf2ToPoly(tb, N)
	return
}

// S2Inverse returns a^{-1} mod (2, Φ_n) with n-1 coefficients in {0,1}.
func S2Inverse(a IntPoly, n int) (IntPoly, error) {
	g, s, _ := eea2Bits(gf2FromPoly(a), gf2FromPoly(Phi(n)))
	if g.Cmp(big.NewInt(1)) != 0 {
		return IntPoly{}, fmt.Errorf("S2Inverse: %w (gcd with Φ_n has degree %d)", ErrNotInvertible, gf2Degree(g))
	}
	return gf2ToPoly(s, n-1)
}
