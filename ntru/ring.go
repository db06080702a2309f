package ntru

import "fmt"

// Phi returns Φ_n = x^(n-1) + ... + x + 1 as n coefficients.
func Phi(n int) IntPoly {
	p := NewIntPoly(n)
	for _, c := range p.Coeffs {
		c.SetInt64(1)
	}
	return p
}

// Cyclic returns x^n - 1 as n+1 coefficients.
func Cyclic(n int) IntPoly {
	p := NewIntPoly(n + 1)
	p.Coeffs[0].SetInt64(-1)
	p.Coeffs[n].SetInt64(1)
	return p
}

// XMinusOne returns x - 1.
func XMinusOne() IntPoly {
	return FromInt64([]int64{-1, 1})
}

// ReduceCyclic folds p modulo x^n - 1 and reduces the coefficients mod m.
// It equals ReduceMod(p, Cyclic(n), m) and returns n coefficients.
func ReduceCyclic(p IntPoly, n int, m int64) (IntPoly, error) {
	if n <= 0 || m == 0 {
		return IntPoly{}, fmt.Errorf("ReduceCyclic: %w (n=%d m=%d)", ErrZeroModulus, n, m)
	}
	out := NewIntPoly(n)
	for i, c := range p.Coeffs {
		out.Coeffs[i%n].Add(out.Coeffs[i%n], c)
	}
	return out.CoeffMod(m), nil
}

// ReducePhi reduces p modulo (m, Φ_n) and returns n-1 coefficients. It equals
// ReduceMod(p, Phi(n), m): Φ_n divides x^n - 1, so folding first and then
// removing the x^(n-1) term yields the same remainder.
func ReducePhi(p IntPoly, n int, m int64) (IntPoly, error) {
	if n <= 1 || m == 0 {
		return IntPoly{}, fmt.Errorf("ReducePhi: %w (n=%d m=%d)", ErrZeroModulus, n, m)
	}
	folded := NewIntPoly(n)
	for i, c := range p.Coeffs {
		folded.Coeffs[i%n].Add(folded.Coeffs[i%n], c)
	}
	top := folded.Coeffs[n-1]
	out := NewIntPoly(n - 1)
	for i := range out.Coeffs {
		out.Coeffs[i].Sub(folded.Coeffs[i], top)
	}
	return out.CoeffMod(m), nil
}

// MulPhi returns a*b mod (m, Φ_n).
func MulPhi(a, b IntPoly, n int, m int64) (IntPoly, error) {
	return ReducePhi(a.Mul(b), n, m)
}

// MulCyclic returns a*b mod (m, x^n - 1).
func MulCyclic(a, b IntPoly, n int, m int64) (IntPoly, error) {
	return ReduceCyclic(a.Mul(b), n, m)
}
