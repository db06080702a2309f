package ntru

import "fmt"

// PublicH computes h = g * f^{-1} mod (q, x^n - 1) where the inverse is
// taken in Z_q[x]/Φ_n. The result has n coefficients centered mod q.
func PublicH(f, g IntPoly, par Params) (IntPoly, error) {
	dbg(debugOut, "[H] PublicH begin N=%d Q=%d\n", par.N, par.Q)
	fq, err := SqInverse(f, par.Q, par.N)
	if err != nil {
		return IntPoly{}, fmt.Errorf("PublicH: %w", err)
	}
	h, err := ReduceMod(g.Mul(fq), Cyclic(par.N), par.Q)
	if err != nil {
		return IntPoly{}, fmt.Errorf("PublicH: %w", err)
	}
	dbg(debugOut, "[H] PublicH done\n")
	return h.Pad(par.N)
}
