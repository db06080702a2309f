package ntru

import (
	"fmt"
	"math/bits"
)

// SqInverse returns a^{-1} mod (q, Φ_n) for a power-of-two q. The inverse
// mod 2 comes from EEA2 and is lifted 2-adically with v <- v*(2 - a*v), each
// step doubling the number of correct bits. The result has n-1 coefficients
// centered mod q.
func SqInverse(a IntPoly, q int64, n int) (IntPoly, error) {
	if q < 2 || q&(q-1) != 0 {
		return IntPoly{}, fmt.Errorf("SqInverse: %w (q=%d is not a power of two)", ErrUnsupportedParams, q)
	}
	dbg(debugOut, "[Inv] SqInverse begin N=%d Q=%d\n", n, q)
	v, err := S2Inverse(a, n)
	if err != nil {
		return IntPoly{}, err
	}
	logq := bits.TrailingZeros64(uint64(q))
	for t := 1; t < logq; t *= 2 {
		e := a.Mul(v).ConstSub(2)
		if v, err = ReducePhi(v.Mul(e), n, q); err != nil {
			return IntPoly{}, err
		}
		dbg(debugOut, "[Inv] lifted to %d bits\n", min(2*t, logq))
	}
	return ReducePhi(v, n, q)
}

// IsUnit reports whether a is invertible mod (q, Φ_n).
func IsUnit(a IntPoly, q int64, n int) bool {
	_, err := SqInverse(a, q, n)
	return err == nil
}
