package ntru

import (
	"fmt"
	"math/bits"
)

// Params defines an NTRU-HRSS or NTRU-HPS parameter set together with the
// bit lengths its samplers consume.
type Params struct {
	HRSS bool
	N    int   // prime ring dimension
	Q    int64 // power-of-two modulus
	LogQ int

	SampleIIDBits       int // 8(n-1)
	SampleFixedTypeBits int // 30(n-1)
	SampleKeyBits       int
}

// NewParams validates (hrss, n, q) and derives the sampling constants. In
// HRSS mode q is ignored and set to 2^ceil(7/2 + log2 n). In HPS mode q must
// be a power of two with q/8 - 2 <= 2n/3.
func NewParams(hrss bool, n int, q int64) (Params, error) {
	perr := func(reason string) error {
		return &ParamError{HRSS: hrss, N: n, Q: q, Reason: reason, Err: ErrUnsupportedParams}
	}
	if n < 5 || !isPrime(n) {
		return Params{}, perr("n must be a prime >= 5")
	}
	if !hasFullOrder(2, n) || !hasFullOrder(3, n) {
		return Params{}, perr("2 and 3 must have order n-1 modulo n")
	}
	if hrss {
		q = hrssModulus(n)
	} else {
		if q < 32 || q&(q-1) != 0 {
			return Params{}, perr("q must be a power of two >= 32")
		}
		// q/8 - 2 <= 2n/3, cleared of denominators
		if 3*q-48 > 16*int64(n) {
			return Params{}, perr("q/8 - 2 must not exceed 2n/3")
		}
	}
	p := Params{
		HRSS:                hrss,
		N:                   n,
		Q:                   q,
		LogQ:                bits.TrailingZeros64(uint64(q)),
		SampleIIDBits:       8 * (n - 1),
		SampleFixedTypeBits: 30 * (n - 1),
	}
	if hrss {
		p.SampleKeyBits = 2 * p.SampleIIDBits
	} else {
		p.SampleKeyBits = p.SampleIIDBits + p.SampleFixedTypeBits
	}
	return p, nil
}

// Weight returns q/16 - 1, the number of +1 (and of -1) coefficients in a
// fixed-type sample.
func (p Params) Weight() int {
	return int(p.Q/16) - 1
}

func (p Params) String() string {
	if p.HRSS {
		return fmt.Sprintf("HRSS-%d(q=%d)", p.N, p.Q)
	}
	return fmt.Sprintf("HPS-%d(q=%d)", p.N, p.Q)
}

// hrssModulus returns the smallest 2^k with 2^k >= 2^(7/2)*n, i.e.
// 2^(2k) >= 128*n^2.
func hrssModulus(n int) int64 {
	target := 128 * uint64(n) * uint64(n)
	k := 0
	for uint64(1)<<(2*k) < target {
		k++
	}
	return int64(1) << k
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// hasFullOrder reports whether a generates the multiplicative group mod the
// prime n.
func hasFullOrder(a, n int) bool {
	if a%n == 0 {
		return false
	}
	m := n - 1
	rest := m
	for d := 2; d*d <= rest; d++ {
		if rest%d != 0 {
			continue
		}
		for rest%d == 0 {
			rest /= d
		}
		if powMod(a, m/d, n) == 1 {
			return false
		}
	}
	if rest > 1 && powMod(a, m/rest, n) == 1 {
		return false
	}
	return true
}

func powMod(a, e, n int) int {
	r, b := 1, a%n
	for e > 0 {
		if e&1 == 1 {
			r = r * b % n
		}
		b = b * b % n
		e >>= 1
	}
	return r
}
