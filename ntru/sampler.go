package ntru

import (
	"fmt"
	"slices"
)

const fixedTypeSlotBits = 30

func (p Params) checkBits(name string, b Bits, want int) error {
	if len(b) != want {
		return fmt.Errorf("%s: %w (got %d bits, want %d)", name, ErrLengthMismatch, len(b), want)
	}
	return nil
}

// Ternary maps SampleIIDBits bits to n-1 coefficients in {-1,0,1}: each
// coefficient is an 8-bit integer reduced mod 3.
func (p Params) Ternary(b Bits) (IntPoly, error) {
	if err := p.checkBits("Ternary", b, p.SampleIIDBits); err != nil {
		return IntPoly{}, err
	}
	v := NewIntPoly(p.N - 1)
	for i := range v.Coeffs {
		v.Coeffs[i].SetUint64(b.uintAt(8*i, 8))
	}
	return v.CoeffMod(3), nil
}

// TernaryPlus is Ternary with the sign of the even-indexed coefficients
// flipped when needed so that sum v_i*v_{i+1} >= 0.
func (p Params) TernaryPlus(b Bits) (IntPoly, error) {
	v, err := p.Ternary(b)
	if err != nil {
		return IntPoly{}, err
	}
	var t int64
	for i := 0; i+1 < v.Len(); i++ {
		t += v.Coeffs[i].Int64() * v.Coeffs[i+1].Int64()
	}
	if t < 0 {
		for i := 0; i < v.Len(); i += 2 {
			v.Coeffs[i].Neg(v.Coeffs[i])
		}
	}
	return v.CoeffMod(3), nil
}

// FixedType maps SampleFixedTypeBits bits to n-1 ternary coefficients with
// exactly q/16-1 entries equal to 1 and q/16-1 equal to -1.
//
// Every slot gets 30 random bits above a 2-bit tag (1 for the first block,
// 2 for the second, 0 elsewhere); sorting the slots shuffles the tags and
// the tags become the coefficients.
func (p Params) FixedType(b Bits) (IntPoly, error) {
	if err := p.checkBits("FixedType", b, p.SampleFixedTypeBits); err != nil {
		return IntPoly{}, err
	}
	m := p.N - 1
	w := p.Weight()
	ones := min(w, p.N/3)
	negs := min(2*w, 2*(p.N/3))

	a := make([]uint64, m)
	for i := range a {
		switch {
		case i < ones:
			a[i] = 1
		case i < negs:
			a[i] = 2
		}
		a[i] |= b.uintAt(fixedTypeSlotBits*i, fixedTypeSlotBits) << 2
	}
	slices.Sort(a)

	v := NewIntPoly(m)
	for i, x := range a {
		v.Coeffs[i].SetUint64(x % 4)
	}
	return v.CoeffMod(3), nil
}

// SampleFG derives (f, g) from SampleKeyBits bits, both padded to n
// coefficients. HRSS: f = TernaryPlus, g = (x-1)*TernaryPlus. HPS:
// f = Ternary, g = FixedType.
func (p Params) SampleFG(b Bits) (f, g IntPoly, err error) {
	if err = p.checkBits("SampleFG", b, p.SampleKeyBits); err != nil {
		return
	}
	fBits, gBits := b[:p.SampleIIDBits], b[p.SampleIIDBits:]
	if p.HRSS {
		if f, err = p.TernaryPlus(fBits); err != nil {
			return
		}
		var g0 IntPoly
		if g0, err = p.TernaryPlus(gBits); err != nil {
			return
		}
		g = g0.Mul(XMinusOne())
	} else {
		if f, err = p.Ternary(fBits); err != nil {
			return
		}
		if g, err = p.FixedType(gBits); err != nil {
			return
		}
	}
	if f, err = f.Pad(p.N); err != nil {
		return
	}
	g, err = g.Pad(p.N)
	return
}
