package ntru

import "fmt"

// Bits is a bit sequence stored one bit per byte, each entry 0 or 1.
type Bits []byte

// ZeroBits returns n zero bits.
func ZeroBits(n int) Bits { return make(Bits, n) }

// BitsFromBytes unpacks the first nbits bits of b, least significant bit of
// each byte first.
func BitsFromBytes(b []byte, nbits int) (Bits, error) {
	if nbits < 0 || (nbits+7)/8 > len(b) {
		return nil, fmt.Errorf("BitsFromBytes: %d bytes cannot hold %d bits", len(b), nbits)
	}
	out := make(Bits, nbits)
	for i := range out {
		out[i] = (b[i/8] >> (i % 8)) & 1
	}
	return out, nil
}

// Pack is the inverse of BitsFromBytes. Unused high bits of the last byte are
// zero.
func (b Bits) Pack() []byte {
	out := make([]byte, (len(b)+7)/8)
	for i, v := range b {
		out[i/8] |= (v & 1) << (i % 8)
	}
	return out
}

// Clone returns a copy of b.
func (b Bits) Clone() Bits {
	return append(Bits(nil), b...)
}

// validate checks that every entry is 0 or 1.
func (b Bits) validate() error {
	for i, v := range b {
		if v > 1 {
			return fmt.Errorf("bit %d has value %d", i, v)
		}
	}
	return nil
}

// uintAt interprets b[off:off+width] as an unsigned little-endian integer.
func (b Bits) uintAt(off, width int) uint64 {
	var v uint64
	for j := 0; j < width; j++ {
		v |= uint64(b[off+j]) << j
	}
	return v
}
