package ntru

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// DefaultSource is the system CSPRNG used when a Generator is built without
// an explicit source.
var DefaultSource io.Reader = rand.Reader

// ReadBits draws nbits uniformly random bits from src.
func ReadBits(src io.Reader, nbits int) (Bits, error) {
	if src == nil {
		return nil, fmt.Errorf("nil bit source")
	}
	buf := make([]byte, (nbits+7)/8)
	if _, err := io.ReadFull(src, buf); err != nil {
		return nil, fmt.Errorf("bit source read: %w", err)
	}
	return BitsFromBytes(buf, nbits)
}

// NewKeyedSource returns a deterministic bit source keyed by key. Equal keys
// give equal streams, which makes seed generation reproducible in tests and
// experiments.
func NewKeyedSource(key []byte) (utils.PRNG, error) {
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("keyed prng: %w", err)
	}
	return prng, nil
}

const shakeSeedLabel = "NTRU-KEYGEN-SEED"

// NewShakeSource expands a short seed with SHAKE-256 into an unbounded
// stream, so a human-readable seed string can stand for a full key seed.
func NewShakeSource(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write([]byte(shakeSeedLabel))
	h.Write(seed)
	return h
}
