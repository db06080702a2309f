package keys

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lwe-hints/ntru"
)

// PrivateKey represents an NTRU private key persisted to JSON. SeedHex holds
// the packed seed bits (see ntru.Bits.Pack) the key was derived from.
type PrivateKey struct {
	Version  string  `json:"version"`
	Variant  string  `json:"variant"`
	HRSS     bool    `json:"hrss"`
	N        int     `json:"N"`
	Q        int64   `json:"Q"`
	Fsmall   []int64 `json:"f"`
	Gsmall   []int64 `json:"g"`
	HCoeffs  []int64 `json:"h_coeffs"`
	SeedHex  string  `json:"seed,omitempty"`
	SeedBits int     `json:"seed_bits,omitempty"`
	Trials   int     `json:"trials_used,omitempty"`
}

// SavePrivate writes the private key to dir/private.json.
func SavePrivate(dir string, sk *PrivateKey) error {
	if sk == nil {
		return nil
	}
	return writeJSON(dir, "private.json", sk)
}

// LoadPrivate reads the private key from dir/private.json.
func LoadPrivate(dir string) (*PrivateKey, error) {
	data, err := os.ReadFile(filepath.Join(dir, "private.json"))
	if err != nil {
		return nil, err
	}
	var sk PrivateKey
	if err := json.Unmarshal(data, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}

// FromKey builds the persisted forms of k.
func FromKey(variant string, par ntru.Params, seed ntru.Bits, k ntru.Key, trials int) (*PublicKey, *PrivateKey) {
	pk := &PublicKey{Version: Version, Variant: variant, HRSS: par.HRSS, N: par.N, Q: par.Q, HCoeffs: k.H}
	sk := &PrivateKey{
		Version: Version, Variant: variant, HRSS: par.HRSS, N: par.N, Q: par.Q,
		Fsmall: k.F, Gsmall: k.G, HCoeffs: k.H,
		Trials: trials,
	}
	if seed != nil {
		sk.SeedHex = hex.EncodeToString(seed.Pack())
		sk.SeedBits = len(seed)
	}
	return pk, sk
}

// Params rebuilds the parameter set the key was generated for.
func (sk *PrivateKey) Params() (ntru.Params, error) {
	return ntru.NewParams(sk.HRSS, sk.N, sk.Q)
}

// Seed unpacks SeedHex.
func (sk *PrivateKey) Seed() (ntru.Bits, error) {
	raw, err := hex.DecodeString(sk.SeedHex)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return ntru.BitsFromBytes(raw, sk.SeedBits)
}

// Check verifies that h = g*f^{-1} mod (q, x^n - 1) by recomputing it from
// (f, g) and by testing f*h = g.
func (sk *PrivateKey) Check() error {
	par, err := sk.Params()
	if err != nil {
		return err
	}
	if len(sk.Fsmall) != par.N || len(sk.Gsmall) != par.N || len(sk.HCoeffs) != par.N {
		return fmt.Errorf("key: %w", ntru.ErrLengthMismatch)
	}
	f, g, h := ntru.FromInt64(sk.Fsmall), ntru.FromInt64(sk.Gsmall), ntru.FromInt64(sk.HCoeffs)
	want, err := ntru.PublicH(f, g, par)
	if err != nil {
		return err
	}
	if !want.Equal(h.CoeffMod(par.Q)) {
		return fmt.Errorf("key: h does not match g*f^-1")
	}
	fh, err := ntru.MulCyclic(f, h, par.N, par.Q)
	if err != nil {
		return err
	}
	if !fh.Equal(g.CoeffMod(par.Q)) {
		return fmt.Errorf("key: f*h != g mod (q, x^n - 1)")
	}
	return nil
}
