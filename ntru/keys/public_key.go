package keys

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Version tags the JSON layout written by this package.
const Version = "ntru-keygen/1"

// PublicKey represents an NTRU public key persisted to JSON.
type PublicKey struct {
	Version string  `json:"version"`
	Variant string  `json:"variant"`
	HRSS    bool    `json:"hrss"`
	N       int     `json:"N"`
	Q       int64   `json:"Q"`
	HCoeffs []int64 `json:"h_coeffs"`
}

// SavePublic writes the public key to dir/public.json.
func SavePublic(dir string, pk *PublicKey) error {
	if pk == nil {
		return nil
	}
	return writeJSON(dir, "public.json", pk)
}

// LoadPublic reads the public key from dir/public.json.
func LoadPublic(dir string) (*PublicKey, error) {
	data, err := os.ReadFile(filepath.Join(dir, "public.json"))
	if err != nil {
		return nil, err
	}
	var pk PublicKey
	if err := json.Unmarshal(data, &pk); err != nil {
		return nil, err
	}
	return &pk, nil
}

func writeJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
