package io

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"lwe-hints/ntru"
)

// SystemParams is the on-disk parameter description. Either Variant names a
// preset or HRSS/N/Q spell the set out.
type SystemParams struct {
	Variant string `json:"variant,omitempty"`
	HRSS    bool   `json:"hrss"`
	N       int    `json:"n"`
	Q       int64  `json:"q"`
}

// LoadParams reads a parameter file. Keys may be upper or lower case and Q
// may be a number or a decimal/hex string.
func LoadParams(path string) (SystemParams, error) {
	var p SystemParams
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	var rawAny map[string]any
	if err := json.Unmarshal(data, &rawAny); err != nil {
		return p, err
	}
	get := func(keys ...string) (any, bool) {
		for _, k := range keys {
			if v, ok := rawAny[k]; ok {
				return v, true
			}
		}
		return nil, false
	}
	if v, ok := get("variant", "Variant"); ok {
		s, ok := v.(string)
		if !ok {
			return p, fmt.Errorf("%s: variant must be a string", path)
		}
		p.Variant = s
	}
	if v, ok := get("hrss", "HRSS"); ok {
		b, ok := v.(bool)
		if !ok {
			return p, fmt.Errorf("%s: hrss must be a boolean", path)
		}
		p.HRSS = b
	}
	if v, ok := get("n", "N"); ok {
		f, ok := v.(float64)
		if !ok {
			return p, fmt.Errorf("%s: n must be a number", path)
		}
		p.N = int(f)
	}
	if v, ok := get("q", "Q"); ok {
		switch t := v.(type) {
		case float64:
			p.Q = int64(t)
		case string:
			q, err := strconv.ParseInt(t, 0, 64)
			if err != nil {
				return p, fmt.Errorf("%s: invalid Q string %q", path, t)
			}
			p.Q = q
		default:
			return p, fmt.Errorf("%s: q must be a number or string", path)
		}
	}
	if p.Variant == "" && p.N == 0 {
		return p, fmt.Errorf("missing variant or n in %s", path)
	}
	return p, nil
}

// SaveParams writes p as indented JSON.
func SaveParams(path string, p SystemParams) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Build validates p and returns the ntru parameter set it describes.
func (p SystemParams) Build() (ntru.Params, error) {
	if p.Variant != "" {
		return ntru.Preset(p.Variant)
	}
	return ntru.NewParams(p.HRSS, p.N, p.Q)
}
