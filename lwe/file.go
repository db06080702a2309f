package lwe

import (
	"encoding/json"
	"fmt"
	"os"
)

type instanceJSON struct {
	Q int64     `json:"q"`
	A [][]int64 `json:"A"`
	B []int64   `json:"b"`
	S []int64   `json:"s,omitempty"`
	E []int64   `json:"e,omitempty"`
}

// Save writes inst as JSON. Ground truth is written only when present.
func Save(path string, inst *Instance) error {
	if inst == nil {
		return fmt.Errorf("lwe: nil instance")
	}
	data, err := json.Marshal(instanceJSON{Q: inst.Q, A: inst.A, B: inst.B, S: inst.S, E: inst.E})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads an instance written by Save. S and E are nil unless both are
// present in the file.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw instanceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Q <= 0 {
		return nil, fmt.Errorf("lwe: %s: missing or invalid q", path)
	}
	if len(raw.A) > 0 && len(raw.A[0]) != len(raw.B) {
		return nil, fmt.Errorf("lwe: %s: b has length %d, A has %d columns", path, len(raw.B), len(raw.A[0]))
	}
	inst := &Instance{Q: raw.Q, A: raw.A, B: raw.B}
	if raw.S != nil && raw.E != nil {
		inst.S, inst.E = raw.S, raw.E
	}
	return inst, nil
}
