package ntru

import (
	"fmt"
	"sort"
)

type preset struct {
	hrss bool
	n    int
	q    int64
}

// Round-3 NTRU submission parameter sets.
var presets = map[string]preset{
	"HPS-509": {hrss: false, n: 509, q: 2048},
	"HPS-677": {hrss: false, n: 677, q: 2048},
	"HPS-821": {hrss: false, n: 821, q: 4096},
	"HRSS":    {hrss: true, n: 701},
}

// Preset returns the named parameter set: HPS-509, HPS-677, HPS-821 or HRSS.
func Preset(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, &ParamError{Reason: fmt.Sprintf("unknown variant %q", name), Err: ErrUnsupportedParams}
	}
	return NewParams(p.hrss, p.n, p.q)
}

// PresetNames lists the supported variants in sorted order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for k := range presets {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
