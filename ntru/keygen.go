package ntru

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// GeneratorOpts controls where seeds come from and how keys are memoized.
type GeneratorOpts struct {
	Source io.Reader // bit source for NewSeed (defaults to crypto/rand)
	Cache  KeyCache  // seed -> key memo (defaults to a synchronized map)
}

// ApplyDefaults fills unset fields.
func (opts *GeneratorOpts) ApplyDefaults() {
	if opts.Source == nil {
		opts.Source = DefaultSource
	}
	if opts.Cache == nil {
		opts.Cache = NewSyncCache(nil)
	}
}

// Generator derives NTRU keys for one parameter set. Everything except
// NewSeed is a deterministic function of the seed; results are memoized.
type Generator struct {
	par   Params
	srcMu sync.Mutex
	src   io.Reader
	cache KeyCache

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewGenerator returns a Generator for par.
func NewGenerator(par Params, opts GeneratorOpts) (*Generator, error) {
	if par.N == 0 || par.SampleKeyBits == 0 {
		return nil, &ParamError{HRSS: par.HRSS, N: par.N, Q: par.Q, Reason: "params not built with NewParams", Err: ErrUnsupportedParams}
	}
	opts.ApplyDefaults()
	return &Generator{par: par, src: opts.Source, cache: opts.Cache}, nil
}

// Params returns the generator's parameter set.
func (g *Generator) Params() Params { return g.par }

// NewSeed draws SampleKeyBits random bits from the generator's source.
func (g *Generator) NewSeed() (Bits, error) {
	g.srcMu.Lock()
	defer g.srcMu.Unlock()
	return ReadBits(g.src, g.par.SampleKeyBits)
}

// GetKey returns the key (f, g, h) derived from seed, with h = g*f^{-1} mod
// (q, x^n - 1). A seed whose f is not invertible yields an *InversionError;
// the caller should draw a new seed. A malformed seed yields a *ParamError.
func (g *Generator) GetKey(seed Bits) (Key, error) {
	if len(seed) != g.par.SampleKeyBits {
		return Key{}, g.seedError(ErrSeedLength, fmt.Sprintf("seed has %d bits, want %d", len(seed), g.par.SampleKeyBits))
	}
	if err := seed.validate(); err != nil {
		return Key{}, g.seedError(ErrMalformedSeed, err.Error())
	}
	id := string(seed)
	if k, ok := g.cache.Get(id); ok {
		g.hits.Add(1)
		return k.Clone(), nil
	}
	g.misses.Add(1)

	k, err := g.derive(seed)
	if err != nil {
		return Key{}, err
	}
	g.cache.Put(id, k)
	dbg(debugOut, "[Gen] %s cached key #%d\n", g.par, g.cache.Len())
	return k.Clone(), nil
}

func (g *Generator) derive(seed Bits) (Key, error) {
	f, gp, err := g.par.SampleFG(seed)
	if err != nil {
		return Key{}, err
	}
	h, err := PublicH(f, gp, g.par)
	if errors.Is(err, ErrNotInvertible) {
		return Key{}, &InversionError{Params: g.par, Seed: seed.Clone()}
	}
	if err != nil {
		return Key{}, err
	}
	var k Key
	if k.F, err = f.Int64s(); err != nil {
		return Key{}, err
	}
	if k.G, err = gp.Int64s(); err != nil {
		return Key{}, err
	}
	if k.H, err = h.Int64s(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func (g *Generator) seedError(kind error, reason string) error {
	return &ParamError{HRSS: g.par.HRSS, N: g.par.N, Q: g.par.Q, Reason: reason, Err: kind}
}

// Stats reports cache hits and misses of GetKey so far.
func (g *Generator) Stats() (hits, misses uint64) {
	return g.hits.Load(), g.misses.Load()
}

// CacheLen returns the number of memoized keys.
func (g *Generator) CacheLen() int { return g.cache.Len() }
