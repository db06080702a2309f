package ntru

import (
	"errors"
	"slices"
	"sync"
	"testing"
)

func newTestGenerator(t *testing.T, par Params, key string) *Generator {
	t.Helper()
	src, err := NewKeyedSource([]byte(key))
	if err != nil {
		t.Fatal(err)
	}
	gen, err := NewGenerator(par, GeneratorOpts{Source: src})
	if err != nil {
		t.Fatal(err)
	}
	return gen
}

// checkKey verifies the shape of k and that f*h = g mod (q, x^n - 1).
func checkKey(t *testing.T, par Params, k Key) {
	t.Helper()
	if len(k.F) != par.N || len(k.G) != par.N || len(k.H) != par.N {
		t.Fatalf("key lengths %d/%d/%d, want %d", len(k.F), len(k.G), len(k.H), par.N)
	}
	for i, v := range k.H {
		if 2*v < -par.Q || 2*v >= par.Q {
			t.Fatalf("h[%d] = %d is not centered mod %d", i, v, par.Q)
		}
	}
	fh, err := MulCyclic(FromInt64(k.F), FromInt64(k.H), par.N, par.Q)
	if err != nil {
		t.Fatal(err)
	}
	g, err := ReduceCyclic(FromInt64(k.G), par.N, par.Q)
	if err != nil {
		t.Fatal(err)
	}
	if !fh.Equal(g) {
		t.Fatalf("%s: f*h != g mod q", par)
	}
}

func TestGetKeyRelation(t *testing.T) {
	for _, par := range []Params{
		mustParams(t, false, 19, 64),
		mustParams(t, true, 19, 0),
		mustParams(t, false, 29, 128),
	} {
		gen := newTestGenerator(t, par, "relation")
		for i := 0; i < 5; i++ {
			seed, err := gen.NewSeed()
			if err != nil {
				t.Fatal(err)
			}
			k, err := gen.GetKey(seed)
			if errors.Is(err, ErrNotInvertible) {
				continue
			}
			if err != nil {
				t.Fatalf("%s GetKey: %v", par, err)
			}
			checkKey(t, par, k)
		}
	}
}

func TestGetKeyHRSS701(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size key in short mode")
	}
	par, err := Preset("HRSS")
	if err != nil {
		t.Fatal(err)
	}
	gen := newTestGenerator(t, par, "hrss-701")
	seed, err := gen.NewSeed()
	if err != nil {
		t.Fatal(err)
	}
	k, err := gen.GetKey(seed)
	if err != nil {
		t.Fatalf("GetKey: %v", err)
	}
	checkKey(t, par, k)
}

func TestGetKeyDeterministic(t *testing.T) {
	par := mustParams(t, false, 19, 64)
	a := newTestGenerator(t, par, "same key")
	b := newTestGenerator(t, par, "same key")
	sa, err := a.NewSeed()
	if err != nil {
		t.Fatal(err)
	}
	sb, err := b.NewSeed()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(sa, sb) {
		t.Fatalf("keyed sources produced different seeds")
	}
	ka, errA := a.GetKey(sa)
	kb, errB := b.GetKey(sb)
	if (errA == nil) != (errB == nil) {
		t.Fatalf("errors differ: %v vs %v", errA, errB)
	}
	if !slices.Equal(ka.F, kb.F) || !slices.Equal(ka.G, kb.G) || !slices.Equal(ka.H, kb.H) {
		t.Fatalf("same seed gave different keys")
	}
}

func TestGetKeyCache(t *testing.T) {
	par := mustParams(t, false, 19, 64)
	gen := newTestGenerator(t, par, "cache")
	seed, err := gen.NewSeed()
	if err != nil {
		t.Fatal(err)
	}
	k1, err := gen.GetKey(seed)
	if err != nil {
		t.Fatal(err)
	}
	k1.H[0]++ // callers own what they get back
	k2, err := gen.GetKey(seed)
	if err != nil {
		t.Fatal(err)
	}
	if k2.H[0] == k1.H[0] {
		t.Fatalf("cached key shares storage with a returned copy")
	}
	if hits, misses := gen.Stats(); hits != 1 || misses != 1 {
		t.Fatalf("Stats = %d hits, %d misses", hits, misses)
	}
	if gen.CacheLen() != 1 {
		t.Fatalf("CacheLen = %d", gen.CacheLen())
	}
}

func TestGetKeyBadSeed(t *testing.T) {
	par := mustParams(t, false, 19, 64)
	gen := newTestGenerator(t, par, "bad")

	_, err := gen.GetKey(ZeroBits(par.SampleKeyBits - 1))
	var pe *ParamError
	if !errors.As(err, &pe) || !errors.Is(err, ErrSeedLength) {
		t.Fatalf("short seed: got %v", err)
	}

	seed := ZeroBits(par.SampleKeyBits)
	seed[3] = 2
	if _, err := gen.GetKey(seed); !errors.As(err, &pe) || !errors.Is(err, ErrMalformedSeed) {
		t.Fatalf("malformed seed: got %v", err)
	}
	if _, misses := gen.Stats(); misses != 0 {
		t.Fatalf("rejected seeds reached the cache")
	}
}

func TestGetKeyZeroSeed(t *testing.T) {
	for _, par := range []Params{mustParams(t, false, 19, 64), mustParams(t, true, 19, 0)} {
		gen := newTestGenerator(t, par, "zero")
		seed := ZeroBits(par.SampleKeyBits)
		for i := 0; i < 2; i++ {
			_, err := gen.GetKey(seed)
			var ie *InversionError
			if !errors.As(err, &ie) || !errors.Is(err, ErrNotInvertible) {
				t.Fatalf("%s attempt %d: got %v", par, i, err)
			}
			if len(ie.Seed) != par.SampleKeyBits {
				t.Fatalf("InversionError carries %d bits", len(ie.Seed))
			}
		}
		if gen.CacheLen() != 0 {
			t.Fatalf("failed key was cached")
		}
	}
}

func TestNewGeneratorRejectsZeroParams(t *testing.T) {
	if _, err := NewGenerator(Params{N: 19}, GeneratorOpts{}); !errors.Is(err, ErrUnsupportedParams) {
		t.Fatalf("got %v", err)
	}
}

func TestGetKeyConcurrent(t *testing.T) {
	par := mustParams(t, false, 19, 64)
	gen := newTestGenerator(t, par, "concurrent")
	seeds := make([]Bits, 4)
	for i := range seeds {
		var err error
		if seeds[i], err = gen.NewSeed(); err != nil {
			t.Fatal(err)
		}
	}
	want := make([]Key, len(seeds))
	ref := newTestGenerator(t, par, "reference")
	for i, s := range seeds {
		want[i], _ = ref.GetKey(s)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for j := range seeds {
				i := (w + j) % len(seeds)
				k, err := gen.GetKey(seeds[i])
				if err != nil && !errors.Is(err, ErrNotInvertible) {
					errs <- err
					return
				}
				if !slices.Equal(k.H, want[i].H) {
					errs <- errors.New("concurrent GetKey returned a different key")
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
	if hits, misses := gen.Stats(); hits+misses != 32 {
		t.Fatalf("Stats = %d+%d, want 32 lookups", hits, misses)
	}
}

func TestHRSS701ZeroAndShortSeed(t *testing.T) {
	par, err := NewParams(true, 701, 1<<7)
	if err != nil {
		t.Fatal(err)
	}
	if par.Q != 8192 {
		t.Fatalf("q = %d, want 8192", par.Q)
	}
	var first *InversionError
	for run := 0; run < 2; run++ {
		gen := newTestGenerator(t, par, "independent")
		_, err := gen.GetKey(ZeroBits(par.SampleKeyBits))
		var ie *InversionError
		if !errors.As(err, &ie) {
			t.Fatalf("run %d: got %v, want *InversionError", run, err)
		}
		if first == nil {
			first = ie
		} else if ie.Error() != first.Error() {
			t.Fatalf("runs disagree: %v vs %v", ie, first)
		}

		if _, err := gen.GetKey(ZeroBits(par.SampleKeyBits - 1)); !errors.Is(err, ErrSeedLength) {
			t.Fatalf("short seed: got %v", err)
		}
	}
}
