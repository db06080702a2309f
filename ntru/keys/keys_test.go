package keys

import (
	"slices"
	"testing"

	"lwe-hints/ntru"
)

func testKey(t *testing.T) (ntru.Params, ntru.Bits, ntru.Key) {
	t.Helper()
	par, err := ntru.NewParams(false, 19, 64)
	if err != nil {
		t.Fatal(err)
	}
	src, err := ntru.NewKeyedSource([]byte("keys"))
	if err != nil {
		t.Fatal(err)
	}
	gen, err := ntru.NewGenerator(par, ntru.GeneratorOpts{Source: src})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		seed, err := gen.NewSeed()
		if err != nil {
			t.Fatal(err)
		}
		if k, err := gen.GetKey(seed); err == nil {
			return par, seed, k
		}
	}
	t.Fatal("no invertible key")
	return par, nil, ntru.Key{}
}

func TestSaveLoadCheck(t *testing.T) {
	par, seed, k := testKey(t)
	pk, sk := FromKey("test", par, seed, k, 1)
	dir := t.TempDir()
	if err := SavePublic(dir, pk); err != nil {
		t.Fatal(err)
	}
	if err := SavePrivate(dir, sk); err != nil {
		t.Fatal(err)
	}

	gotPK, err := LoadPublic(dir)
	if err != nil {
		t.Fatal(err)
	}
	if gotPK.Version != Version || gotPK.N != par.N || gotPK.Q != par.Q || !slices.Equal(gotPK.HCoeffs, k.H) {
		t.Fatalf("public key round trip: %+v", gotPK)
	}
	gotSK, err := LoadPrivate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := gotSK.Check(); err != nil {
		t.Fatalf("Check: %v", err)
	}
	gotSeed, err := gotSK.Seed()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(gotSeed, seed) {
		t.Fatalf("seed round trip mismatch")
	}

	// the stored seed reproduces the stored key
	gen, err := ntru.NewGenerator(par, ntru.GeneratorOpts{})
	if err != nil {
		t.Fatal(err)
	}
	again, err := gen.GetKey(gotSeed)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again.F, gotSK.Fsmall) || !slices.Equal(again.H, gotSK.HCoeffs) {
		t.Fatalf("seed does not reproduce key")
	}
}

func TestCheckDetectsTampering(t *testing.T) {
	par, seed, k := testKey(t)
	_, sk := FromKey("test", par, seed, k.Clone(), 1)
	sk.HCoeffs[0]++
	if err := sk.Check(); err == nil {
		t.Fatalf("Check accepted a modified h")
	}

	_, sk = FromKey("test", par, seed, k.Clone(), 1)
	sk.Gsmall = sk.Gsmall[:par.N-1]
	if err := sk.Check(); err == nil {
		t.Fatalf("Check accepted a short g")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := LoadPrivate(t.TempDir()); err == nil {
		t.Fatalf("LoadPrivate on empty dir succeeded")
	}
}
