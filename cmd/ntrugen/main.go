package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"lwe-hints/lwe"
	"lwe-hints/ntru"
	ntruio "lwe-hints/ntru/io"
	"lwe-hints/ntru/keys"
	"lwe-hints/prof"
)

func usage() {
	fmt.Printf(`usage: ntrugen <gen|check|instance> [options]

Subcommands:
  gen       Generate an NTRU key and write <dir>/{public,private}.json
            Flags:
              -variant <name>    %s (default: HRSS)
              -params  <file>    JSON parameter file (overrides -variant)
              -seed    <string>  expand seeds from this string with SHAKE-256
                                 instead of the system CSPRNG
              -prng-key <hex>    draw seeds from a keyed PRNG (overrides -seed)
              -trials  <int>     max seeds to try (default: %d)
              -out     <dir>     output directory (default: ntru_keys)

  check     Verify <dir>/private.json: h = g*f^-1 and f*h = g mod (q, x^n-1)
            Flags:
              -dir <dir>         key directory (default: ntru_keys)
              -reseed            also re-derive the key from its stored seed

  instance  Write an LWE instance A = rot(h), s = f, e = -g, b = s*A + e
            Flags:
              -variant, -params, -seed, -prng-key, -trials as for gen
              -out <file>        output JSON (default: lwe_instance.json)
              -no-secret         omit s and e from the file
`, strings.Join(ntru.PresetNames(), "|"), lwe.DefaultMaxTrials)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "gen":
		runGen(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "instance":
		runInstance(os.Args[2:])
	default:
		usage()
	}
}

type genFlags struct {
	variant *string
	params  *string
	seed    *string
	prngKey *string
	trials  *int
}

func addGenFlags(fs *flag.FlagSet) genFlags {
	return genFlags{
		variant: fs.String("variant", "HRSS", "parameter preset"),
		params:  fs.String("params", "", "JSON parameter file"),
		seed:    fs.String("seed", "", "deterministic seed string"),
		prngKey: fs.String("prng-key", "", "hex key of a deterministic PRNG seed source"),
		trials:  fs.Int("trials", lwe.DefaultMaxTrials, "max seeds to try"),
	}
}

// resolve returns the parameter set, its display name and the bit source.
func (g genFlags) resolve() (ntru.Params, string, io.Reader) {
	name := *g.variant
	var (
		par ntru.Params
		err error
	)
	if *g.params != "" {
		var sp ntruio.SystemParams
		sp, err = ntruio.LoadParams(*g.params)
		if err != nil {
			log.Fatalf("load params: %v", err)
		}
		par, err = sp.Build()
		if sp.Variant != "" {
			name = sp.Variant
		} else {
			name = ""
		}
	} else {
		par, err = ntru.Preset(name)
	}
	if err != nil {
		log.Fatalf("params: %v", err)
	}
	if name == "" {
		name = par.String()
	}
	var src io.Reader = ntru.DefaultSource
	switch {
	case *g.prngKey != "":
		key, err := hex.DecodeString(*g.prngKey)
		if err != nil {
			log.Fatalf("prng-key: %v", err)
		}
		if src, err = ntru.NewKeyedSource(key); err != nil {
			log.Fatalf("prng-key: %v", err)
		}
	case *g.seed != "":
		src = ntru.NewShakeSource([]byte(*g.seed))
	}
	return par, name, src
}

func drawKey(par ntru.Params, src io.Reader, trials int) (ntru.Bits, ntru.Key, int) {
	defer prof.Track(time.Now(), "keygen")
	gen, err := ntru.NewGenerator(par, ntru.GeneratorOpts{Source: src})
	if err != nil {
		log.Fatalf("generator: %v", err)
	}
	seed, k, used, err := lwe.DrawKey(gen, trials)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	return seed, k, used
}

func runGen(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	gf := addGenFlags(fs)
	out := fs.String("out", "ntru_keys", "output directory")
	fs.Parse(args)

	par, name, src := gf.resolve()
	seed, k, used := drawKey(par, src, *gf.trials)
	pk, sk := keys.FromKey(name, par, seed, k, used)
	if err := keys.SavePublic(*out, pk); err != nil {
		log.Fatalf("save public: %v", err)
	}
	if err := keys.SavePrivate(*out, sk); err != nil {
		log.Fatalf("save private: %v", err)
	}
	fmt.Printf("gen: %s n=%d q=%d trials_used=%d\n", name, par.N, par.Q, used)
	prof.Dump(os.Stdout)
	fmt.Printf("keys written to %s\n", *out)
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	dir := fs.String("dir", "ntru_keys", "key directory")
	reseed := fs.Bool("reseed", false, "re-derive the key from its stored seed")
	fs.Parse(args)

	sk, err := keys.LoadPrivate(*dir)
	if err != nil {
		log.Fatalf("load private: %v", err)
	}
	pk, err := keys.LoadPublic(*dir)
	if err != nil {
		log.Fatalf("load public: %v", err)
	}
	if !equalInt64(pk.HCoeffs, sk.HCoeffs) {
		log.Fatalf("check: public and private h differ")
	}
	if err := sk.Check(); err != nil {
		log.Fatalf("check: %v", err)
	}
	if *reseed {
		if sk.SeedHex == "" {
			log.Fatalf("check: private key carries no seed")
		}
		if err := checkSeed(sk); err != nil {
			log.Fatalf("check: %v", err)
		}
	}
	fmt.Printf("check: %s n=%d q=%d h_linf=%d ok\n", sk.Variant, sk.N, sk.Q, maxAbs(sk.HCoeffs))
}

func checkSeed(sk *keys.PrivateKey) error {
	par, err := sk.Params()
	if err != nil {
		return err
	}
	seed, err := sk.Seed()
	if err != nil {
		return err
	}
	gen, err := ntru.NewGenerator(par, ntru.GeneratorOpts{})
	if err != nil {
		return err
	}
	k, err := gen.GetKey(seed)
	if err != nil {
		return err
	}
	if !equalInt64(k.F, sk.Fsmall) || !equalInt64(k.G, sk.Gsmall) || !equalInt64(k.H, sk.HCoeffs) {
		return errors.New("stored key does not match its seed")
	}
	return nil
}

func runInstance(args []string) {
	fs := flag.NewFlagSet("instance", flag.ExitOnError)
	gf := addGenFlags(fs)
	out := fs.String("out", "lwe_instance.json", "output file")
	noSecret := fs.Bool("no-secret", false, "omit s and e")
	fs.Parse(args)

	par, name, src := gf.resolve()
	_, k, used := drawKey(par, src, *gf.trials)
	start := time.Now()
	inst, err := lwe.FromKey(k, par.Q)
	prof.Track(start, "instance")
	if err != nil {
		log.Fatalf("instance: %v", err)
	}
	if *noSecret {
		inst.S, inst.E = nil, nil
	}
	if err := lwe.Save(*out, inst); err != nil {
		log.Fatalf("save instance: %v", err)
	}
	fmt.Printf("instance: %s n=%d q=%d trials_used=%d\n", name, par.N, par.Q, used)
	prof.Dump(os.Stdout)
	fmt.Printf("instance written to %s\n", *out)
}

func equalInt64(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func maxAbs(vals []int64) int64 {
	var m int64
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}
