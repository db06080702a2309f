// Package ntru generates NTRU-HRSS and NTRU-HPS key triples (f, g, h) used
// as hard instances for lattice cryptanalysis experiments.
//
// Keys follow the NTRU round-3 key generation: small polynomials f and g are
// sampled from a seed and h = g*f^{-1} is computed in Z_q[x]/(x^n - 1), with
// the inverse taken in Z_q[x]/Φ_n through an inverse mod 2 and 2-adic Hensel
// lifting. All arithmetic is exact (math/big). Given a seed the whole
// computation is deterministic; only Generator.NewSeed draws randomness.
package ntru
