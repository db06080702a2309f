package ntru

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedParams is returned for an (HRSS, n, q) combination the
	// generator cannot serve.
	ErrUnsupportedParams = errors.New("ntru: unsupported parameter set")
	// ErrSeedLength is returned when a seed does not carry exactly
	// SampleKeyBits bits.
	ErrSeedLength = errors.New("ntru: seed has wrong length")
	// ErrMalformedSeed is returned when a seed entry is neither 0 nor 1.
	ErrMalformedSeed = errors.New("ntru: seed entry is not a bit")
	// ErrNotInvertible is returned when f has no inverse mod (2, Φ_n).
	ErrNotInvertible = errors.New("ntru: polynomial is not invertible")

	ErrLengthMismatch  = errors.New("ntru: coefficient length mismatch")
	ErrZeroModulus     = errors.New("ntru: zero modulus")
	ErrNonMonicModulus = errors.New("ntru: modulus polynomial is not monic")
)

// ParamError reports an invalid parameter set or a malformed seed. It is a
// caller error and is never retried.
type ParamError struct {
	HRSS   bool
	N      int
	Q      int64
	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: hrss=%v n=%d q=%d: %s", e.Err, e.HRSS, e.N, e.Q, e.Reason)
}

func (e *ParamError) Unwrap() error { return e.Err }

// InversionError reports a seed whose f is not invertible. Callers draw a new
// seed and try again.
type InversionError struct {
	Params Params
	Seed   Bits
}

func (e *InversionError) Error() string {
	return fmt.Sprintf("%v: %s seed of %d bits", ErrNotInvertible, e.Params, len(e.Seed))
}

func (e *InversionError) Unwrap() error { return ErrNotInvertible }
