package bn254

import (
	"fmt"
	"io"

	"github.com/go-bn254/bn254/internal/field"
)

// Scalar is an element of Fr, the group order of G1, G2 and Gt, and
// the type used for exponents throughout this package.
type Scalar struct {
	inner field.Fr
}

// ScalarZero returns the additive identity.
func ScalarZero() Scalar { return Scalar{inner: field.FrZero()} }

// ScalarOne returns the multiplicative identity.
func ScalarOne() Scalar { return Scalar{inner: field.FrOne()} }

// ScalarFromUint64 builds a Scalar from a small non-negative integer.
func ScalarFromUint64(v uint64) Scalar { return Scalar{inner: field.FrFromUint64(v)} }

// ScalarFromDecimal parses a base-10 string, failing with ErrNotMember
// if the value is out of range.
func ScalarFromDecimal(s string) (Scalar, error) {
	v, err := field.FrFromDecimal(s)
	if err != nil {
		return Scalar{}, ErrNotMember
	}
	return Scalar{inner: v}, nil
}

// ScalarRandom samples a uniformly-distributed Scalar using r as its
// randomness source. See the package-level note on wide-reduction
// semantics: this interprets 64 bytes from r and reduces modulo Fr's
// modulus without rejection sampling.
func ScalarRandom(r io.Reader) (Scalar, error) {
	v, err := field.FrRandom(r)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{inner: v}, nil
}

// ScalarFromBytes decodes a canonical big-endian 32-byte scalar,
// failing with ErrInvalidSliceLength or ErrNotMember.
func ScalarFromBytes(b []byte) (Scalar, error) {
	v, err := field.FrFromBytes(b)
	if err != nil {
		return Scalar{}, translateFieldErr(err)
	}
	return Scalar{inner: v}, nil
}

// Bytes encodes s as its canonical big-endian 32-byte representation.
func (s Scalar) Bytes() [32]byte { return s.inner.Bytes() }

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.inner.IsZero() }

// Equal reports whether s and t represent the same value.
func (s Scalar) Equal(t Scalar) bool { return s.inner.Equal(t.inner) }

// Add returns s+t.
func (s Scalar) Add(t Scalar) Scalar { return Scalar{inner: s.inner.Add(t.inner)} }

// Sub returns s-t.
func (s Scalar) Sub(t Scalar) Scalar { return Scalar{inner: s.inner.Sub(t.inner)} }

// Neg returns -s.
func (s Scalar) Neg() Scalar { return Scalar{inner: s.inner.Neg()} }

// Mul returns s*t.
func (s Scalar) Mul(t Scalar) Scalar { return Scalar{inner: s.inner.Mul(t.inner)} }

// Inverse returns s^-1. ok is false iff s is zero.
func (s Scalar) Inverse() (Scalar, bool) {
	inv, ok := s.inner.Inverse()
	if !ok {
		return Scalar{}, false
	}
	return Scalar{inner: inv}, true
}

// String renders s as a hex-encoded big-endian scalar, for debugging
// only; it is not a format this package parses back.
func (s Scalar) String() string {
	b := s.Bytes()
	return fmt.Sprintf("%x", b)
}
