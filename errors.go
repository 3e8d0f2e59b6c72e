package bn254

import (
	"errors"

	"github.com/go-bn254/bn254/internal/field"
)

// Error kinds surfaced to callers of this package. Every decoding
// failure is reported with one of these sentinels; there is no
// wrapping and no custom error type, matching the internal arithmetic
// layers this façade wraps. The Random constructors return an error
// from the caller's io.Reader unchanged.
var (
	// ErrInvalidSliceLength is returned when a byte slice passed to a
	// decoder does not have the expected fixed length.
	ErrInvalidSliceLength = errors.New("bn254: invalid slice length")

	// ErrInvalidU512Encoding is the error kind for a 64-byte
	// wide-reduction input that cannot be decoded. No exported function
	// of this package takes such an input, so none returns it; it is
	// kept as the façade counterpart of the internal field error.
	ErrInvalidU512Encoding = errors.New("bn254: invalid 512-bit encoding")

	// ErrNotMember is returned when a decoded value is well-formed but
	// out of range: a scalar or field coordinate >= its modulus, or a
	// G2 point on the twist curve but outside the r-torsion subgroup.
	ErrNotMember = errors.New("bn254: value is not a member of the expected group or field")

	// ErrInvalidEncoding is returned when a decoded point fails the
	// curve equation.
	ErrInvalidEncoding = errors.New("bn254: point is not on the curve")

	// ErrToAffineConversion is the error kind for asking the point at
	// infinity for affine coordinates, which it has none of. G1 and G2
	// expose no affine-coordinate accessor, so no function of this
	// package returns it; their Bytes methods encode the identity as
	// all zeros instead.
	ErrToAffineConversion = errors.New("bn254: point at infinity has no affine representation")
)

// translateFieldErr maps an internal/field sentinel to its façade
// equivalent so callers only ever see this package's error values.
func translateFieldErr(err error) error {
	switch err {
	case field.ErrInvalidSliceLength:
		return ErrInvalidSliceLength
	case field.ErrInvalidU512Encoding:
		return ErrInvalidU512Encoding
	case field.ErrNotMember:
		return ErrNotMember
	default:
		return err
	}
}
