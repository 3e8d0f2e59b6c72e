// Package field implements the fixed-width modular integer layer (U256,
// U512) and the BN254 prime fields Fq and Fr built on top of it.
//
// The layout follows the teacher's own bn254 field files
// (bn254_fp.go / bn254_fp_extended.go in the reference package), but
// trades math/big for fixed 4x64-bit limb arithmetic plus Montgomery
// form, per the spec's constant-time requirement: field operations on
// secret scalars must not branch on the secret value.
package field

import (
	"errors"
	"math/bits"
)

// ErrInvalidSliceLength is returned when a byte slice presented for
// decoding is not exactly 32 bytes.
var ErrInvalidSliceLength = errors.New("field: input is not 32 bytes")

// ErrNotMember is returned when a decoded 256-bit value is not a
// canonical member of the target field (value >= modulus).
var ErrNotMember = errors.New("field: value is not a member of the field")

// ErrInvalidU512Encoding is returned when a 64-byte wide-reduction
// input is malformed (wrong length).
var ErrInvalidU512Encoding = errors.New("field: invalid 512-bit encoding")

// U256 is an unsigned 256-bit integer stored as four 64-bit limbs,
// little-endian (limbs[0] is least significant). It carries no
// implicit modulus; Fq and Fr layer Montgomery semantics on top.
type U256 struct {
	limbs [4]uint64
}

// U256FromLimbs builds a U256 directly from little-endian limbs.
func U256FromLimbs(l0, l1, l2, l3 uint64) U256 {
	return U256{limbs: [4]uint64{l0, l1, l2, l3}}
}

// Zero is the additive identity.
func Zero() U256 { return U256{} }

// One is the integer 1.
func One() U256 { return U256{limbs: [4]uint64{1, 0, 0, 0}} }

// IsZero reports whether x is zero.
func (x U256) IsZero() bool {
	return x.limbs[0]|x.limbs[1]|x.limbs[2]|x.limbs[3] == 0
}

// Equal reports whether x == y.
func (x U256) Equal(y U256) bool {
	return x.limbs == y.limbs
}

// Cmp compares x and y lexicographically from the most significant
// limb to the least, returning -1, 0 or 1. Intended for use on public
// values (decoding, equality checks); it is not constant-time.
func (x U256) Cmp(y U256) int {
	for i := 3; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Bit returns bit i (0 = least significant) of x.
func (x U256) Bit(i int) uint {
	if i < 0 || i >= 256 {
		return 0
	}
	return uint((x.limbs[i/64] >> uint(i%64)) & 1)
}

// BitLen returns the number of bits required to represent x, with
// BitLen(0) == 0.
func (x U256) BitLen() int {
	for i := 3; i >= 0; i-- {
		if x.limbs[i] != 0 {
			return i*64 + bits.Len64(x.limbs[i])
		}
	}
	return 0
}

// FromBytesBE decodes a big-endian 32-byte slice into a U256. It does
// not range-check against any modulus; callers needing a field element
// call FqFromBytes / FrFromBytes instead.
func FromBytesBE(b []byte) (U256, error) {
	if len(b) != 32 {
		return U256{}, ErrInvalidSliceLength
	}
	var out U256
	for i := 0; i < 4; i++ {
		// limbs[3] holds the most significant 8 bytes (b[0:8]).
		off := i * 8
		be := b[off : off+8]
		out.limbs[3-i] = uint64(be[0])<<56 | uint64(be[1])<<48 | uint64(be[2])<<40 |
			uint64(be[3])<<32 | uint64(be[4])<<24 | uint64(be[5])<<16 |
			uint64(be[6])<<8 | uint64(be[7])
	}
	return out, nil
}

// BytesBE encodes x as a big-endian 32-byte array.
func (x U256) BytesBE() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		limb := x.limbs[3-i]
		off := i * 8
		out[off+0] = byte(limb >> 56)
		out[off+1] = byte(limb >> 48)
		out[off+2] = byte(limb >> 40)
		out[off+3] = byte(limb >> 32)
		out[off+4] = byte(limb >> 24)
		out[off+5] = byte(limb >> 16)
		out[off+6] = byte(limb >> 8)
		out[off+7] = byte(limb)
	}
	return out
}

// add4 returns x+y mod 2^256 and the carry out of the top limb.
func add4(x, y [4]uint64) ([4]uint64, uint64) {
	var out [4]uint64
	var c uint64
	out[0], c = bits.Add64(x[0], y[0], 0)
	out[1], c = bits.Add64(x[1], y[1], c)
	out[2], c = bits.Add64(x[2], y[2], c)
	out[3], c = bits.Add64(x[3], y[3], c)
	return out, c
}

// sub4 returns x-y mod 2^256 and the borrow out of the top limb.
func sub4(x, y [4]uint64) ([4]uint64, uint64) {
	var out [4]uint64
	var b uint64
	out[0], b = bits.Sub64(x[0], y[0], 0)
	out[1], b = bits.Sub64(x[1], y[1], b)
	out[2], b = bits.Sub64(x[2], y[2], b)
	out[3], b = bits.Sub64(x[3], y[3], b)
	return out, b
}

func geq4(x, y [4]uint64) bool {
	for i := 3; i >= 0; i-- {
		if x[i] != y[i] {
			return x[i] > y[i]
		}
	}
	return true
}
