package field

import (
	"io"

	"github.com/holiman/uint256"
)

// frParams is the BN254 scalar field modulus r (the group order).
var frParams = newModParams("21888242871839275222246405745257275088548364400416034343698204186575808495617")

// Fr is an element of the BN254 scalar field, the field of exponents
// for G1, G2 and GT. Internally stored in Montgomery form, like Fq.
type Fr struct {
	v U256
}

// FrZero returns the additive identity of Fr.
func FrZero() Fr { return Fr{} }

// FrOne returns the multiplicative identity of Fr.
func FrOne() Fr { return Fr{v: frParams.r} }

// FrModulus returns r as a U256.
func FrModulus() U256 { return frParams.modulus }

// FrFromUint64 builds an Fr element from a small non-negative integer.
func FrFromUint64(v uint64) Fr {
	return Fr{v: toMontgomery(U256{limbs: [4]uint64{v, 0, 0, 0}}, &frParams)}
}

// FrFromCanonical wraps an already-reduced canonical U256 (< r).
func FrFromCanonical(x U256) Fr {
	return Fr{v: toMontgomery(x, &frParams)}
}

// FrFromBytes decodes a canonical big-endian 32-byte scalar encoding,
// rejecting values >= r (this is the §6 "Scalar" byte encoding).
func FrFromBytes(b []byte) (Fr, error) {
	raw, err := FromBytesBE(b)
	if err != nil {
		return Fr{}, err
	}
	if geq4(raw.limbs, frParams.modulus.limbs) {
		return Fr{}, ErrNotMember
	}
	return FrFromCanonical(raw), nil
}

// Bytes encodes x as its canonical big-endian 32-byte representation.
func (x Fr) Bytes() [32]byte {
	return fromMontgomery(x.v, &frParams).BytesBE()
}

// Canonical returns x's canonical (non-Montgomery) U256 value, used as
// the bit source for scalar multiplication ladders in internal/curve.
func (x Fr) Canonical() U256 {
	return fromMontgomery(x.v, &frParams)
}

// IsZero reports whether x is the additive identity.
func (x Fr) IsZero() bool { return x.v.IsZero() }

// Equal reports field equality.
func (x Fr) Equal(y Fr) bool { return x.v.Equal(y.v) }

// Add returns x+y.
func (x Fr) Add(y Fr) Fr { return Fr{v: montAdd(x.v, y.v, &frParams)} }

// Sub returns x-y.
func (x Fr) Sub(y Fr) Fr { return Fr{v: montSub(x.v, y.v, &frParams)} }

// Neg returns -x.
func (x Fr) Neg() Fr { return Fr{v: montNeg(x.v, &frParams)} }

// Mul returns x*y.
func (x Fr) Mul(y Fr) Fr { return Fr{v: montMul(x.v, y.v, &frParams)} }

// Square returns x^2.
func (x Fr) Square() Fr { return Fr{v: montSquare(x.v, &frParams)} }

// Inverse returns x^{-1}. ok is false iff x is zero.
func (x Fr) Inverse() (Fr, bool) {
	inv, ok := montInverse(x.v, &frParams)
	if !ok {
		return Fr{}, false
	}
	return Fr{v: inv}, true
}

// Pow returns x raised to the power described by exp's canonical
// integer value.
func (x Fr) Pow(exp Fr) Fr {
	return Fr{v: montPow(x.v, exp.Canonical(), &frParams)}
}

// FrRandom samples a uniformly-distributed Fr element from r by wide
// reduction of 64 random bytes (see SPEC_FULL.md §12 for the
// documented non-rejection-sampling semantics carried from the
// source).
func FrRandom(r io.Reader) (Fr, error) {
	raw, err := randomWide(r)
	if err != nil {
		return Fr{}, err
	}
	return Fr{v: toMontgomery(interpretWide(raw.hi, raw.lo, &frParams), &frParams)}, nil
}

// FrInterpret maps a 64-byte buffer to an Fr element via wide
// reduction, without consuming an RNG.
func FrInterpret(buf [64]byte) (Fr, error) {
	hi, lo, err := splitWide(buf[:])
	if err != nil {
		return Fr{}, err
	}
	return Fr{v: toMontgomery(interpretWide(hi, lo, &frParams), &frParams)}, nil
}

// FrFromDecimal parses a base-10 string into an Fr element, rejecting
// the value if it is out of range. Decimal parsing is delegated to
// holiman/uint256 (the boundary role this dependency plays throughout
// the repo — see SPEC_FULL.md §11) and the resulting 32-byte canonical
// big-endian form is handed to FrFromBytes.
func FrFromDecimal(s string) (Fr, error) {
	var tmp uint256.Int
	if err := tmp.SetFromDecimal(s); err != nil {
		return Fr{}, ErrNotMember
	}
	b := tmp.Bytes32()
	return FrFromBytes(b[:])
}
