package bn254

import (
	"fmt"
	"io"

	"github.com/go-bn254/bn254/internal/curve"
	"github.com/go-bn254/bn254/internal/field"
)

// G1 is a point in the order-r group G1 = E(Fq).
type G1 struct {
	inner curve.G1
}

// G1Zero returns the identity element of G1.
func G1Zero() G1 { return G1{inner: curve.G1Infinity()} }

// G1One returns the standard generator of G1.
func G1One() G1 { return G1{inner: curve.G1Generator()} }

// G1Random samples a uniformly-distributed G1 element as a random
// scalar multiple of the generator.
func G1Random(r io.Reader) (G1, error) {
	k, err := field.FrRandom(r)
	if err != nil {
		return G1{}, err
	}
	return G1{inner: curve.G1Generator().ScalarMul(k)}, nil
}

// IsZero reports whether p is the identity.
func (p G1) IsZero() bool { return p.inner.IsInfinity() }

// Equal reports whether p and q represent the same point.
func (p G1) Equal(q G1) bool { return p.inner.Equal(q.inner) }

// Add returns p+q.
func (p G1) Add(q G1) G1 { return G1{inner: p.inner.Add(q.inner)} }

// Sub returns p-q.
func (p G1) Sub(q G1) G1 { return G1{inner: p.inner.Add(q.inner.Neg())} }

// Neg returns -p.
func (p G1) Neg() G1 { return G1{inner: p.inner.Neg()} }

// ScalarMul returns [k]p.
func (p G1) ScalarMul(k Scalar) G1 { return G1{inner: p.inner.ScalarMul(k.inner)} }

// Bytes encodes p as 64 bytes: x || y, each a canonical big-endian Fq
// element. The identity encodes as 64 zero bytes.
func (p G1) Bytes() [64]byte {
	var out [64]byte
	if p.IsZero() {
		return out
	}
	x, y, _ := p.inner.ToAffine()
	xb := x.Bytes()
	yb := y.Bytes()
	copy(out[0:32], xb[:])
	copy(out[32:64], yb[:])
	return out
}

// G1FromBytes decodes an uncompressed 64-byte G1 encoding, verifying
// the point lies on the curve.
func G1FromBytes(b []byte) (G1, error) {
	if len(b) != 64 {
		return G1{}, ErrInvalidSliceLength
	}
	x, err := field.FqFromBytes(b[0:32])
	if err != nil {
		return G1{}, translateFieldErr(err)
	}
	y, err := field.FqFromBytes(b[32:64])
	if err != nil {
		return G1{}, translateFieldErr(err)
	}
	if !curve.IsOnCurve(x, y) {
		return G1{}, ErrInvalidEncoding
	}
	return G1{inner: curve.G1FromAffine(x, y)}, nil
}

// CompressedBytes encodes p as 32 bytes: the x-coordinate with the
// parity of y folded into the top bit of the first byte. The identity
// encodes as 32 zero bytes.
func (p G1) CompressedBytes() [32]byte {
	var out [32]byte
	if p.IsZero() {
		return out
	}
	x, y, _ := p.inner.ToAffine()
	out = x.Bytes()
	if yIsOdd(y) {
		out[0] |= 0x80
	}
	return out
}

// G1FromCompressedBytes decodes a compressed 32-byte G1 encoding,
// recovering y via a field square root and verifying the curve
// equation.
func G1FromCompressedBytes(b []byte) (G1, error) {
	if len(b) != 32 {
		return G1{}, ErrInvalidSliceLength
	}
	if isAllZero(b) {
		return G1Zero(), nil
	}
	var xb [32]byte
	copy(xb[:], b)
	wantOdd := xb[0]&0x80 != 0
	xb[0] &^= 0x80

	x, err := field.FqFromBytes(xb[:])
	if err != nil {
		return G1{}, translateFieldErr(err)
	}
	rhs := x.Square().Mul(x).Add(field.FqFromUint64(3))
	y, ok := rhs.Sqrt()
	if !ok {
		return G1{}, ErrInvalidEncoding
	}
	if yIsOdd(y) != wantOdd {
		y = y.Neg()
	}
	if !curve.IsOnCurve(x, y) {
		return G1{}, ErrInvalidEncoding
	}
	return G1{inner: curve.G1FromAffine(x, y)}, nil
}

// String renders p's uncompressed encoding as hex, for debugging only.
func (p G1) String() string {
	b := p.Bytes()
	return fmt.Sprintf("%x", b)
}

func yIsOdd(y field.Fq) bool {
	b := y.Bytes()
	return b[31]&1 == 1
}

func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
