package bn254

import (
	"fmt"
	"io"

	"github.com/go-bn254/bn254/internal/curve"
	"github.com/go-bn254/bn254/internal/field"
	"github.com/go-bn254/bn254/internal/tower"
)

// G2 is a point in the order-r group G2, the r-torsion subgroup of
// the sextic twist E'(Fq2).
type G2 struct {
	inner curve.G2
}

// G2Zero returns the identity element of G2.
func G2Zero() G2 { return G2{inner: curve.G2Infinity()} }

// G2One returns the standard generator of G2.
func G2One() G2 { return G2{inner: curve.G2Generator()} }

// G2Random samples a uniformly-distributed G2 element as a random
// scalar multiple of the generator.
func G2Random(r io.Reader) (G2, error) {
	k, err := field.FrRandom(r)
	if err != nil {
		return G2{}, err
	}
	return G2{inner: curve.G2Generator().ScalarMul(k)}, nil
}

// IsZero reports whether p is the identity.
func (p G2) IsZero() bool { return p.inner.IsInfinity() }

// Equal reports whether p and q represent the same point.
func (p G2) Equal(q G2) bool { return p.inner.Equal(q.inner) }

// Add returns p+q.
func (p G2) Add(q G2) G2 { return G2{inner: p.inner.Add(q.inner)} }

// Sub returns p-q.
func (p G2) Sub(q G2) G2 { return G2{inner: p.inner.Add(q.inner.Neg())} }

// Neg returns -p.
func (p G2) Neg() G2 { return G2{inner: p.inner.Neg()} }

// ScalarMul returns [k]p.
func (p G2) ScalarMul(k Scalar) G2 { return G2{inner: p.inner.ScalarMul(k.inner)} }

// Bytes encodes p as 128 bytes. Each Fq2 coordinate is written as
// (c1, c0) — the "imaginary" component first — with each Fq limb a
// 32-byte big-endian value, per this package's wire convention. The
// identity encodes as 128 zero bytes.
func (p G2) Bytes() [128]byte {
	var out [128]byte
	if p.IsZero() {
		return out
	}
	x, y, _ := p.inner.ToAffine()
	writeFq2(out[0:64], x)
	writeFq2(out[64:128], y)
	return out
}

func writeFq2(dst []byte, v tower.Fq2) {
	c1 := v.A1.Bytes()
	c0 := v.A0.Bytes()
	copy(dst[0:32], c1[:])
	copy(dst[32:64], c0[:])
}

func readFq2(src []byte) (tower.Fq2, error) {
	c1, err := field.FqFromBytes(src[0:32])
	if err != nil {
		return tower.Fq2{}, translateFieldErr(err)
	}
	c0, err := field.FqFromBytes(src[32:64])
	if err != nil {
		return tower.Fq2{}, translateFieldErr(err)
	}
	return tower.Fq2{A0: c0, A1: c1}, nil
}

// G2FromBytes decodes an uncompressed 128-byte G2 encoding, verifying
// the point lies on the twist curve and in the order-r subgroup.
func G2FromBytes(b []byte) (G2, error) {
	if len(b) != 128 {
		return G2{}, ErrInvalidSliceLength
	}
	x, err := readFq2(b[0:64])
	if err != nil {
		return G2{}, err
	}
	y, err := readFq2(b[64:128])
	if err != nil {
		return G2{}, err
	}
	if !curve.G2IsOnCurve(x, y) {
		return G2{}, ErrInvalidEncoding
	}
	pt := curve.G2FromAffine(x, y)
	if !pt.InSubgroup() {
		return G2{}, ErrNotMember
	}
	return G2{inner: pt}, nil
}

// String renders p's uncompressed encoding as hex, for debugging only.
func (p G2) String() string {
	b := p.Bytes()
	return fmt.Sprintf("%x", b)
}
