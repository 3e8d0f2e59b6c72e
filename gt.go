package bn254

import (
	"fmt"

	"github.com/go-bn254/bn254/internal/field"
	"github.com/go-bn254/bn254/internal/tower"
)

// Gt is an element of the pairing target group, the order-r subgroup
// of the Fq12 multiplicative group.
type Gt struct {
	inner tower.Fq12
}

// GtOne returns the multiplicative identity.
func GtOne() Gt { return Gt{inner: tower.Fq12One()} }

// IsOne reports whether g is the identity.
func (g Gt) IsOne() bool { return g.inner.IsOne() }

// Equal reports whether g and h represent the same value.
func (g Gt) Equal(h Gt) bool { return g.inner.Equal(h.inner) }

// Mul returns g*h.
func (g Gt) Mul(h Gt) Gt { return Gt{inner: g.inner.Mul(h.inner)} }

// Inverse returns g^-1. ok is false iff g is zero, which no Gt element
// produced by this package ever is.
func (g Gt) Inverse() (Gt, bool) {
	inv, ok := g.inner.Inverse()
	if !ok {
		return Gt{}, false
	}
	return Gt{inner: inv}, true
}

// Pow returns g^k.
func (g Gt) Pow(k Scalar) Gt { return Gt{inner: g.inner.Exp(k.inner)} }

// Bytes encodes g as 384 bytes: twelve 32-byte big-endian Fq limbs in
// the fixed order c0.c0.c0, c0.c0.c1, c0.c1.c0, c0.c1.c1, c0.c2.c0,
// c0.c2.c1, c1.c0.c0, c1.c0.c1, c1.c1.c0, c1.c1.c1, c1.c2.c0, c1.c2.c1
// — where Fq12 = (c0,c1) over Fq6, each Fq6 = (c0,c1,c2) over Fq2, and
// each Fq2 = (c0,c1).
func (g Gt) Bytes() [384]byte {
	var out [384]byte
	limbs := [12]field.Fq{
		g.inner.C0.C0.A0, g.inner.C0.C0.A1,
		g.inner.C0.C1.A0, g.inner.C0.C1.A1,
		g.inner.C0.C2.A0, g.inner.C0.C2.A1,
		g.inner.C1.C0.A0, g.inner.C1.C0.A1,
		g.inner.C1.C1.A0, g.inner.C1.C1.A1,
		g.inner.C1.C2.A0, g.inner.C1.C2.A1,
	}
	for i, limb := range limbs {
		b := limb.Bytes()
		copy(out[i*32:(i+1)*32], b[:])
	}
	return out
}

// GtFromBytes decodes a 384-byte Gt encoding produced by Bytes. It
// does not verify group membership; callers that need an
// authenticated Gt value should derive it from Pairing instead of
// decoding untrusted bytes.
func GtFromBytes(b []byte) (Gt, error) {
	if len(b) != 384 {
		return Gt{}, ErrInvalidSliceLength
	}
	var limbs [12]field.Fq
	for i := range limbs {
		v, err := field.FqFromBytes(b[i*32 : (i+1)*32])
		if err != nil {
			return Gt{}, translateFieldErr(err)
		}
		limbs[i] = v
	}
	return Gt{inner: tower.Fq12{
		C0: tower.Fq6{
			C0: tower.Fq2{A0: limbs[0], A1: limbs[1]},
			C1: tower.Fq2{A0: limbs[2], A1: limbs[3]},
			C2: tower.Fq2{A0: limbs[4], A1: limbs[5]},
		},
		C1: tower.Fq6{
			C0: tower.Fq2{A0: limbs[6], A1: limbs[7]},
			C1: tower.Fq2{A0: limbs[8], A1: limbs[9]},
			C2: tower.Fq2{A0: limbs[10], A1: limbs[11]},
		},
	}}, nil
}

// String renders g's encoding as hex, for debugging only.
func (g Gt) String() string {
	b := g.Bytes()
	return fmt.Sprintf("%x", b)
}
