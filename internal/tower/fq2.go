// Package tower implements the BN254 extension tower
// Fq2 = Fq[u]/(u^2+1), Fq6 = Fq2[v]/(v^3-xi) and
// Fq12 = Fq6[w]/(w^2-v), with xi = 9+u the sextic non-residue used
// for the D-type twist. Fq12 is the pairing target group before the
// public façade wraps it as Gt.
package tower

import "github.com/go-bn254/bn254/internal/field"

// Fq2 is an element a0 + a1*u of Fq[u]/(u^2+1).
type Fq2 struct {
	A0, A1 field.Fq
}

// Fq2Zero returns the additive identity.
func Fq2Zero() Fq2 { return Fq2{} }

// Fq2One returns the multiplicative identity.
func Fq2One() Fq2 { return Fq2{A0: field.FqOne()} }

// Fq2Select returns x if bit == 1, else y, componentwise via
// field.FqSelect. Used by constant-time scalar ladders that must not
// branch on a secret bit.
func Fq2Select(bit uint, x, y Fq2) Fq2 {
	return Fq2{A0: field.FqSelect(bit, x.A0, y.A0), A1: field.FqSelect(bit, x.A1, y.A1)}
}

// IsZero reports whether x is the additive identity.
func (x Fq2) IsZero() bool { return x.A0.IsZero() && x.A1.IsZero() }

// Equal reports componentwise equality.
func (x Fq2) Equal(y Fq2) bool { return x.A0.Equal(y.A0) && x.A1.Equal(y.A1) }

// Add returns x+y.
func (x Fq2) Add(y Fq2) Fq2 {
	return Fq2{A0: x.A0.Add(y.A0), A1: x.A1.Add(y.A1)}
}

// Sub returns x-y.
func (x Fq2) Sub(y Fq2) Fq2 {
	return Fq2{A0: x.A0.Sub(y.A0), A1: x.A1.Sub(y.A1)}
}

// Neg returns -x.
func (x Fq2) Neg() Fq2 {
	return Fq2{A0: x.A0.Neg(), A1: x.A1.Neg()}
}

// Conjugate returns a0 - a1*u, the Fq-linear conjugate.
func (x Fq2) Conjugate() Fq2 {
	return Fq2{A0: x.A0, A1: x.A1.Neg()}
}

// Mul returns x*y via Karatsuba:
// (a0+a1*u)(b0+b1*u) = (a0*b0 - a1*b1) + (a0*b1 + a1*b0)*u.
func (x Fq2) Mul(y Fq2) Fq2 {
	v0 := x.A0.Mul(y.A0)
	v1 := x.A1.Mul(y.A1)
	return Fq2{
		A0: v0.Sub(v1),
		A1: x.A0.Add(x.A1).Mul(y.A0.Add(y.A1)).Sub(v0).Sub(v1),
	}
}

// Square returns x^2 as (a0+a1)(a0-a1) + 2*a0*a1*u.
func (x Fq2) Square() Fq2 {
	ab := x.A0.Mul(x.A1)
	return Fq2{
		A0: x.A0.Add(x.A1).Mul(x.A0.Sub(x.A1)),
		A1: ab.Add(ab),
	}
}

// Inverse returns x^-1 via (a - b*u) / (a^2 + b^2). ok is false iff x
// is zero.
func (x Fq2) Inverse() (Fq2, bool) {
	norm := x.A0.Square().Add(x.A1.Square())
	inv, ok := norm.Inverse()
	if !ok {
		return Fq2{}, false
	}
	return Fq2{A0: x.A0.Mul(inv), A1: x.A1.Neg().Mul(inv)}, true
}

// MulByNonResidue multiplies x by the sextic non-residue xi = 9+u
// used for both the Fq6 modulus and the G2 twist:
// (a+b*u)(9+u) = (9a-b) + (a+9b)*u.
func (x Fq2) MulByNonResidue() Fq2 {
	nine := field.FqFromUint64(9)
	return Fq2{
		A0: x.A0.Mul(nine).Sub(x.A1),
		A1: x.A1.Mul(nine).Add(x.A0),
	}
}

// MulByFq scales x by an Fq element.
func (x Fq2) MulByFq(s field.Fq) Fq2 {
	return Fq2{A0: x.A0.Mul(s), A1: x.A1.Mul(s)}
}

// Frobenius returns x^q, i.e. conjugation (the Frobenius of Fq2/Fq
// has order 2 and coincides with Conjugate).
func (x Fq2) Frobenius() Fq2 { return x.Conjugate() }
