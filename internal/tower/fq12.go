package tower

import "github.com/go-bn254/bn254/internal/field"

// Fq12 is an element c0 + c1*w of Fq6[w]/(w^2-v). This is the
// pairing's target field; the public façade's Gt type is a thin
// wrapper over it constrained to the order-r cyclotomic subgroup.
type Fq12 struct {
	C0, C1 Fq6
}

// Fq12Zero returns the additive identity.
func Fq12Zero() Fq12 { return Fq12{} }

// Fq12One returns the multiplicative identity.
func Fq12One() Fq12 { return Fq12{C0: Fq6One()} }

// Fq12Select returns x if bit == 1, else y, componentwise via
// Fq6Select. Used by constant-time scalar ladders that must not
// branch on a secret bit.
func Fq12Select(bit uint, x, y Fq12) Fq12 {
	return Fq12{C0: Fq6Select(bit, x.C0, y.C0), C1: Fq6Select(bit, x.C1, y.C1)}
}

// IsOne reports whether x is the multiplicative identity.
func (x Fq12) IsOne() bool {
	return x.C0.C0.Equal(Fq2One()) && x.C0.C1.IsZero() && x.C0.C2.IsZero() && x.C1.IsZero()
}

// Equal reports componentwise equality.
func (x Fq12) Equal(y Fq12) bool { return x.C0.Equal(y.C0) && x.C1.Equal(y.C1) }

// Add returns x+y.
func (x Fq12) Add(y Fq12) Fq12 {
	return Fq12{C0: x.C0.Add(y.C0), C1: x.C1.Add(y.C1)}
}

// Mul returns x*y. (a+b*w)(c+d*w) = (ac+bd*v) + (ad+bc)*w, where
// multiplying by v shifts Fq6 coefficients through MulByV.
func (x Fq12) Mul(y Fq12) Fq12 {
	t1 := x.C0.Mul(y.C0)
	t2 := x.C1.Mul(y.C1)

	c0 := t1.Add(t2.MulByV())
	c1 := x.C0.Add(x.C1).Mul(y.C0.Add(y.C1)).Sub(t1).Sub(t2)

	return Fq12{C0: c0, C1: c1}
}

// Square returns x^2.
func (x Fq12) Square() Fq12 {
	ab := x.C0.Mul(x.C1)

	t := x.C0.Add(x.C1)
	u := x.C0.Add(x.C1.MulByV())
	c0 := t.Mul(u).Sub(ab).Sub(ab.MulByV())
	c1 := ab.Add(ab)

	return Fq12{C0: c0, C1: c1}
}

// Inverse returns x^-1 via (a-b*w) / (a^2 - b^2*v). ok is false iff x
// is zero.
func (x Fq12) Inverse() (Fq12, bool) {
	t := x.C0.Square().Sub(x.C1.Square().MulByV())
	tInv, ok := t.Inverse()
	if !ok {
		return Fq12{}, false
	}
	return Fq12{C0: x.C0.Mul(tInv), C1: x.C1.Neg().Mul(tInv)}, true
}

// Conjugate returns c0 - c1*w, the order-2 automorphism used as the
// cheap inverse for unitary (norm-1) elements in the cyclotomic
// subgroup that the pairing's final exponentiation operates on.
func (x Fq12) Conjugate() Fq12 {
	return Fq12{C0: x.C0, C1: x.C1.Neg()}
}

// Frobenius returns x^q using the tower's precomputed gamma1
// coefficients; see frobenius.go.
func (x Fq12) Frobenius() Fq12 {
	return Fq12{
		C0: Fq6{
			C0: x.C0.C0.Conjugate(),
			C1: x.C0.C1.Conjugate().Mul(frobGamma1[1]),
			C2: x.C0.C2.Conjugate().Mul(frobGamma1[3]),
		},
		C1: Fq6{
			C0: x.C1.C0.Conjugate().Mul(frobGamma1[0]),
			C1: x.C1.C1.Conjugate().Mul(frobGamma1[2]),
			C2: x.C1.C2.Conjugate().Mul(frobGamma1[4]),
		},
	}
}

// FrobeniusSquare returns x^(q^2). Conjugation composed with itself
// is the identity over Fq2, so only scaling by the gamma2
// coefficients is needed.
func (x Fq12) FrobeniusSquare() Fq12 {
	return Fq12{
		C0: Fq6{
			C0: x.C0.C0,
			C1: x.C0.C1.Mul(frobGamma2[1]),
			C2: x.C0.C2.Mul(frobGamma2[3]),
		},
		C1: Fq6{
			C0: x.C1.C0.Mul(frobGamma2[0]),
			C1: x.C1.C1.Mul(frobGamma2[2]),
			C2: x.C1.C2.Mul(frobGamma2[4]),
		},
	}
}

// FrobeniusCube returns x^(q^3) using the gamma3 coefficients.
func (x Fq12) FrobeniusCube() Fq12 {
	return Fq12{
		C0: Fq6{
			C0: x.C0.C0.Conjugate(),
			C1: x.C0.C1.Conjugate().Mul(frobGamma3[1]),
			C2: x.C0.C2.Conjugate().Mul(frobGamma3[3]),
		},
		C1: Fq6{
			C0: x.C1.C0.Conjugate().Mul(frobGamma3[0]),
			C1: x.C1.C1.Conjugate().Mul(frobGamma3[2]),
			C2: x.C1.C2.Conjugate().Mul(frobGamma3[4]),
		},
	}
}

// Exp raises x to the power described by exp's canonical integer
// value, via a fixed-iteration left-to-right square-and-multiply
// ladder over all 256 bits of exp's canonical form: the loop count
// never varies with exp's value, and the conditional multiply is a
// branchless select (Fq12Select) rather than an if on a secret bit.
// Used by the hard part of the final exponentiation's addition chain
// and by the public façade's Gt.Pow.
func (x Fq12) Exp(exp field.Fr) Fq12 {
	return x.expTrace(exp, nil)
}

// expTrace runs the same ladder as Exp, invoking onStep once per
// iteration when non-nil. Production callers always pass a nil
// onStep; tests use it to confirm the ladder always runs a fixed 256
// iterations regardless of exp's value.
func (x Fq12) expTrace(exp field.Fr, onStep func(i int)) Fq12 {
	e := exp.Canonical()
	r := Fq12One()
	for i := 255; i >= 0; i-- {
		if onStep != nil {
			onStep(i)
		}
		r = r.Square()
		cand := r.Mul(x)
		r = Fq12Select(e.Bit(i), cand, r)
	}
	return r
}

// MulBy034 multiplies x by a sparse element with only the (c0.C0,
// c1.C0, c1.C1) Fq2 slots populated — the shape the Miller
// loop's line-function evaluation produces once embedded in Fq12.
func (x Fq12) MulBy034(c0, c3, c4 Fq2) Fq12 {
	t0 := Fq6{C0: x.C0.C0.Mul(c0), C1: x.C0.C1.Mul(c0), C2: x.C0.C2.Mul(c0)}
	t1 := x.C1.MulBy01(c3, c4)

	c0f := t0.Add(t1.MulByV())
	c1f := x.C0.Add(x.C1).MulBy01(c0.Add(c3), c4).Sub(t0).Sub(t1)

	return Fq12{C0: c0f, C1: c1f}
}
