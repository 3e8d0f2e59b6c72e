package tower

// Fq6 is an element c0 + c1*v + c2*v^2 of Fq2[v]/(v^3-xi), xi = 9+u.
type Fq6 struct {
	C0, C1, C2 Fq2
}

// Fq6Zero returns the additive identity.
func Fq6Zero() Fq6 { return Fq6{} }

// Fq6One returns the multiplicative identity.
func Fq6One() Fq6 { return Fq6{C0: Fq2One()} }

// Fq6Select returns x if bit == 1, else y, componentwise via
// Fq2Select. Used by constant-time scalar ladders that must not
// branch on a secret bit.
func Fq6Select(bit uint, x, y Fq6) Fq6 {
	return Fq6{
		C0: Fq2Select(bit, x.C0, y.C0),
		C1: Fq2Select(bit, x.C1, y.C1),
		C2: Fq2Select(bit, x.C2, y.C2),
	}
}

// IsZero reports whether x is the additive identity.
func (x Fq6) IsZero() bool { return x.C0.IsZero() && x.C1.IsZero() && x.C2.IsZero() }

// Equal reports componentwise equality.
func (x Fq6) Equal(y Fq6) bool {
	return x.C0.Equal(y.C0) && x.C1.Equal(y.C1) && x.C2.Equal(y.C2)
}

// Add returns x+y.
func (x Fq6) Add(y Fq6) Fq6 {
	return Fq6{C0: x.C0.Add(y.C0), C1: x.C1.Add(y.C1), C2: x.C2.Add(y.C2)}
}

// Sub returns x-y.
func (x Fq6) Sub(y Fq6) Fq6 {
	return Fq6{C0: x.C0.Sub(y.C0), C1: x.C1.Sub(y.C1), C2: x.C2.Sub(y.C2)}
}

// Neg returns -x.
func (x Fq6) Neg() Fq6 {
	return Fq6{C0: x.C0.Neg(), C1: x.C1.Neg(), C2: x.C2.Neg()}
}

// Mul returns x*y using degree-2 Karatsuba over Fq2, reducing v^3 to
// xi (the sextic non-residue).
func (x Fq6) Mul(y Fq6) Fq6 {
	t0 := x.C0.Mul(y.C0)
	t1 := x.C1.Mul(y.C1)
	t2 := x.C2.Mul(y.C2)

	c0 := t0.Add(x.C1.Add(x.C2).Mul(y.C1.Add(y.C2)).Sub(t1).Sub(t2).MulByNonResidue())
	c1 := x.C0.Add(x.C1).Mul(y.C0.Add(y.C1)).Sub(t0).Sub(t1).Add(t2.MulByNonResidue())
	c2 := x.C0.Add(x.C2).Mul(y.C0.Add(y.C2)).Sub(t0).Sub(t2).Add(t1)

	return Fq6{C0: c0, C1: c1, C2: c2}
}

// Square returns x^2.
func (x Fq6) Square() Fq6 {
	s0 := x.C0.Square()
	ab := x.C0.Mul(x.C1)
	s1 := ab.Add(ab)
	s2 := x.C0.Add(x.C2).Sub(x.C1).Square()
	bc := x.C1.Mul(x.C2)
	s3 := bc.Add(bc)
	s4 := x.C2.Square()

	c0 := s0.Add(s3.MulByNonResidue())
	c1 := s1.Add(s4.MulByNonResidue())
	c2 := s1.Add(s2).Add(s3).Sub(s0).Sub(s4)

	return Fq6{C0: c0, C1: c1, C2: c2}
}

// Inverse returns x^-1 via the standard cubic-extension inversion
// formula. ok is false iff x is zero.
func (x Fq6) Inverse() (Fq6, bool) {
	a := x.C0.Square().Sub(x.C1.Mul(x.C2).MulByNonResidue())
	b := x.C2.Square().MulByNonResidue().Sub(x.C0.Mul(x.C1))
	c := x.C1.Square().Sub(x.C0.Mul(x.C2))

	f := x.C0.Mul(a).Add(x.C2.Mul(b).Add(x.C1.Mul(c)).MulByNonResidue())
	fInv, ok := f.Inverse()
	if !ok {
		return Fq6{}, false
	}
	return Fq6{C0: a.Mul(fInv), C1: b.Mul(fInv), C2: c.Mul(fInv)}, true
}

// MulByFq2 scales x by an Fq2 element (applied to every coefficient).
func (x Fq6) MulByFq2(s Fq2) Fq6 {
	return Fq6{C0: x.C0.Mul(s), C1: x.C1.Mul(s), C2: x.C2.Mul(s)}
}

// MulByV multiplies x by v, shifting coefficients:
// (c0+c1*v+c2*v^2)*v = c2*xi + c0*v + c1*v^2.
func (x Fq6) MulByV() Fq6 {
	return Fq6{C0: x.C2.MulByNonResidue(), C1: x.C0, C2: x.C1}
}

// MulBy01 multiplies x by a sparse element (b0 + b1*v), the shape
// produced by the Miller loop's line-function evaluation once lifted
// into Fq6.
func (x Fq6) MulBy01(b0, b1 Fq2) Fq6 {
	t0 := x.C0.Mul(b0)
	t1 := x.C1.Mul(b1)

	c0 := t0.Add(x.C2.Mul(b1).MulByNonResidue())
	c1 := x.C0.Add(x.C1).Mul(b0.Add(b1)).Sub(t0).Sub(t1)
	c2 := x.C0.Add(x.C2).Mul(b0).Sub(t0).Add(t1)

	return Fq6{C0: c0, C1: c1, C2: c2}
}

