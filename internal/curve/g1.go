package curve

import "github.com/go-bn254/bn254/internal/field"

// G1 is a point on the base curve y^2 = x^3+3 over Fq, in Jacobian
// coordinates (X,Y,Z) representing the affine point (X/Z^2, Y/Z^3).
// The point at infinity is represented with Z=0.
type G1 struct {
	X, Y, Z field.Fq
}

// G1Generator returns the standard BN254 G1 generator (1, 2).
func G1Generator() G1 {
	return G1{X: field.FqOne(), Y: field.FqFromUint64(2), Z: field.FqOne()}
}

// G1Infinity returns the identity element of G1.
func G1Infinity() G1 {
	return G1{X: field.FqOne(), Y: field.FqOne()}
}

// IsInfinity reports whether p is the identity.
func (p G1) IsInfinity() bool { return p.Z.IsZero() }

// G1FromAffine builds a Jacobian point from affine coordinates. (0,0)
// is treated as the point at infinity, matching the encoding used for
// the zero value of the public façade's G1 byte representation.
func G1FromAffine(x, y field.Fq) G1 {
	if x.IsZero() && y.IsZero() {
		return G1Infinity()
	}
	return G1{X: x, Y: y, Z: field.FqOne()}
}

// ToAffine converts p to affine coordinates. Returns ErrInfiniteToAffine
// for the point at infinity, which has none.
func (p G1) ToAffine() (x, y field.Fq, err error) {
	if p.IsInfinity() {
		return field.Fq{}, field.Fq{}, ErrInfiniteToAffine
	}
	zInv, _ := p.Z.Inverse()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.X.Mul(zInv2), p.Y.Mul(zInv3), nil
}

// IsOnCurve reports whether the affine point (x,y) satisfies
// y^2 = x^3+3. The identity (0,0) is considered valid.
func IsOnCurve(x, y field.Fq) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(bCoeff)
	return lhs.Equal(rhs)
}

// Add returns p+q using standard general Jacobian addition.
func (p G1) Add(q G1) G1 {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	z1sq := p.Z.Square()
	z2sq := q.Z.Square()
	u1 := p.X.Mul(z2sq)
	u2 := q.X.Mul(z1sq)
	s1 := p.Y.Mul(q.Z).Mul(z2sq)
	s2 := q.Y.Mul(p.Z).Mul(z1sq)

	if u1.Equal(u2) {
		if s1.Equal(s2) {
			return p.Double()
		}
		return G1Infinity()
	}

	h := u2.Sub(u1)
	i := h.Add(h).Square()
	j := h.Mul(i)
	r := s2.Sub(s1)
	r = r.Add(r)
	v := u1.Mul(i)

	x3 := r.Square().Sub(j).Sub(v.Add(v))
	y3 := r.Mul(v.Sub(x3)).Sub(s1.Mul(j).Add(s1.Mul(j)))
	z3 := p.Z.Add(q.Z).Square().Sub(z1sq).Sub(z2sq).Mul(h)

	return G1{X: x3, Y: y3, Z: z3}
}

// Double returns p+p.
func (p G1) Double() G1 {
	if p.IsInfinity() {
		return G1Infinity()
	}

	a := p.X.Square()
	b := p.Y.Square()
	c := b.Square()

	d := p.X.Add(b).Square().Sub(a).Sub(c)
	d = d.Add(d)

	e := a.Add(a).Add(a)

	x3 := e.Square().Sub(d.Add(d))

	eightC := c.Add(c).Add(c).Add(c).Add(c).Add(c).Add(c).Add(c)
	y3 := e.Mul(d.Sub(x3)).Sub(eightC)

	z3 := p.Y.Add(p.Y).Mul(p.Z)

	return G1{X: x3, Y: y3, Z: z3}
}

// Neg returns -p.
func (p G1) Neg() G1 {
	if p.IsInfinity() {
		return G1Infinity()
	}
	return G1{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// ScalarMul computes k*p via a fixed-iteration left-to-right
// double-and-add ladder over all 256 bits of k's canonical form: the
// loop always runs 256 times regardless of k's value, and the
// conditional add is a branchless select (selectG1) rather than an if
// on a secret bit, per the constant-time requirement for scalar
// multiplication on a secret scalar.
func (p G1) ScalarMul(k field.Fr) G1 {
	return p.scalarMulTrace(k, nil)
}

// scalarMulTrace runs the same ladder as ScalarMul, invoking onStep
// once per iteration when non-nil. Production callers always pass a
// nil onStep, making the extra check a fixed, value-independent branch
// that costs nothing observable; tests use it to confirm the ladder
// always runs a fixed 256 iterations regardless of k's value.
func (p G1) scalarMulTrace(k field.Fr, onStep func(i int)) G1 {
	e := k.Canonical()
	r := G1Infinity()
	for i := 255; i >= 0; i-- {
		if onStep != nil {
			onStep(i)
		}
		r = r.Double()
		sum := r.Add(p)
		r = selectG1(e.Bit(i), sum, r)
	}
	return r
}

// selectG1 returns x if bit == 1, else y, componentwise via
// field.FqSelect.
func selectG1(bit uint, x, y G1) G1 {
	return G1{
		X: field.FqSelect(bit, x.X, y.X),
		Y: field.FqSelect(bit, x.Y, y.Y),
		Z: field.FqSelect(bit, x.Z, y.Z),
	}
}

// Equal reports whether p and q represent the same affine point,
// tolerating different Jacobian representatives.
func (p G1) Equal(q G1) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	z1sq := p.Z.Square()
	z2sq := q.Z.Square()
	if !p.X.Mul(z2sq).Equal(q.X.Mul(z1sq)) {
		return false
	}
	return p.Y.Mul(q.Z).Mul(z2sq).Equal(q.Y.Mul(p.Z).Mul(z1sq))
}
