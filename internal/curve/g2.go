package curve

import (
	"github.com/go-bn254/bn254/internal/field"
	"github.com/go-bn254/bn254/internal/tower"
)

// G2 is a point on the sextic twist y^2 = x^3+b' over Fq2, in
// Jacobian coordinates.
type G2 struct {
	X, Y, Z tower.Fq2
}

var g2GenX = tower.Fq2{
	A0: mustFq("10857046999023057135944570762232829481370756359578518086990519993285655852781"),
	A1: mustFq("11559732032986387107991004021392285783925812861821192530917403151452391805634"),
}

var g2GenY = tower.Fq2{
	A0: mustFq("8495653923123431417604973247489272438418190587263600148770280649306958101930"),
	A1: mustFq("4082367875863433681332203403145435568316851327593401208105741076214120093531"),
}

// G2Generator returns the standard BN254 G2 generator.
func G2Generator() G2 {
	return G2{X: g2GenX, Y: g2GenY, Z: tower.Fq2One()}
}

// G2Infinity returns the identity element of G2.
func G2Infinity() G2 {
	return G2{X: tower.Fq2One(), Y: tower.Fq2One()}
}

// IsInfinity reports whether p is the identity.
func (p G2) IsInfinity() bool { return p.Z.IsZero() }

// G2FromAffine builds a Jacobian point from affine coordinates.
func G2FromAffine(x, y tower.Fq2) G2 {
	if x.IsZero() && y.IsZero() {
		return G2Infinity()
	}
	return G2{X: x, Y: y, Z: tower.Fq2One()}
}

// ToAffine converts p to affine coordinates, erroring on infinity.
func (p G2) ToAffine() (x, y tower.Fq2, err error) {
	if p.IsInfinity() {
		return tower.Fq2{}, tower.Fq2{}, ErrInfiniteToAffine
	}
	zInv, _ := p.Z.Inverse()
	zInv2 := zInv.Square()
	zInv3 := zInv2.Mul(zInv)
	return p.X.Mul(zInv2), p.Y.Mul(zInv3), nil
}

// G2IsOnCurve reports whether the affine point (x,y) satisfies
// y^2 = x^3+b' on the twist.
func G2IsOnCurve(x, y tower.Fq2) bool {
	if x.IsZero() && y.IsZero() {
		return true
	}
	lhs := y.Square()
	rhs := x.Square().Mul(x).Add(twistB)
	return lhs.Equal(rhs)
}

// Add returns p+q using standard Jacobian addition over Fq2.
func (p G2) Add(q G2) G2 {
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
		return G2Infinity()
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

	return G2{X: x3, Y: y3, Z: z3}
}

// Double returns p+p.
func (p G2) Double() G2 {
	if p.IsInfinity() {
		return G2Infinity()
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

	return G2{X: x3, Y: y3, Z: z3}
}

// Neg returns -p.
func (p G2) Neg() G2 {
	if p.IsInfinity() {
		return G2Infinity()
	}
	return G2{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// ScalarMul computes k*p via a fixed-iteration left-to-right
// double-and-add ladder over all 256 bits of k's canonical form: the
// loop always runs 256 times regardless of k's value, and the
// conditional add is a branchless select (selectG2) rather than an if
// on a secret bit, per the constant-time requirement for scalar
// multiplication on a secret scalar.
func (p G2) ScalarMul(k field.Fr) G2 {
	return p.mulByU256(k.Canonical())
}

// mulByU256 multiplies p by e, an arbitrary 256-bit integer, via the
// same fixed-iteration, branchless-select ladder as ScalarMul. Also
// used by InSubgroup with the public constant field.FrModulus(),
// where constant time is not required but the shared ladder is the
// simplest correct implementation either way.
func (p G2) mulByU256(e field.U256) G2 {
	return p.mulByU256Trace(e, nil)
}

// mulByU256Trace runs the same ladder as mulByU256, invoking onStep
// once per iteration when non-nil. Production callers always pass a
// nil onStep; tests use it to confirm the ladder always runs a fixed
// 256 iterations regardless of e's value.
func (p G2) mulByU256Trace(e field.U256, onStep func(i int)) G2 {
	r := G2Infinity()
	for i := 255; i >= 0; i-- {
		if onStep != nil {
			onStep(i)
		}
		r = r.Double()
		sum := r.Add(p)
		r = selectG2(e.Bit(i), sum, r)
	}
	return r
}

// selectG2 returns x if bit == 1, else y, componentwise via
// tower.Fq2Select.
func selectG2(bit uint, x, y G2) G2 {
	return G2{
		X: tower.Fq2Select(bit, x.X, y.X),
		Y: tower.Fq2Select(bit, x.Y, y.Y),
		Z: tower.Fq2Select(bit, x.Z, y.Z),
	}
}

// Equal reports whether p and q represent the same affine point.
func (p G2) Equal(q G2) bool {
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

// InSubgroup reports whether p lies in the order-r subgroup of the
// twist curve. Unlike a curve-equation-only check, this multiplies p
// by the raw group order r and tests for the identity, which is
// required because not every point on E' satisfying the curve
// equation has order dividing r.
func (p G2) InSubgroup() bool {
	return p.mulByU256(field.FrModulus()).IsInfinity()
}
