// Package pairing implements the BN254 optimal ate pairing: a Miller
// loop over a non-adjacent-form encoding of 6u+2, sparse line-function
// accumulation into Fq12, and the easy/hard final exponentiation that
// projects the Miller loop's output into the order-r cyclotomic
// subgroup GT.
package pairing

import (
	"github.com/go-bn254/bn254/internal/field"
	"github.com/go-bn254/bn254/internal/tower"
)

// twistPoint tracks a G2 point in Jacobian coordinates during the
// Miller loop, caching T=Z^2 since every line-function step needs it.
type twistPoint struct {
	X, Y, Z, T tower.Fq2
}

func newTwistPoint(x, y, z tower.Fq2) twistPoint {
	return twistPoint{X: x, Y: y, Z: z, T: z.Square()}
}

// lineFunctionDouble computes the tangent line at r, advances r to
// 2r, and returns the sparse line coefficients a,b,c such that the
// line element in Fq12 is c + (b + a*v)*w, evaluated at the G1
// point (gx,gy).
func lineFunctionDouble(r twistPoint, gx, gy field.Fq) (a, b, c tower.Fq2, rOut twistPoint) {
	A := r.X.Square()
	B := r.Y.Square()
	C := B.Square()

	D := r.X.Add(B).Square().Sub(A).Sub(C)
	D = D.Add(D)

	E := A.Add(A).Add(A)
	G := E.Square()

	rOut.X = G.Sub(D).Sub(D)

	rOut.Z = r.Y.Add(r.Z).Square().Sub(B).Sub(r.T)

	rOut.Y = D.Sub(rOut.X).Mul(E)
	eightC := C.Add(C).Add(C).Add(C).Add(C).Add(C).Add(C).Add(C)
	rOut.Y = rOut.Y.Sub(eightC)

	rOut.T = rOut.Z.Square()

	t := E.Mul(r.T)
	t = t.Add(t)
	b = t.Neg().MulByFq(gx)

	a = r.X.Add(E).Square().Sub(A).Sub(G)
	fourB := B.Add(B).Add(B).Add(B)
	a = a.Sub(fourB)

	c = rOut.Z.Mul(r.T)
	c = c.Add(c).MulByFq(gy)

	return a, b, c, rOut
}

// lineFunctionAdd computes the line through r and the affine twist
// point (px,py), advances r to r+(px,py), and returns the sparse line
// coefficients evaluated at the G1 point (gx,gy). pSq must be py^2.
func lineFunctionAdd(r twistPoint, px, py tower.Fq2, gx, gy field.Fq, pSq tower.Fq2) (a, b, c tower.Fq2, rOut twistPoint) {
	B := px.Mul(r.T)

	D := py.Add(r.Z).Square().Sub(pSq).Sub(r.T).Mul(r.T)

	H := B.Sub(r.X)
	I := H.Square()

	E := I.Add(I).Add(I).Add(I)
	J := H.Mul(E)

	L1 := D.Sub(r.Y).Sub(r.Y)

	V := r.X.Mul(E)

	rOut.X = L1.Square().Sub(J).Sub(V.Add(V))

	rOut.Z = r.Z.Add(H).Square().Sub(r.T).Sub(I)

	t := V.Sub(rOut.X).Mul(L1)
	t2 := r.Y.Mul(J)
	t2 = t2.Add(t2)
	rOut.Y = t.Sub(t2)

	rOut.T = rOut.Z.Square()

	t = py.Add(rOut.Z).Square().Sub(pSq).Sub(rOut.T)

	t2 = L1.Mul(px)
	t2 = t2.Add(t2)
	a = t2.Sub(t)

	c = rOut.Z.MulByFq(gy)
	c = c.Add(c)

	b = L1.Neg().MulByFq(gx)
	b = b.Add(b)

	return a, b, c, rOut
}

// mulLine multiplies ret by the sparse line element c + (b+a*v)*w,
// exploiting the line's shape instead of a general Fq12 multiply.
func mulLine(ret tower.Fq12, a, b, c tower.Fq2) tower.Fq12 {
	lineC1 := tower.Fq6{C0: b, C1: a}

	a2 := lineC1.Mul(ret.C1)
	t3 := ret.C0.MulByFq2(c)

	lineSum := tower.Fq6{C0: c.Add(b), C1: a}

	retSum := ret.C1.Add(ret.C0)
	newC1 := retSum.Mul(lineSum).Sub(a2).Sub(t3)
	newC0 := a2.MulByV().Add(t3)

	return tower.Fq12{C0: newC0, C1: newC1}
}
