package pairing

import (
	"github.com/go-bn254/bn254/internal/field"
	"github.com/go-bn254/bn254/internal/tower"
)

// sixuPlus2NAF is the non-adjacent form of 6u+2 for BN254's u
// parameter, least-significant digit first. Its length (and the
// position of nonzero digits) fixes the Miller loop's instruction
// count independent of any runtime value, keeping the loop
// constant-time with respect to its inputs.
var sixuPlus2NAF = []int8{
	0, 0, 0, 1, 0, 1, 0, -1, 0, 0, 1, -1, 0, 0, 1, 0,
	0, 1, 1, 0, -1, 0, 0, 1, 0, -1, 0, 0, 0, 0, 1, 1,
	1, 0, 0, -1, 0, 0, 1, 0, 0, 0, 0, 0, -1, 0, 0, 1,
	1, 0, 0, -1, 0, 0, 0, 1, 1, 0, -1, 0, 0, 1, 0, 1, 1,
}

// curveU is the BN254 curve seed, used by the final exponentiation's
// hard-part addition chain.
var curveU = field.FrFromUint64(4965661367192848881)

// xiToPMinus1Over3 and xiToPMinus1Over2 are the G2 Frobenius
// endomorphism's twist constants, applied to an affine G2 point's x
// and y coordinates respectively after conjugation.
var (
	xiToPMinus1Over3 = mustFq2(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954")
	xiToPMinus1Over2 = mustFq2(
		"2821565182194536844548159561693502659359617185244120367078079554186484126554",
		"3505843767911556378687030309984248845540243509899259641013678093033130930403")
	xiToPSqMinus1Over3 = mustScalar(
		"21888242871839275220042445260109153167277707414472061641714758635765020556616")
)

func mustFq2(a0, a1 string) tower.Fq2 {
	x, err := field.FqFromDecimal(a0)
	if err != nil {
		panic("pairing: invalid field constant: " + a0)
	}
	y, err := field.FqFromDecimal(a1)
	if err != nil {
		panic("pairing: invalid field constant: " + a1)
	}
	return tower.Fq2{A0: x, A1: y}
}

func mustScalar(s string) field.Fq {
	v, err := field.FqFromDecimal(s)
	if err != nil {
		panic("pairing: invalid field constant: " + s)
	}
	return v
}

// g2Frobenius applies the Frobenius endomorphism to an affine G2
// point over Fq2: (x,y) -> (conj(x)*xiToPMinus1Over3, conj(y)*xiToPMinus1Over2).
func g2Frobenius(x, y tower.Fq2) (tower.Fq2, tower.Fq2) {
	return x.Conjugate().Mul(xiToPMinus1Over3), y.Conjugate().Mul(xiToPMinus1Over2)
}

// millerLoop runs the Miller loop of the optimal ate pairing for
// affine G1 point (gx,gy) and affine G2 point (qx,qy), returning the
// unreduced Fq12 accumulator (before final exponentiation).
func millerLoop(gx, gy field.Fq, qx, qy tower.Fq2) tower.Fq12 {
	ret := tower.Fq12One()

	r := newTwistPoint(qx, qy, tower.Fq2One())
	minusQy := qy.Neg()
	qySq := qy.Square()

	for i := len(sixuPlus2NAF) - 1; i > 0; i-- {
		a, b, c, newR := lineFunctionDouble(r, gx, gy)
		if i != len(sixuPlus2NAF)-1 {
			ret = ret.Square()
		}
		ret = mulLine(ret, a, b, c)
		r = newR

		switch sixuPlus2NAF[i-1] {
		case 1:
			a, b, c, newR = lineFunctionAdd(r, qx, qy, gx, gy, qySq)
			ret = mulLine(ret, a, b, c)
			r = newR
		case -1:
			a, b, c, newR = lineFunctionAdd(r, qx, minusQy, gx, gy, qySq)
			ret = mulLine(ret, a, b, c)
			r = newR
		}
	}

	q1x, q1y := g2Frobenius(qx, qy)
	q1ySq := q1y.Square()
	a, b, c, newR := lineFunctionAdd(r, q1x, q1y, gx, gy, q1ySq)
	ret = mulLine(ret, a, b, c)
	r = newR

	minusQ2x := qx.MulByFq(xiToPSqMinus1Over3)
	minusQ2y := qy
	minusQ2ySq := minusQ2y.Square()
	a, b, c, _ = lineFunctionAdd(r, minusQ2x, minusQ2y, gx, gy, minusQ2ySq)
	ret = mulLine(ret, a, b, c)

	return ret
}
