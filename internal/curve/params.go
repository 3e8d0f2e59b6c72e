// Package curve implements the BN254 elliptic curve group G1 over Fq
// (y^2 = x^3+3) and its sextic twist G2 over Fq2 (y^2 = x^3+b'),
// both in Jacobian coordinates with Z=0 encoding the point at
// infinity.
package curve

import (
	"github.com/go-bn254/bn254/internal/field"
	"github.com/go-bn254/bn254/internal/tower"
)

// ErrNotOnCurve indicates a decoded point fails the curve equation.
var ErrNotOnCurve = fieldErr("curve: point is not on curve")

// ErrNotInSubgroup indicates a G2 point lies on the twist but outside
// the order-r subgroup used for pairings.
var ErrNotInSubgroup = fieldErr("curve: point is not in the r-torsion subgroup")

// ErrInfiniteToAffine indicates ToAffine was called on the point at
// infinity, which has no affine representative.
var ErrInfiniteToAffine = fieldErr("curve: point at infinity has no affine coordinates")

type fieldErr string

func (e fieldErr) Error() string { return string(e) }

// bCoeff is G1's curve coefficient: y^2 = x^3 + 3.
var bCoeff = field.FqFromUint64(3)

// twistB is G2's twist coefficient b' = 3/(9+u), precomputed.
var twistB = tower.Fq2{
	A0: mustFq("19485874751759354771024239261021720505790618469301721065564631296452457478373"),
	A1: mustFq("266929791119991161246907387137283842545076965332900288569378510910307636690"),
}

func mustFq(s string) field.Fq {
	v, err := field.FqFromDecimal(s)
	if err != nil {
		panic("curve: invalid field constant: " + s)
	}
	return v
}
