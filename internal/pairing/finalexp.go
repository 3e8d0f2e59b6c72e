package pairing

import "github.com/go-bn254/bn254/internal/tower"

// finalExponentiation raises f to (q^12-1)/r, projecting the Miller
// loop's raw output into GT, the order-r cyclotomic subgroup of Fq12*.
// Split into an "easy part" (f^((q^6-1)(q^2+1)), computed with one
// inversion and two Frobenius applications) and a "hard part" (the
// remaining (q^4-q^2+1)/r power, computed via curveU's addition
// chain).
func finalExponentiation(f tower.Fq12) tower.Fq12 {
	fInv, _ := f.Inverse()
	f1 := f.Conjugate().Mul(fInv) // f^(q^6-1): f^(q^6) is the conjugate
	// (negated c1 Fq6 coefficient) since Fq12/Fq6 is a quadratic
	// extension.
	f2 := f1.FrobeniusSquare().Mul(f1) // f1^(q^2+1)
	return finalExponentiationHard(f2)
}

// finalExponentiationHard computes the hard part of the final
// exponentiation via the addition chain described in "Faster
// Hashing to G2" (Fuentes-Castañeda, Knapp, Rodríguez-Henríquez),
// adapted to curveU.
func finalExponentiationHard(f tower.Fq12) tower.Fq12 {
	fu := f.Exp(curveU)
	fu2 := fu.Exp(curveU)
	fu3 := fu2.Exp(curveU)

	fp1 := f.Frobenius()
	fp2 := f.FrobeniusSquare()
	fp3 := f.FrobeniusCube()

	fup := fu.Frobenius()
	fu2p := fu2.Frobenius()
	fu3p := fu3.Frobenius()
	fu2p2 := fu2.FrobeniusSquare()

	y0 := fp1.Mul(fp2).Mul(fp3)
	y1 := f.Conjugate()
	y2 := fu2p2
	y3 := fup.Conjugate()
	y4 := fu.Conjugate().Mul(fu2p.Conjugate())
	y5 := fu2.Conjugate()
	y6 := fu3.Mul(fu3p).Conjugate()

	t0 := y6.Square().Mul(y4).Mul(y5)
	t1 := y3.Mul(y5).Mul(t0)
	t0 = t0.Mul(y2)
	t1 = t1.Square().Mul(t0)
	t1 = t1.Square()
	t0 = t1.Mul(y1)
	t1 = t1.Mul(y0)
	t0 = t0.Square().Mul(t1)

	return t0
}
