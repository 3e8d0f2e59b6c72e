package pairing

import (
	"github.com/go-bn254/bn254/internal/curve"
	"github.com/go-bn254/bn254/internal/tower"
)

// Pair computes the optimal ate pairing e(p,q). Either input being
// the identity yields the GT identity, matching the bilinear map's
// degenerate case.
func Pair(p curve.G1, q curve.G2) tower.Fq12 {
	if p.IsInfinity() || q.IsInfinity() {
		return tower.Fq12One()
	}
	px, py, _ := p.ToAffine()
	qx, qy, _ := q.ToAffine()
	return finalExponentiation(millerLoop(px, py, qx, qy))
}

// MultiPairingCheck reports whether prod(e(ps[i],qs[i])) == 1 in GT,
// the core primitive behind pairing-based batch verification. It
// accumulates all Miller loops before a single shared final
// exponentiation, since the easy/hard split only needs to run once
// for a product of Miller loop outputs.
func MultiPairingCheck(ps []curve.G1, qs []curve.G2) bool {
	if len(ps) != len(qs) {
		return false
	}
	f := tower.Fq12One()
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		px, py, _ := ps[i].ToAffine()
		qx, qy, _ := qs[i].ToAffine()
		f = f.Mul(millerLoop(px, py, qx, qy))
	}
	return finalExponentiation(f).IsOne()
}
