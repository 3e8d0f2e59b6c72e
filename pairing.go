package bn254

import (
	"github.com/go-bn254/bn254/internal/curve"
	"github.com/go-bn254/bn254/internal/pairing"
)

// Pairing computes the optimal ate pairing e(p, q) in Gt. The result
// is the identity iff p or q is the identity.
func Pairing(p G1, q G2) Gt {
	return Gt{inner: pairing.Pair(p.inner, q.inner)}
}

// MultiPairingCheck reports whether the product of e(ps[i], qs[i])
// over all i equals the identity in Gt. It shares a single final
// exponentiation across all pairs, making it substantially cheaper
// than multiplying together individually-computed Pairing results.
func MultiPairingCheck(ps []G1, qs []G2) bool {
	if len(ps) != len(qs) {
		return false
	}
	g1s := make([]curve.G1, len(ps))
	g2s := make([]curve.G2, len(qs))
	for i := range ps {
		g1s[i] = ps[i].inner
		g2s[i] = qs[i].inner
	}
	return pairing.MultiPairingCheck(g1s, g2s)
}
