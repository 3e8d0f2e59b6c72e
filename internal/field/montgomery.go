package field

import (
	"math/big"
	"math/bits"
)

// modParams bundles everything Montgomery arithmetic needs for one
// modulus: the modulus itself, its word-size Montgomery inverse, and
// the two precomputed constants R mod p and R^2 mod p used to move
// values in and out of Montgomery form.
//
// The constants are derived once, at init time, from the modulus's
// decimal literal via math/big — a one-time setup step over public,
// fixed curve parameters, not part of the constant-time hot path that
// Add/Mul/Square/Inverse below must honor for secret scalars.
type modParams struct {
	modulus U256
	// n0inv is -modulus^{-1} mod 2^64, the CIOS reduction constant.
	n0inv uint64
	// r is R mod p, the Montgomery representation of 1.
	r U256
	// r2 is R^2 mod p, used to convert a value into Montgomery form.
	r2 U256
}

// newModParams builds a modParams for the prime given as a decimal
// string literal.
func newModParams(decimal string) modParams {
	p, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		panic("field: invalid modulus literal: " + decimal)
	}
	pBytes := make([]byte, 32)
	p.FillBytes(pBytes)
	pLimbs, err := FromBytesBE(pBytes)
	if err != nil {
		panic(err)
	}

	r256 := new(big.Int).Lsh(big.NewInt(1), 256)
	rMod := new(big.Int).Mod(r256, p)
	r2Mod := new(big.Int).Mod(new(big.Int).Mul(rMod, rMod), p)

	rBytes := make([]byte, 32)
	rMod.FillBytes(rBytes)
	rU256, _ := FromBytesBE(rBytes)

	r2Bytes := make([]byte, 32)
	r2Mod.FillBytes(r2Bytes)
	r2U256, _ := FromBytesBE(r2Bytes)

	return modParams{
		modulus: pLimbs,
		n0inv:   negModInverse64(pLimbs.limbs[0]),
		r:       rU256,
		r2:      r2U256,
	}
}

// negModInverse64 computes -m^{-1} mod 2^64 for odd m via Newton's
// iteration (Hensel lifting), the standard way Montgomery reduction
// constants are derived without a general-purpose extended-GCD routine.
func negModInverse64(m uint64) uint64 {
	// x_0 = m is correct modulo 2^3 for odd m; each iteration doubles
	// the number of correct bits, so 6 iterations comfortably covers
	// 64 bits (3 * 2^6 > 64).
	x := m
	for i := 0; i < 6; i++ {
		x = x * (2 - m*x)
	}
	return -x
}

// montAdd returns x+y mod p, both operands and the result in
// Montgomery form (addition is representation-agnostic).
func montAdd(x, y U256, mp *modParams) U256 {
	sum, carry := add4(x.limbs, y.limbs)
	if carry != 0 || geq4(sum, mp.modulus.limbs) {
		sum, _ = sub4(sum, mp.modulus.limbs)
	}
	return U256{limbs: sum}
}

// montSub returns x-y mod p.
func montSub(x, y U256, mp *modParams) U256 {
	diff, borrow := sub4(x.limbs, y.limbs)
	if borrow != 0 {
		diff, _ = add4(diff, mp.modulus.limbs)
	}
	return U256{limbs: diff}
}

// montNeg returns -x mod p.
func montNeg(x U256, mp *modParams) U256 {
	if x.IsZero() {
		return x
	}
	diff, _ := sub4(mp.modulus.limbs, x.limbs)
	return U256{limbs: diff}
}

// montMul computes the Montgomery product of x and y (both already in
// Montgomery form) using CIOS (Coarsely Integrated Operand Scanning),
// ending with a conditional final subtraction so the result is always
// the canonical representative < p.
func montMul(x, y U256, mp *modParams) U256 {
	a := x.limbs
	b := y.limbs
	m := mp.modulus.limbs
	inv := mp.n0inv

	var t [4]uint64
	var tHi uint64
	for i := 0; i < 4; i++ {
		carry := mulAddInto(&t, a[i], b, 0)
		tHi, _ = bits.Add64(tHi, carry, 0)

		m0 := t[0] * inv
		carry2 := mulAddInto(&t, m0, m, 0)
		var c2 uint64
		tHi, c2 = bits.Add64(tHi, carry2, 0)

		// Shift the accumulator right by one limb; the vacated top
		// limb becomes tHi, and any further overflow (c2) becomes the
		// new tHi after the shift.
		t[0], t[1], t[2], t[3] = t[1], t[2], t[3], tHi
		tHi = c2
	}

	res := t
	if tHi != 0 || geq4(res, m) {
		res, _ = sub4(res, m)
	}
	return U256{limbs: res}
}

// montSquare is montMul(x, x, mp); kept as a distinct entry point so
// callers (and future optimization) can treat squaring specially, as
// the spec expects, even though this implementation shares the
// multiply routine.
func montSquare(x U256, mp *modParams) U256 {
	return montMul(x, x, mp)
}

// toMontgomery converts a canonical (non-Montgomery) value into
// Montgomery form: x -> x*R mod p.
func toMontgomery(x U256, mp *modParams) U256 {
	return montMul(x, mp.r2, mp)
}

// fromMontgomery converts a Montgomery-form value back to canonical
// form: x -> x*R^{-1} mod p, implemented as a Montgomery multiply by 1.
func fromMontgomery(x U256, mp *modParams) U256 {
	one := U256{limbs: [4]uint64{1, 0, 0, 0}}
	return montMul(x, one, mp)
}

// montInverse computes the Montgomery-form inverse of x (also in
// Montgomery form) via Fermat's little theorem: x^{-1} = x^{p-2}. It
// returns ok=false iff x is zero.
func montInverse(x U256, mp *modParams) (U256, bool) {
	if x.IsZero() {
		return U256{}, false
	}
	pMinus2, _ := sub4(mp.modulus.limbs, [4]uint64{2, 0, 0, 0})
	return montPow(x, U256{limbs: pMinus2}, mp), true
}

// montPow computes base^exp mod p via fixed-iteration left-to-right
// square-and-multiply over all 256 bits of exp's canonical form, per
// the spec's constant-time requirement that scalar exponentiation not
// vary its iteration count with the exponent's value.
func montPow(base U256, exp U256, mp *modParams) U256 {
	result := mp.r // Montgomery form of 1.
	for i := 255; i >= 0; i-- {
		result = montSquare(result, mp)
		bit := exp.Bit(i)
		cand := montMul(result, base, mp)
		result = selectU256(bit, cand, result)
	}
	return result
}

// selectU256 returns x if bit == 1, else y, without branching on bit
// in a way that depends on its runtime value beyond this single mask
// operation (a constant-time conditional select).
func selectU256(bit uint, x, y U256) U256 {
	mask := uint64(0) - uint64(bit&1)
	var out U256
	for i := range out.limbs {
		out.limbs[i] = (x.limbs[i] & mask) | (y.limbs[i] &^ mask)
	}
	return out
}

// mulAddInto computes t += a*b (a scalar limb times a 4-limb value b)
// plus an incoming carry, writing the low 4 limbs back into t in
// place and returning the resulting carry limb.
func mulAddInto(t *[4]uint64, a uint64, b [4]uint64, carryIn uint64) uint64 {
	carry := carryIn
	for j := 0; j < 4; j++ {
		hi, lo := bits.Mul64(a, b[j])
		var c1, c2 uint64
		t[j], c1 = bits.Add64(t[j], lo, 0)
		hi, _ = bits.Add64(hi, 0, c1)
		t[j], c2 = bits.Add64(t[j], carry, 0)
		hi, _ = bits.Add64(hi, 0, c2)
		carry = hi
	}
	return carry
}
