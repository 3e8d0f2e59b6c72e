// Package bn254 implements arithmetic over the Barreto-Naehrig
// pairing-friendly elliptic curve BN254 (also known as alt_bn128):
// the scalar field Scalar, the groups G1 and G2 of prime order r, the
// pairing target group Gt, and the bilinear map Pairing: G1 x G2 ->
// Gt.
//
// The heavy lifting — constant-time 256-bit modular arithmetic, the
// Fq2/Fq6/Fq12 extension tower, Jacobian group law, and the optimal
// ate pairing's Miller loop and final exponentiation — lives under
// internal/ and is not part of the public API. This package is a thin
// façade: value types with named methods (Add, Mul, ScalarMul, ...)
// over that engine, plus the canonical byte encodings every type uses
// for serialization.
//
// All constructors taking randomness accept a caller-supplied
// io.Reader; there is no global RNG. All arithmetic is synchronous and
// side-effect free — a value produced by one goroutine may be read
// freely by others as long as it is not concurrently written, which
// value-semantic usage never requires.
package bn254
