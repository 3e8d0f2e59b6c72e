//go:build oracle

// This file cross-checks this package against an independent BN254
// implementation and only builds with -tags oracle, since it pulls in
// a dependency this module otherwise has no reason to require.
package bn254_test

import (
	"math/big"
	"testing"

	bn256 "github.com/ethereum/go-ethereum/crypto/bn256/cloudflare"

	bn254 "github.com/go-bn254/bn254"
)

// TestOracleG1ScalarMultMatchesCloudflare checks that scalar
// multiples of the G1 generator, computed by this package and by
// go-ethereum's independent BN254 implementation, agree byte-for-byte
// on the uncompressed encoding. G1's encoding (x||y, each 32-byte
// big-endian) is unambiguous across implementations, making it a
// direct known-answer cross-check.
func TestOracleG1ScalarMultMatchesCloudflare(t *testing.T) {
	scalars := []uint64{1, 2, 3, 12345, 4965661367192848881}

	for _, k := range scalars {
		ours := bn254.G1One().ScalarMul(bn254.ScalarFromUint64(k))
		oursBytes := ours.Bytes()

		theirs := new(bn256.G1).ScalarBaseMult(new(big.Int).SetUint64(k))
		theirBytes := theirs.Marshal()

		if len(theirBytes) != 64 {
			t.Fatalf("k=%d: cloudflare G1 marshal length = %d, want 64", k, len(theirBytes))
		}
		for i := range theirBytes {
			if oursBytes[i] != theirBytes[i] {
				t.Fatalf("k=%d: byte %d differs: ours=%x theirs=%x", k, i, oursBytes, theirBytes)
			}
		}
	}
}

// TestOracleG1AdditionMatchesCloudflare checks that G1 addition
// agrees with the cloudflare implementation on the resulting affine
// encoding for a handful of scalar pairs.
func TestOracleG1AdditionMatchesCloudflare(t *testing.T) {
	pairs := [][2]uint64{{2, 3}, {7, 11}, {1000, 1}}

	for _, p := range pairs {
		ours := bn254.G1One().ScalarMul(bn254.ScalarFromUint64(p[0])).
			Add(bn254.G1One().ScalarMul(bn254.ScalarFromUint64(p[1])))
		oursBytes := ours.Bytes()

		a := new(bn256.G1).ScalarBaseMult(new(big.Int).SetUint64(p[0]))
		b := new(bn256.G1).ScalarBaseMult(new(big.Int).SetUint64(p[1]))
		sum := new(bn256.G1).Add(a, b)
		theirBytes := sum.Marshal()

		for i := range theirBytes {
			if oursBytes[i] != theirBytes[i] {
				t.Fatalf("pair=%v: byte %d differs: ours=%x theirs=%x", p, i, oursBytes, theirBytes)
			}
		}
	}
}
