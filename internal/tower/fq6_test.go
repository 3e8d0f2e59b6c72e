package tower

import "testing"

func randFq6(seed uint64) Fq6 {
	return Fq6{C0: randFq2(seed), C1: randFq2(seed + 1), C2: randFq2(seed + 2)}
}

func TestFq6MulInverse(t *testing.T) {
	x := randFq6(200)
	inv, ok := x.Inverse()
	if !ok {
		t.Fatal("Inverse() reported not-ok for nonzero element")
	}
	got := x.Mul(inv)
	if !got.Equal(Fq6One()) {
		t.Fatal("x*x^-1 != 1")
	}
}

func TestFq6SquareMatchesMul(t *testing.T) {
	x := randFq6(210)
	if !x.Square().Equal(x.Mul(x)) {
		t.Fatal("Square() != Mul(x,x)")
	}
}

func TestFq6MulByVShiftsCoefficients(t *testing.T) {
	x := randFq6(220)
	v := Fq6{C1: Fq2One()}
	got := x.MulByV()
	want := x.Mul(v)
	if !got.Equal(want) {
		t.Fatal("MulByV() != Mul(v)")
	}
}

func TestFq6MulBy01MatchesGeneralMul(t *testing.T) {
	x := randFq6(230)
	b0 := randFq2(231)
	b1 := randFq2(232)
	sparse := Fq6{C0: b0, C1: b1}
	got := x.MulBy01(b0, b1)
	want := x.Mul(sparse)
	if !got.Equal(want) {
		t.Fatal("MulBy01() != Mul(sparse)")
	}
}
