package matrix

import (
	"testing"

	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/prng"
)

func randSquare(n int, seed uint32) *Matrix {
	m := New(n, n)
	RandDense(m, prng.NewMathRand(seed))
	return m
}

func TestMulIdentity(t *testing.T) {
	SetBlockSize(1)
	a := randSquare(5, 1)
	id := Identity(5)
	out := New(5, 5)

	if err := Mul(id, a, out); err != nil {
		t.Fatal(err)
	}
	if !out.Equal(a) {
		t.Fatalf("I*A != A")
	}

	if err := Mul(a, id, out); err != nil {
		t.Fatal(err)
	}
	if !out.Equal(a) {
		t.Fatalf("A*I != A")
	}
}

func TestMulAssociative(t *testing.T) {
	SetBlockSize(1)
	n := 6
	a := randSquare(n, 2)
	b := randSquare(n, 3)
	v := New(1, n)
	RandDense(v, prng.NewMathRand(4))

	ab := New(n, n)
	if err := Mul(a, b, ab); err != nil {
		t.Fatal(err)
	}
	lhs := New(1, n)
	if err := Mul(v, ab, lhs); err != nil {
		t.Fatal(err)
	}

	va := New(1, n)
	if err := Mul(v, a, va); err != nil {
		t.Fatal(err)
	}
	rhs := New(1, n)
	if err := Mul(va, b, rhs); err != nil {
		t.Fatal(err)
	}

	if !lhs.Equal(rhs) {
		t.Fatalf("associativity failed: (v*A)... mismatch")
	}
}

func TestMulBlockedMatchesNonBlocked(t *testing.T) {
	a := randSquare(17, 11)
	b := randSquare(17, 12)

	SetBlockSize(1)
	out1 := New(17, 17)
	if err := Mul(a, b, out1); err != nil {
		t.Fatal(err)
	}

	for _, bs := range []int{2, 3, 4, 17, 32} {
		SetBlockSize(bs)
		out2 := New(17, 17)
		if err := Mul(a, b, out2); err != nil {
			t.Fatal(err)
		}
		if !out1.Equal(out2) {
			t.Fatalf("blocked (block=%d) result differs from non-blocked", bs)
		}
	}
	SetBlockSize(1)
}

func TestMulShapeMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(4, 5)
	out := New(2, 5)
	if err := Mul(a, b, out); err == nil {
		t.Fatalf("expected shape mismatch error")
	}
}

func TestPMulMatchesMulAcrossTunings(t *testing.T) {
	a := randSquare(20, 21)
	b := randSquare(20, 22)

	SetNCPUS(1)
	SetBlockSize(1)
	want := New(20, 20)
	if err := Mul(a, b, want); err != nil {
		t.Fatal(err)
	}

	for _, ncpus := range []int{1, 2, 4, 8} {
		for _, bs := range []int{1, 3, 7, 20} {
			SetNCPUS(ncpus)
			SetBlockSize(bs)
			got := New(20, 20)
			if err := PMul(a, b, got); err != nil {
				t.Fatal(err)
			}
			if !want.Equal(got) {
				t.Fatalf("pmul(ncpus=%d,block=%d) differs from serial mul", ncpus, bs)
			}
		}
	}
	SetNCPUS(2)
	SetBlockSize(1)
}

func TestNonSquareMul(t *testing.T) {
	SetBlockSize(1)
	a := New(2, 3)
	b := New(3, 4)
	RandDense(a, prng.NewMathRand(5))
	RandDense(b, prng.NewMathRand(6))
	out := New(2, 4)
	if err := Mul(a, b, out); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 4; j++ {
			var want field.E
			for k := 0; k < 3; k++ {
				field.AddToMul(&want, a.At(i, k), b.At(k, j))
			}
			if out.At(i, j) != want {
				t.Fatalf("out[%d,%d] = %d, want %d", i, j, out.At(i, j), want)
			}
		}
	}
}
