package matrix

import (
	"testing"

	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/prng"
)

func TestInvertRoundTrip(t *testing.T) {
	SetBlockSize(1)
	s := prng.NewMathRand(123)
	n := 8
	var ok bool
	var a, inv *Matrix
	for !ok {
		a = New(n, n)
		RandDense(a, s)
		work := a.Clone()
		inv = New(n, n)
		var err error
		ok, err = Invert(work, inv)
		if err != nil {
			t.Fatal(err)
		}
	}

	prod := New(n, n)
	if err := Mul(a, inv, prod); err != nil {
		t.Fatal(err)
	}
	if !prod.Equal(Identity(n)) {
		t.Fatalf("A * A^-1 != I")
	}

	prod2 := New(n, n)
	if err := Mul(inv, a, prod2); err != nil {
		t.Fatal(err)
	}
	if !prod2.Equal(Identity(n)) {
		t.Fatalf("A^-1 * A != I")
	}
}

func TestInvertSingularDetection(t *testing.T) {
	// [[1,2,3],[2,4,6],[0,0,1]]: row 2 is 2*row1, so the second pivot is 0.
	a := New(3, 3)
	rows := [][]field.E{{1, 2, 3}, {2, 4, 6}, {0, 0, 1}}
	for i, row := range rows {
		copy(a.Rows[i], row)
	}
	r := New(3, 3)
	ok, err := Invert(a, r)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected singular matrix to fail inversion")
	}
}

func TestInvertNonSquare(t *testing.T) {
	a := New(2, 3)
	r := New(2, 3)
	if _, err := Invert(a, r); err == nil {
		t.Fatalf("expected non-square error")
	}
}

func TestInvertIdentity(t *testing.T) {
	a := Identity(5)
	r := New(5, 5)
	ok, err := Invert(a, r)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("identity should always invert")
	}
	if !r.Equal(Identity(5)) {
		t.Fatalf("I^-1 != I")
	}
}
