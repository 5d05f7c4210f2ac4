package sim

import (
	"testing"

	"github.com/avisegradi/rnc-lib/coding"
	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/matrix"
	"github.com/avisegradi/rnc-lib/prng"
)

func codedBlockList(n, m int, count int, s prng.Source) *coding.BlockList {
	id := matrix.Identity(n)
	data := matrix.New(n, m)
	matrix.RandDense(data, s)
	src := coding.New(n, true)
	for i := 0; i < n; i++ {
		src.Append(coding.NewBlock(id.Rows[i], data.Rows[i]))
	}

	out := coding.New(count, true)
	for out.Count() < count {
		row := matrix.New(1, n)
		matrix.RandDense(row, s)
		coeffOut := matrix.New(1, n)
		dataOut := matrix.New(1, m)
		idm := matrix.Identity(n)
		if err := matrix.Mul(row, idm, coeffOut); err != nil {
			panic(err)
		}
		if err := matrix.Mul(row, data, dataOut); err != nil {
			panic(err)
		}
		out.Append(coding.NewBlock(coeffOut.Rows[0], dataOut.Rows[0]))
	}
	return out
}

func TestGatherWorkingSetFromAbundantSource(t *testing.T) {
	s := prng.NewMathRand(7)
	n := 8
	src := codedBlockList(n, 5, 2*n, s)

	ws, _, ok, err := GatherWorkingSet(src, n, s)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected a working set to be gathered from an abundant source")
	}
	c, err := ws.ToMatrix(coding.Coefficients)
	if err != nil {
		t.Fatal(err)
	}
	inv := matrix.New(n, n)
	invertible, err := matrix.Invert(c.Clone(), inv)
	if err != nil {
		t.Fatal(err)
	}
	if !invertible {
		t.Fatalf("gathered working set's coefficient matrix did not invert")
	}
}

func TestGatherWorkingSetInsufficientSource(t *testing.T) {
	s := prng.NewMathRand(1)
	n := 8
	src := codedBlockList(n, 2, n-1, s)
	_, _, ok, err := GatherWorkingSet(src, n, s)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("expected failure when src has fewer than N blocks")
	}
}

func TestRoundTripIdentityCoefficients(t *testing.T) {
	// Scenario: N=4, M=4, D=[[1..4],[5..8],[9..12],[13..16]], C=I4.
	n, m := 4, 4
	d := matrix.New(n, m)
	v := field.E(1)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			d.Set(i, j, v)
			v++
		}
	}
	c := matrix.Identity(n)

	coded := matrix.New(n, m)
	if err := matrix.Mul(c, d, coded); err != nil {
		t.Fatal(err)
	}
	if !coded.Equal(d) {
		t.Fatalf("coded != D for identity coefficients")
	}

	inv := matrix.New(n, n)
	ok, err := matrix.Invert(c.Clone(), inv)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || !inv.Equal(matrix.Identity(n)) {
		t.Fatalf("invert(I) != I")
	}

	decoded := matrix.New(n, m)
	if err := matrix.Mul(inv, coded, decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(d) {
		t.Fatalf("decoded != D")
	}
}

func TestRoundTripRandomInvertibleCoefficients(t *testing.T) {
	n, m := 8, 6
	s := prng.NewMathRand(99)
	d := matrix.New(n, m)
	matrix.RandDense(d, s)

	var c1 *matrix.Matrix
	var inv *matrix.Matrix
	for {
		c1 = matrix.New(n, n)
		matrix.RandDense(c1, s)
		inv = matrix.New(n, n)
		ok, err := matrix.Invert(c1.Clone(), inv)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			break
		}
	}

	coded := matrix.New(n, m)
	if err := matrix.Mul(c1, d, coded); err != nil {
		t.Fatal(err)
	}
	decoded := matrix.New(n, m)
	if err := matrix.Mul(inv, coded, decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded.Equal(d) {
		t.Fatalf("decode(encode(D)) != D")
	}
}

func TestReplenishUnderLoss(t *testing.T) {
	n := 16
	a := 4.0
	threshold := 20
	target := 24
	failProb := 0.1
	s := prng.NewMathRand(1)

	id := matrix.Identity(n)
	data := matrix.New(n, 3)
	matrix.RandDense(data, s)
	src := coding.New(n, true)
	for i := 0; i < n; i++ {
		src.Append(coding.NewBlock(id.Rows[i], data.Rows[i]))
	}

	pool := coding.New(n, true)
	if _, err := Replenish(src, pool, n, threshold, target, a, s); err != nil {
		t.Fatal(err)
	}

	deadAt := -1
	const maxSteps = 50
	for i := 0; i < maxSteps; i++ {
		pool.RandomDropMany(failProb, pool.Count(), s)
		if _, err := Replenish(pool, pool, n, threshold, target, a, s); err != nil {
			deadAt = i
			break
		}
		if pool.Count() > target {
			t.Fatalf("blockcount %d exceeded target %d at step %d", pool.Count(), target, i)
		}
	}
	if deadAt >= 0 && deadAt >= maxSteps {
		t.Fatalf("dead_at out of range: %d", deadAt)
	}
}
