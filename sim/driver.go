// Package sim implements the gather/replenish control loop that keeps a
// working set of coded blocks decodable under random loss: gathering N
// linearly independent blocks from a source set, and replenishing a
// redundancy pool by coding fresh sparse random combinations of that
// working set.
package sim

import (
	"fmt"

	"github.com/avisegradi/rnc-lib/coding"
	"github.com/avisegradi/rnc-lib/matrix"
	"github.com/avisegradi/rnc-lib/prng"
)

// GatherWorkingSet attempts to build an n-block working set from src whose
// n x n coefficient matrix is invertible. It returns the working set (as a
// non-owning view over blocks still owned by src), the number of blocks
// replaced along the way ("wasted" capacity), and whether it succeeded.
//
// src is never mutated directly: gathering drops from a shallow copy of
// src, so the caller's src retains every block it started with.
func GatherWorkingSet(src *coding.BlockList, n int, s prng.Source) (ws *coding.BlockList, wasted int, ok bool, err error) {
	if src.Count() < n {
		return nil, 0, false, nil
	}

	sourceSet := src.ShallowCopy()
	ws = coding.New(n, false)
	for i := 0; i < n; i++ {
		blk, derr := sourceSet.RandomDrop(s)
		if derr != nil {
			return nil, 0, false, derr
		}
		ws.Append(blk)
	}

	for {
		c, terr := ws.ToMatrix(coding.Coefficients)
		if terr != nil {
			return nil, wasted, false, terr
		}
		// Invert consumes its first argument; c is a view over the
		// working set's own coefficient rows, so it must be cloned
		// before being handed to Invert.
		inv := matrix.New(n, n)
		invertible, ierr := matrix.Invert(c.Clone(), inv)
		if ierr != nil {
			return nil, wasted, false, ierr
		}
		if invertible {
			return ws, wasted, true, nil
		}

		if sourceSet.Count() == 0 {
			return nil, wasted, false, nil
		}
		if _, derr := ws.RandomDrop(s); derr != nil {
			return nil, wasted, false, derr
		}
		blk, derr := sourceSet.RandomDrop(s)
		if derr != nil {
			return nil, wasted, false, derr
		}
		ws.Append(blk)
		wasted++
	}
}

// Replenish tops up dst to target coded blocks, using src as the source of
// a basis working set. It is a no-op when src already holds more than
// threshold blocks. Each new block is a sparse random linear combination
// of an n-block working set gathered from src (with expected weight a out
// of n), so replenish never references a working set that wasn't
// explicitly constructed first.
func Replenish(src, dst *coding.BlockList, n, threshold, target int, a float64, s prng.Source) (wasted int, err error) {
	if src.Count() > threshold {
		return 0, nil
	}

	ws, wasted, ok, err := GatherWorkingSet(src, n, s)
	if err != nil {
		return wasted, err
	}
	if !ok {
		return wasted, fmt.Errorf("sim: replenish: could not gather a working set of size %d from %d blocks", n, src.Count())
	}

	coeff, data, err := ws.ToMatrices()
	if err != nil {
		return wasted, err
	}
	m := data.NCols
	p := 1 - a/float64(n)

	need := target - dst.Count()
	for i := 0; i < need; i++ {
		row := matrix.New(1, n)
		matrix.RandSparse(row, p, s, true)

		outCoeff := matrix.New(1, n)
		if err := matrix.Mul(row, coeff, outCoeff); err != nil {
			return wasted, err
		}
		outData := matrix.New(1, m)
		if err := matrix.Mul(row, data, outData); err != nil {
			return wasted, err
		}

		dst.Append(coding.NewBlock(outCoeff.Rows[0], outData.Rows[0]))
	}
	return wasted, nil
}
