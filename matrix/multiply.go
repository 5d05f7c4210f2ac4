package matrix

import (
	"fmt"

	"github.com/avisegradi/rnc-lib/field"
)

// Mul computes md = m1*m2 over GF(q): m1 is r x k, m2 is k x c, md is r x c.
// The tuning snapshot's BlockSize selects the kernel: BlockSize==1 uses the
// straightforward triple loop, anything larger uses the cache-blocked
// variant. Both produce bit-identical results; blocking only changes
// memory access order.
func Mul(m1, m2, md *Matrix) error {
	if err := checkMulShapes(m1, m2, md); err != nil {
		return err
	}
	t := CurrentTuning()
	if t.BlockSize <= 1 {
		mulNonBlocked(m1, m2, md)
	} else {
		mulBlocked(m1, m2, md, t.BlockSize)
	}
	return nil
}

func checkMulShapes(m1, m2, md *Matrix) error {
	if m1.NCols != m2.NRows {
		return fmt.Errorf("matrix: mul shape mismatch: m1 is %dx%d, m2 is %dx%d",
			m1.NRows, m1.NCols, m2.NRows, m2.NCols)
	}
	if md.NRows != m1.NRows || md.NCols != m2.NCols {
		return fmt.Errorf("matrix: mul output shape mismatch: want %dx%d, got %dx%d",
			m1.NRows, m2.NCols, md.NRows, md.NCols)
	}
	return nil
}

func mulNonBlocked(m1, m2, md *Matrix) {
	for i := 0; i < m1.NRows; i++ {
		mulRowNonBlocked(m1, m2, md, i)
	}
}

// mulRowNonBlocked computes one row of md; it is the unit of work PMul
// fans out to the worker pool in the non-blocked case.
func mulRowNonBlocked(m1, m2, md *Matrix, i int) {
	row1 := m1.Rows[i]
	dst := md.Rows[i]
	for j := 0; j < m2.NCols; j++ {
		var s field.E
		for k := 0; k < m1.NCols; k++ {
			field.AddToMul(&s, row1[k], m2.Rows[k][j])
		}
		dst[j] = s
	}
}

func mulBlocked(m1, m2, md *Matrix, b int) {
	for i := 0; i < md.NRows; i++ {
		row := md.Rows[i]
		for j := range row {
			row[j] = 0
		}
	}
	for i := 0; i < m1.NRows; i += b {
		mulRowBandBlocked(m1, m2, md, i, b)
	}
}

// mulRowBandBlocked accumulates the contribution of the row band
// [i, min(i+b, rows1)) into md; it is the unit of work PMul fans out to
// the worker pool in the blocked case. md must already be zero-filled.
func mulRowBandBlocked(m1, m2, md *Matrix, i, b int) {
	rows1 := m1.NRows
	cols1 := m1.NCols
	cols2 := m2.NCols
	li := i + b
	if li > rows1 {
		li = rows1
	}
	for j0 := 0; j0 < cols2; j0 += b {
		lj := j0 + b
		if lj > cols2 {
			lj = cols2
		}
		for k0 := 0; k0 < cols1; k0 += b {
			lk := k0 + b
			if lk > cols1 {
				lk = cols1
			}
			for i1 := i; i1 < li; i1++ {
				row1 := m1.Rows[i1]
				dst := md.Rows[i1]
				for k1 := k0; k1 < lk; k1++ {
					e1 := row1[k1]
					row2 := m2.Rows[k1]
					for j1 := j0; j1 < lj; j1++ {
						field.AddToMul(&dst[j1], e1, row2[j1])
					}
				}
			}
		}
	}
}
