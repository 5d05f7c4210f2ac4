// Package matrix implements dense linear algebra over field.E: the
// row-pointer matrix, identity/copy, serial/blocked/parallel multiply, and
// Gauss-Jordan inversion the simulation driver in package sim is built on.
package matrix

import (
	"fmt"

	"github.com/avisegradi/rnc-lib/field"
)

// Matrix is a dense nrows x ncols matrix over field.E, stored as a slice
// of row slices. Two rows may share no backing array (owning mode,
// produced by New) or may alias memory borrowed from elsewhere (view
// mode, produced by NewView and by package coding's BlockList.ToMatrix) —
// both shapes support every operation in this package identically, since
// Go slices already carry the pointer/len pair the original's row-pointer
// layout was built for.
type Matrix struct {
	Rows         [][]field.E
	NRows, NCols int
}

// New allocates an owning, zero-filled nrows x ncols matrix.
func New(nrows, ncols int) *Matrix {
	rows := make([][]field.E, nrows)
	for i := range rows {
		rows[i] = make([]field.E, ncols)
	}
	return &Matrix{Rows: rows, NRows: nrows, NCols: ncols}
}

// NewView wraps existing row slices without copying. The caller retains
// ownership of the backing arrays; Matrix never frees or resizes them.
func NewView(rows [][]field.E) *Matrix {
	ncols := 0
	if len(rows) > 0 {
		ncols = len(rows[0])
	}
	return &Matrix{Rows: rows, NRows: len(rows), NCols: ncols}
}

// At returns M[r,c].
func (m *Matrix) At(r, c int) field.E {
	return m.Rows[r][c]
}

// Set writes M[r,c] = v.
func (m *Matrix) Set(r, c int, v field.E) {
	m.Rows[r][c] = v
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.NRows == other.NRows && m.NCols == other.NCols
}

// SetIdentity writes 1 on the leading diagonal and 0 elsewhere.
func SetIdentity(m *Matrix) {
	for i := 0; i < m.NRows; i++ {
		row := m.Rows[i]
		for j := range row {
			row[j] = 0
		}
		if i < m.NCols {
			row[i] = 1
		}
	}
}

// Identity allocates a new n x n identity matrix.
func Identity(n int) *Matrix {
	m := New(n, n)
	SetIdentity(m)
	return m
}

// Copy bulk-copies src into dst. Both must have identical shape.
func Copy(src, dst *Matrix) error {
	if !src.SameShape(dst) {
		return fmt.Errorf("matrix: copy shape mismatch: src %dx%d, dst %dx%d",
			src.NRows, src.NCols, dst.NRows, dst.NCols)
	}
	for i := 0; i < src.NRows; i++ {
		copy(dst.Rows[i], src.Rows[i])
	}
	return nil
}

// Clone returns an owning deep copy of m.
func (m *Matrix) Clone() *Matrix {
	dst := New(m.NRows, m.NCols)
	_ = Copy(m, dst)
	return dst
}

// Equal reports whether m and other have the same shape and contents.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i := 0; i < m.NRows; i++ {
		for j := 0; j < m.NCols; j++ {
			if m.Rows[i][j] != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}
