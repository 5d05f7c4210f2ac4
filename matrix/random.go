package matrix

import (
	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/prng"
)

// RandDense fills m with independently uniform elements of GF(q).
func RandDense(m *Matrix, s prng.Source) {
	for i := 0; i < m.NRows; i++ {
		row := m.Rows[i]
		for j := range row {
			row[j] = prng.Fq[field.E](s, field.Q)
		}
	}
}

// RandSparse fills m so that each element is 0 with probability p and
// otherwise a uniformly sampled field element. When nonzeroOnly is true,
// the non-dropped elements are drawn from GF(q)* instead of GF(q), which
// is what the sparse coding path needs so a row's Hamming weight matches
// its intended expected value exactly.
func RandSparse(m *Matrix, p float64, s prng.Source, nonzeroOnly bool) {
	for i := 0; i < m.NRows; i++ {
		row := m.Rows[i]
		for j := range row {
			if prng.Unit(s) < p {
				row[j] = 0
				continue
			}
			if nonzeroOnly {
				row[j] = field.E(1 + s.Uint32()%uint32(field.G))
			} else {
				row[j] = prng.Fq[field.E](s, field.Q)
			}
		}
	}
}
