// Package coding implements the (coefficients, data) block abstraction and
// the BlockList collection the simulation driver samples, drops, and
// recombines: a block's data row always equals its coefficient row times
// the original source matrix.
package coding

import "github.com/avisegradi/rnc-lib/field"

// Block pairs a coefficient row of length CoeffCount with a data row of
// length BlockLength. Both rows are borrowed — a Block never allocates or
// frees the memory they point into; that is the matrix/BlockList layer's
// job (a row view shares backing storage with whatever matrix produced
// it).
type Block struct {
	Coefficients []field.E
	Data         []field.E
	CoeffCount   int
	BlockLength  int
}

// NewBlock constructs a Block over borrowed coefficient and data rows.
func NewBlock(coefficients, data []field.E) *Block {
	return &Block{
		Coefficients: coefficients,
		Data:         data,
		CoeffCount:   len(coefficients),
		BlockLength:  len(data),
	}
}
