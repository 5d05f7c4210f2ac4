package coding

import (
	"fmt"

	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/matrix"
	"github.com/avisegradi/rnc-lib/prng"
)

// ToMatrixMode selects which half of a Block's pair BlockList.ToMatrix
// assembles a view over.
type ToMatrixMode int

const (
	// Coefficients selects each block's coefficient row.
	Coefficients ToMatrixMode = iota
	// Data selects each block's data row.
	Data
)

// BlockList is an amortized-growth collection of Block pointers. At most
// one BlockList sharing a given set of blocks may have Cleanup set; that
// one is considered the owner for documentation purposes, the rest are
// views. Go's GC reclaims the blocks regardless of which BlockList drops
// them last, so Cleanup here only records ownership intent (mirroring the
// original's free-on-destruct contract) rather than triggering a release.
type BlockList struct {
	Cleanup bool
	blocks  []*Block
}

// New constructs an empty BlockList with the given initial capacity. The
// caller should pass the known block count of its source (e.g. the file
// adapter's block count) as startSize to avoid reallocation.
func New(startSize int, cleanup bool) *BlockList {
	if startSize < 1 {
		startSize = 1
	}
	return &BlockList{
		Cleanup: cleanup,
		blocks:  make([]*Block, 0, startSize),
	}
}

// FromSlice wraps an existing slice of blocks without copying.
func FromSlice(blocks []*Block, cleanup bool) *BlockList {
	return &BlockList{Cleanup: cleanup, blocks: blocks}
}

// Count returns the number of blocks currently held.
func (bl *BlockList) Count() int { return len(bl.blocks) }

// Capacity returns the current backing capacity.
func (bl *BlockList) Capacity() int { return cap(bl.blocks) }

// Blocks returns the underlying slice of block pointers. Callers must not
// retain it across a call that mutates bl.
func (bl *BlockList) Blocks() []*Block { return bl.blocks }

// Append adds blk to the end of the list; growth is amortized O(1) via
// Go's own slice-append doubling, the same amortized cost the original's
// explicit capacity-doubling realloc achieves.
func (bl *BlockList) Append(blk *Block) {
	bl.blocks = append(bl.blocks, blk)
}

// Drop removes the block at index, shifting the tail left by one.
func (bl *BlockList) Drop(index int) (*Block, error) {
	if index < 0 || index >= len(bl.blocks) {
		return nil, fmt.Errorf("coding: drop: index %d out of range [0,%d)", index, len(bl.blocks))
	}
	blk := bl.blocks[index]
	copy(bl.blocks[index:], bl.blocks[index+1:])
	bl.blocks[len(bl.blocks)-1] = nil
	bl.blocks = bl.blocks[:len(bl.blocks)-1]
	return blk, nil
}

// RandomBlock returns a uniformly chosen block without removing it.
func (bl *BlockList) RandomBlock(s prng.Source) *Block {
	idx := int(s.Uint32() % uint32(len(bl.blocks)))
	return bl.blocks[idx]
}

// RandomDrop drops a single uniformly chosen block and returns it;
// ownership of the returned block moves to the caller.
func (bl *BlockList) RandomDrop(s prng.Source) (*Block, error) {
	if len(bl.blocks) == 0 {
		return nil, fmt.Errorf("coding: random_drop: list is empty")
	}
	idx := int(s.Uint32() % uint32(len(bl.blocks)))
	return bl.Drop(idx)
}

// RandomDropMany scans indices in order, dropping each with probability p
// up to maxDrops times, adjusting the scan index after each drop so later
// indices are not skipped.
func (bl *BlockList) RandomDropMany(p float64, maxDrops int, s prng.Source) {
	cnt := 0
	for i := 0; i < len(bl.blocks) && cnt < maxDrops; i++ {
		if prng.Unit(s) < p {
			bl.blocks = append(bl.blocks[:i], bl.blocks[i+1:]...)
			cnt++
			i--
		}
	}
}

// RandomSample returns a new, non-owning BlockList holding k distinct
// blocks drawn uniformly without replacement: it copies the pointer
// array, Fisher-Yates shuffles the copy, and truncates to k.
func (bl *BlockList) RandomSample(k int, s prng.Source) (*BlockList, error) {
	if k > len(bl.blocks) {
		return nil, fmt.Errorf("coding: random_sample: requested %d, have %d", k, len(bl.blocks))
	}
	sample := make([]*Block, len(bl.blocks))
	copy(sample, bl.blocks)
	prng.Shuffle(s, len(sample), func(i, j int) { sample[i], sample[j] = sample[j], sample[i] })
	return FromSlice(sample[:k], false), nil
}

// ShallowCopy returns a new, non-owning BlockList over the same block
// pointers. Both lists may be used simultaneously; only one BlockList
// sharing these blocks should ever have Cleanup set.
func (bl *BlockList) ShallowCopy() *BlockList {
	cp := make([]*Block, len(bl.blocks))
	copy(cp, bl.blocks)
	return FromSlice(cp, false)
}

// ToMatrix builds a view matrix whose rows point at either the
// coefficient or data row of each block, in list order. It returns an
// error if the list is empty or the blocks disagree on row length.
func (bl *BlockList) ToMatrix(mode ToMatrixMode) (*matrix.Matrix, error) {
	if len(bl.blocks) == 0 {
		return nil, fmt.Errorf("coding: to_matrix: empty block list")
	}
	rows := make([][]field.E, len(bl.blocks))
	ncols := 0
	for i, b := range bl.blocks {
		var row []field.E
		var n int
		if mode == Coefficients {
			row, n = b.Coefficients, b.CoeffCount
		} else {
			row, n = b.Data, b.BlockLength
		}
		if i == 0 {
			ncols = n
		} else if n != ncols {
			return nil, fmt.Errorf("coding: to_matrix: ragged block at index %d: %d cols, want %d", i, n, ncols)
		}
		rows[i] = row
	}
	return matrix.NewView(rows), nil
}

// ToMatrices builds the coefficient-view and data-view matrices in one
// pass, as to_matrices does in the original.
func (bl *BlockList) ToMatrices() (coeffs, data *matrix.Matrix, err error) {
	coeffs, err = bl.ToMatrix(Coefficients)
	if err != nil {
		return nil, nil, err
	}
	data, err = bl.ToMatrix(Data)
	if err != nil {
		return nil, nil, err
	}
	return coeffs, data, nil
}
