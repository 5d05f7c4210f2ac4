package matrix

import "sync"

// PMul is the parallel counterpart to Mul. With NCPUS==1 it delegates to
// Mul directly. Otherwise it partitions the rows of m1 into bands (of
// BlockSize rows when blocking is enabled, one row each otherwise),
// submits each band to a worker pool capped at NCPUS concurrent
// goroutines, and waits for all of them to finish before returning. Every
// task writes a disjoint row range of md, so no further synchronization is
// needed beyond that drain, and the result is bit-identical to Mul for any
// NCPUS/BlockSize combination.
func PMul(m1, m2, md *Matrix) error {
	if err := checkMulShapes(m1, m2, md); err != nil {
		return err
	}
	t := CurrentTuning()
	if t.NCPUS <= 1 {
		if t.BlockSize <= 1 {
			mulNonBlocked(m1, m2, md)
		} else {
			mulBlocked(m1, m2, md, t.BlockSize)
		}
		return nil
	}
	if t.BlockSize <= 1 {
		pmulNonBlocked(m1, m2, md, t.NCPUS)
	} else {
		pmulBlocked(m1, m2, md, t.NCPUS, t.BlockSize)
	}
	return nil
}

// runPool runs tasks with at most width concurrent workers and returns once
// every task has completed.
func runPool(width int, ntasks int, task func(idx int)) {
	sem := make(chan struct{}, width)
	var wg sync.WaitGroup
	for idx := 0; idx < ntasks; idx++ {
		idx := idx
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			task(idx)
		}()
	}
	wg.Wait()
}

func pmulNonBlocked(m1, m2, md *Matrix, ncpus int) {
	runPool(ncpus, m1.NRows, func(i int) {
		mulRowNonBlocked(m1, m2, md, i)
	})
}

func pmulBlocked(m1, m2, md *Matrix, ncpus, blockSize int) {
	for i := 0; i < md.NRows; i++ {
		row := md.Rows[i]
		for j := range row {
			row[j] = 0
		}
	}
	nbands := (m1.NRows + blockSize - 1) / blockSize
	runPool(ncpus, nbands, func(band int) {
		i := band * blockSize
		mulRowBandBlocked(m1, m2, md, i, blockSize)
	})
}
