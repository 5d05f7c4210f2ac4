package matrix

import "sync/atomic"

var (
	ncpus     atomic.Int64
	blockSize atomic.Int64
)

func init() {
	ncpus.Store(2)
	blockSize.Store(1)
}

// Tuning is a snapshot of the process-wide knobs, taken once at the start
// of Mul/PMul so an in-flight call is unaffected by a concurrent SetNCPUS
// or SetBlockSize, per the "callers must not mutate them during a call"
// convention.
type Tuning struct {
	NCPUS     int
	BlockSize int
}

// CurrentTuning snapshots the process-wide NCPUS/BlockSize knobs.
func CurrentTuning() Tuning {
	return Tuning{NCPUS: int(ncpus.Load()), BlockSize: int(blockSize.Load())}
}

// SetNCPUS sets the worker-pool width PMul uses for subsequent calls.
func SetNCPUS(n int) {
	if n < 1 {
		n = 1
	}
	ncpus.Store(int64(n))
}

// SetBlockSize sets the cache-blocking tile size Mul/PMul use for
// subsequent calls.
func SetBlockSize(n int) {
	if n < 1 {
		n = 1
	}
	blockSize.Store(int64(n))
}
