// Package prof collects timing entries for the CLI front ends, the same
// Track/SnapshotAndReset shape the teacher's top-level prof package uses.
package prof

import (
	"fmt"
	"sync"
	"time"
)

// Entry is a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under label.
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Throughput formats bytes processed over dur as a "t=... tp=..." line in
// the style original/rnc.cpp prints after each encode/decode pass.
func Throughput(label string, bytes int, dur time.Duration) string {
	mb := float64(bytes) / (1 << 20)
	secs := dur.Seconds()
	var tp float64
	if secs > 0 {
		tp = mb / secs
	}
	return fmt.Sprintf("%s t=%s tp=%.3f MB/s", label, dur, tp)
}
