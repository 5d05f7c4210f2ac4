package prof

import (
	"testing"
	"time"
)

func TestTrackAndSnapshot(t *testing.T) {
	SnapshotAndReset()
	Track(time.Now().Add(-10*time.Millisecond), "encode")
	Track(time.Now().Add(-5*time.Millisecond), "decode")

	entries := SnapshotAndReset()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Label != "encode" || entries[1].Label != "decode" {
		t.Fatalf("unexpected labels: %+v", entries)
	}

	if again := SnapshotAndReset(); len(again) != 0 {
		t.Fatalf("expected snapshot to reset, got %d leftover entries", len(again))
	}
}

func TestThroughputFormat(t *testing.T) {
	s := Throughput("encode", 1<<20, time.Second)
	if want := "encode t=1s tp=1.000 MB/s"; s != want {
		t.Fatalf("Throughput = %q, want %q", s, want)
	}
}
