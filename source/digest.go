package source

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Digest returns the hex-encoded SHA3-256 fingerprint of buf, printed by
// the plain encoder/decoder CLI (cmd/rlncsim) after its throughput line so
// a round trip's integrity can be spot-checked without reopening the
// output file.
func Digest(buf []byte) string {
	sum := sha3.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
