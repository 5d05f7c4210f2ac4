//go:build q256

package source

import "github.com/avisegradi/rnc-lib/field"

// bytesPerElem is sizeof(field.E) for this build.
const bytesPerElem = 1

func elemsFromBytes(buf []byte) []field.E {
	out := make([]field.E, len(buf))
	for i, b := range buf {
		out[i] = field.E(b)
	}
	return out
}

func bytesFromElems(elems []field.E) []byte {
	out := make([]byte, len(elems))
	for i, e := range elems {
		out[i] = byte(e)
	}
	return out
}
