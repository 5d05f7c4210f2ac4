//go:build !q256

package source

import (
	"encoding/binary"

	"github.com/avisegradi/rnc-lib/field"
)

// bytesPerElem is sizeof(field.E) for this build.
const bytesPerElem = 2

func elemsFromBytes(buf []byte) []field.E {
	out := make([]field.E, len(buf)/bytesPerElem)
	for i := range out {
		out[i] = field.E(binary.LittleEndian.Uint16(buf[i*bytesPerElem:]))
	}
	return out
}

func bytesFromElems(elems []field.E) []byte {
	out := make([]byte, len(elems)*bytesPerElem)
	for i, e := range elems {
		binary.LittleEndian.PutUint16(out[i*bytesPerElem:], uint16(e))
	}
	return out
}
