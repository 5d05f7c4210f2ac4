//go:build q256

// Package field implements GF(q) arithmetic over log/pow tables. The field
// width is chosen at build time by the q256 tag; this file selects the
// 8-bit variant (q = 256).
package field

// E is the field element type for this build. Downstream packages are
// written against E alone and never branch on the underlying width.
type E = uint8

const (
	// Q is the field size, q = 2^w.
	Q = 256
	// G is the multiplicative group size, q-1.
	G = 255
	// Width is the field's bit width w, where q = 2^w.
	Width = 8
	// primitivePoly is the coefficient mask of a degree-8 primitive
	// polynomial over GF(2) (x^8+x^4+x^3+x^2+1), used once at init to
	// derive pow_table from a generator.
	primitivePoly = 0x11d
	// generator is a primitive element of GF(256) under primitivePoly.
	generator = 2
)
