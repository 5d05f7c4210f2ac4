package field

import "sync"

var (
	powTable [Q]E
	logTable [Q]E
	once     sync.Once
)

// Init builds log_table from pow_table. It is safe to call from multiple
// goroutines and is idempotent; the fill happens at most once, guarded by
// sync.Once, the "lazy fill under a one-shot guard" strategy called out as
// an acceptable alternative to a mandatory explicit init call. Every other
// function in this package calls it internally, so an explicit call is
// only needed before a direct pow_table/log_table lookup.
func Init() {
	once.Do(buildTables)
}

func buildTables() {
	x := uint32(1)
	for i := 0; i <= G; i++ {
		powTable[i] = E(x)
		x = gfMulPoly(x, generator)
	}
	for i := 0; i < G; i++ {
		logTable[powTable[i]] = E(i)
	}
	// logTable[0] is left zero: it is never read, per the field contract.
}

// gfMulPoly multiplies two field elements as GF(2)[x] polynomials modulo
// the build's primitive polynomial. It is only used to seed pow_table from
// the generator; every other arithmetic operation goes through the tables.
func gfMulPoly(a, b uint32) uint32 {
	var r uint32
	topBit := uint32(1) << Width
	for b > 0 {
		if b&1 != 0 {
			r ^= a
		}
		a <<= 1
		if a&topBit != 0 {
			a ^= primitivePoly
		}
		b >>= 1
	}
	return r
}

// Add returns a+b in GF(q); addition is XOR, so it is its own inverse and
// never needs the tables.
func Add(a, b E) E {
	return a ^ b
}

// Mul returns a*b in GF(q), 0 if either operand is 0.
func Mul(a, b E) E {
	if a == 0 || b == 0 {
		return 0
	}
	Init()
	t := int(logTable[a]) + int(logTable[b])
	if t > G {
		t -= G
	}
	return powTable[t]
}

// Div returns a/b in GF(q). Div returns 0 when a is 0; the result is
// undefined when b is 0, matching the original contract (the caller
// guarantees a nonzero divisor).
func Div(a, b E) E {
	if a == 0 {
		return 0
	}
	Init()
	t := int(logTable[a]) - int(logTable[b])
	if t < 0 {
		t += G
	}
	return powTable[t]
}

// Inv returns the multiplicative inverse of a. It is undefined for a=0;
// callers must ensure a is nonzero.
func Inv(a E) E {
	Init()
	return powTable[G-int(logTable[a])]
}

// AddToMul performs *d ^= a*b, the fused accumulate used by the hot loops
// in matrix multiply and Gauss-Jordan elimination. It is a no-op when
// either operand is 0.
func AddToMul(d *E, a, b E) {
	if a == 0 || b == 0 {
		return
	}
	Init()
	t := int(logTable[a]) + int(logTable[b])
	if t > G {
		t -= G
	}
	*d ^= powTable[t]
}

// Violation records the first (i,j) pair for which SelfCheck found an
// inconsistency, along with which property failed.
type Violation struct {
	I, J   int
	Reason string
}

// SelfCheck exhaustively verifies commutativity, the multiplicative
// identity, division's inverse relationship to multiplication, and that
// zero absorbs, for every (i,j) in [0,q)^2. It reports the first violation
// found, or nil if the tables are consistent. This is the optional
// self-check mode described for the field layer; it is O(q^2) and meant
// for build-time verification, not the hot path.
func SelfCheck() *Violation {
	Init()
	for i := 0; i < Q; i++ {
		for j := 0; j < Q; j++ {
			a, b := E(i), E(j)
			if (i == 0 || j == 0) && Mul(a, b) != 0 {
				return &Violation{i, j, "zero does not absorb"}
			}
			if i == 1 && Mul(a, b) != b {
				return &Violation{i, j, "1 is not a multiplicative identity"}
			}
			if j != 0 && Mul(b, Div(a, b)) != a {
				return &Violation{i, j, "mul(b, div(a,b)) != a"}
			}
			if Mul(a, b) != Mul(b, a) {
				return &Violation{i, j, "multiplication is not commutative"}
			}
		}
	}
	return nil
}
