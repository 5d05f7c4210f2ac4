package matrix

import (
	"fmt"

	"github.com/avisegradi/rnc-lib/field"
)

// Invert computes r = a^-1 via Gauss-Jordan elimination on the augmented
// system [a | I], with no row-switching: a zero pivot is reported as
// failure rather than repaired by searching for a nonzero row below it.
// a is square and is consumed — its contents are overwritten by the
// elimination and must not be read afterward. r must have the same shape
// as a and must not alias it; Invert overwrites it with the identity
// before starting. Invert returns (true, nil) and leaves r = a^-1 on
// success, or (false, nil) the moment a zero pivot is found.
func Invert(a, r *Matrix) (bool, error) {
	if a.NRows != a.NCols {
		return false, fmt.Errorf("matrix: invert requires a square matrix, got %dx%d", a.NRows, a.NCols)
	}
	if !a.SameShape(r) {
		return false, fmt.Errorf("matrix: invert shape mismatch: a is %dx%d, r is %dx%d",
			a.NRows, a.NCols, r.NRows, r.NCols)
	}
	n := a.NRows
	SetIdentity(r)

	for i := 0; i < n; i++ {
		ai := a.Rows[i]
		ri := r.Rows[i]
		p := ai[i]
		if p == 0 {
			return false, nil
		}
		for c := i; c < n; c++ {
			ai[c] = field.Div(ai[c], p)
		}
		for c := 0; c < n; c++ {
			ri[c] = field.Div(ri[c], p)
		}

		for row := i + 1; row < n; row++ {
			ar := a.Rows[row]
			rr := r.Rows[row]
			h := ar[i]
			for c := i; c < n; c++ {
				field.AddToMul(&ar[c], ai[c], h)
			}
			for c := 0; c < n; c++ {
				field.AddToMul(&rr[c], ri[c], h)
			}
		}
	}

	for i := n - 1; i >= 0; i-- {
		ri := r.Rows[i]
		for row := i - 1; row >= 0; row-- {
			ar := a.Rows[row]
			rr := r.Rows[row]
			h := ar[i]
			ar[i] = 0
			for c := 0; c < n; c++ {
				field.AddToMul(&rr[c], ri[c], h)
			}
		}
	}

	return true, nil
}
