// Package source adapts a raw byte file to the matrix/BlockList layers:
// padding a byte buffer up to a multiple of N rows, exposing it as an N x M
// matrix, and building the initial BlockList of N uncoded blocks whose
// coefficients are the standard basis. Actual file I/O here is a thin
// os.ReadFile/os.WriteFile wrapper — memory-mapped I/O is an external
// collaborator this layer is not responsible for.
package source

import (
	"fmt"
	"os"

	"github.com/avisegradi/rnc-lib/coding"
	"github.com/avisegradi/rnc-lib/field"
	"github.com/avisegradi/rnc-lib/matrix"
)

// Source holds a loaded file's element buffer, reshaped into an N x M
// matrix, plus enough bookkeeping to truncate back to the original size
// on save.
type Source struct {
	Data         *matrix.Matrix
	Padded       bool
	OrigByteSize int
	N            int
}

// LoadPadded reads path and reshapes it into an n x m matrix, padding the
// element count up to the next multiple of n with zeros when necessary
// (recording Padded accordingly). This is the sparse-driver loading mode,
// which never errors on a size mismatch.
func LoadPadded(path string, n int) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: load %q: %w", path, err)
	}
	elems := elemsFromBytes(raw)
	t := len(elems)
	padded := false
	if mod := t % n; mod != 0 {
		t += n - mod
		padded = true
	}
	buf := make([]field.E, t)
	copy(buf, elems)
	return &Source{
		Data:         reshape(buf, n),
		Padded:       padded,
		OrigByteSize: len(raw),
		N:            n,
	}, nil
}

// LoadExact reads path and reshapes it into an n x m matrix. Unlike
// LoadPadded, it is an error for the file size not to be an exact
// multiple of n elements — the behavior the plain encoder/decoder CLI
// requires.
func LoadExact(path string, n int) (*Source, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: load %q: %w", path, err)
	}
	elems := elemsFromBytes(raw)
	if len(elems)%n != 0 {
		return nil, fmt.Errorf("source: file size (%d elements) is not a multiple of N (%d)", len(elems), n)
	}
	return &Source{
		Data:         reshape(elems, n),
		Padded:       false,
		OrigByteSize: len(raw),
		N:            n,
	}, nil
}

func reshape(buf []field.E, n int) *matrix.Matrix {
	m := len(buf) / n
	rows := make([][]field.E, n)
	for i := 0; i < n; i++ {
		rows[i] = buf[i*m : (i+1)*m]
	}
	return matrix.NewView(rows)
}

// Save flattens s.Data row-major and writes it to path, truncated back to
// the original byte length recorded at load time.
func (s *Source) Save(path string) error {
	elems := make([]field.E, 0, s.Data.NRows*s.Data.NCols)
	for _, row := range s.Data.Rows {
		elems = append(elems, row...)
	}
	buf := bytesFromElems(elems)
	if s.OrigByteSize < len(buf) {
		buf = buf[:s.OrigByteSize]
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("source: save %q: %w", path, err)
	}
	return nil
}

// InitialBlocks builds the initial BlockList of N uncoded blocks: block i
// has coefficients = row i of I_N and data = row i of s.Data, so every
// block trivially satisfies data = coefficients * s.Data.
func (s *Source) InitialBlocks() *coding.BlockList {
	id := matrix.Identity(s.N)
	bl := coding.New(s.N, true)
	for i := 0; i < s.N; i++ {
		bl.Append(coding.NewBlock(id.Rows[i], s.Data.Rows[i]))
	}
	return bl
}

// SaveMatrix writes m's elements row-major, untruncated — used to persist
// a coefficient or coded-data matrix, which carries no separate original
// byte length.
func SaveMatrix(m *matrix.Matrix, path string) error {
	elems := make([]field.E, 0, m.NRows*m.NCols)
	for _, row := range m.Rows {
		elems = append(elems, row...)
	}
	if err := os.WriteFile(path, bytesFromElems(elems), 0o644); err != nil {
		return fmt.Errorf("source: save matrix %q: %w", path, err)
	}
	return nil
}

// LoadMatrix reads path as a dense nrows x ncols matrix with no padding or
// size checks beyond exact element count.
func LoadMatrix(path string, nrows, ncols int) (*matrix.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: load matrix %q: %w", path, err)
	}
	elems := elemsFromBytes(raw)
	if len(elems) != nrows*ncols {
		return nil, fmt.Errorf("source: %q has %d elements, want %d", path, len(elems), nrows*ncols)
	}
	return reshape(elems, nrows), nil
}
