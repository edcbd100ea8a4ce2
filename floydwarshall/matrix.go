// Package floydwarshall - dense int64 distance matrix (row-major).
//
// Purpose:
//   - Cache-friendly flat buffer with the explicit index formula i*n + j.
//   - At/Set return errors instead of panicking at the public surface.
//   - core.Infinity marks "no path"; String renders it as "∞".

package floydwarshall

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlpath/core"
)

// Matrix is a square n×n distance matrix. Row i, column j holds the distance
// from vertex i+1 to vertex j+1.
type Matrix struct {
	n    int
	data []int64
}

// NewMatrix allocates an n×n matrix with 0 on the diagonal and core.Infinity
// everywhere else.
//
// Complexity: O(n²).
func NewMatrix(n int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: order %d", ErrOutOfRange, n)
	}
	m := &Matrix{n: n, data: make([]int64, n*n)}
	for i := range m.data {
		m.data[i] = core.Infinity
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	return m, nil
}

// Order returns n.
func (m *Matrix) Order() int { return m.n }

func (m *Matrix) inRange(i, j int) bool {
	return i >= 0 && i < m.n && j >= 0 && j < m.n
}

// At returns the distance at (i, j), zero-based.
func (m *Matrix) At(i, j int) (int64, error) {
	if !m.inRange(i, j) {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Set stores v at (i, j), zero-based.
func (m *Matrix) Set(i, j int, v int64) error {
	if !m.inRange(i, j) {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.data[i*m.n+j] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]int64, error) {
	if !m.inRange(i, 0) {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]int64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Rows returns the matrix as a fresh [][]int64.
func (m *Matrix) Rows() [][]int64 {
	out := make([][]int64, m.n)
	for i := range out {
		out[i], _ = m.Row(i)
	}

	return out
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Matrix{n: m.n, data: data}
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteString("[")
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v := m.data[i*m.n+j]
			if v == core.Infinity {
				sb.WriteString("∞")
				continue
			}
			sb.WriteString(strconv.FormatInt(v, 10))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
