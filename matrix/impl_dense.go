// SPDX-License-Identifier: MIT

// Package matrix - Dense row-major storage with checked accessors.
//
// Layout:
//   - One flat []float64 per matrix; element (i,j) lives at i*cols + j.
//   - At/Set/RawRow and the row/column kernels report bad indices as errors.
//   - Set and the Fill* kernels reject NaN and ±Inf with ErrNaNInf.
//
// Costs:
//   - NewDense, NewFilled, Clone: O(r*c). At, Set, RawRow: O(1).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxFill    = "Fill"
	ctxRawRow  = "RawRow"
	ctxFillRow = "FillRow"
	ctxFillCol = "FillCol"
)

// denseErrorf tags err with the method and the offending coordinates.
// A coordinate of -1 means the kernel works on a whole row or column.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major float64 matrix.
type Dense struct {
	r, c int       // > 0
	data []float64 // len == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled allocates an r×c matrix with every element set to v.
// Permission masks start life as NewFilled(r, c, 1).
//
// Errors:
//   - ErrInvalidDimensions, or ErrNaNInf when v is not finite.
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(v); err != nil {
		return nil, err
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf maps (row, col) to its offset in data.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange (wrapped).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
// Errors: ErrOutOfRange, or ErrNaNInf when v is not finite.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !finite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
