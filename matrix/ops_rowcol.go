// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide row-, column- and scatter-wide kernels on *Dense that statistics
//     accumulators need on every step: reset a row, reset a column, zero the
//     diagonal, write one value at a list of coordinates, find the arg-max.
//   - Keep all loops deterministic and operate on the flat buffer directly.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - No allocations; FillRow is O(c), FillCol is O(r), Max is O(r*c).

package matrix

import "math"

const ctxSetPairs = "SetPairs"

// Fill writes v into every element.
// Returns ErrNaNInf (wrapped) when v is not finite.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if !finite(v) {
		return denseErrorf(ctxFill, -1, -1, ErrNaNInf)
	}
	for k := range m.data {
		m.data[k] = v
	}

	return nil
}

// RawRow returns the no-copy slice backing row i.
// MAIN DESCRIPTION:
//   - Lightweight row window over the base buffer (shared storage).
//
// Behavior highlights:
//   - Writes through the slice reflect in the matrix and skip the finite
//     check; callers own finiteness of what they write.
//   - The slice is capped at the row end, so append cannot spill into row i+1.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RawRow(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRawRow, i, -1, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// FillRow writes v into every element of row i.
// Complexity: O(c).
func (m *Dense) FillRow(i int, v float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxFillRow, i, -1, ErrOutOfRange)
	}
	if !finite(v) {
		return denseErrorf(ctxFillRow, i, -1, ErrNaNInf)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = v
	}

	return nil
}

// FillCol writes v into every element of column j.
// Complexity: O(r), strided access.
func (m *Dense) FillCol(j int, v float64) error {
	if j < 0 || j >= m.c {
		return denseErrorf(ctxFillCol, -1, j, ErrOutOfRange)
	}
	if !finite(v) {
		return denseErrorf(ctxFillCol, -1, j, ErrNaNInf)
	}
	for off := j; off < len(m.data); off += m.c {
		m.data[off] = v
	}

	return nil
}

// FillDiag writes v into (k,k) for k in [0, min(r,c)).
// Complexity: O(min(r,c)).
func (m *Dense) FillDiag(v float64) {
	n := m.r
	if m.c < n {
		n = m.c
	}
	for k := 0; k < n; k++ {
		m.data[k*m.c+k] = v
	}
}

// SetPairs writes v at every coordinate (rows[k], cols[k]).
// MAIN DESCRIPTION:
//   - Scatter a single value over a sparse coordinate list (COO layout).
//
// Implementation:
//   - Stage 1: validate len(rows)==len(cols) and every coordinate.
//   - Stage 2: write in list order.
//
// Behavior highlights:
//   - All-or-nothing: bounds are checked before the first write.
//
// Errors:
//   - ErrDimensionMismatch on unequal list lengths; ErrOutOfRange on a bad coordinate.
//
// Complexity:
//   - Time O(k), Space O(1).
func (m *Dense) SetPairs(rows, cols []int, v float64) error {
	if len(rows) != len(cols) {
		return denseErrorf(ctxSetPairs, len(rows), len(cols), ErrDimensionMismatch)
	}
	for k := range rows {
		if _, err := m.indexOf(rows[k], cols[k]); err != nil {
			return denseErrorf(ctxSetPairs, rows[k], cols[k], err)
		}
	}
	for k := range rows {
		m.data[rows[k]*m.c+cols[k]] = v
	}

	return nil
}

// Max returns the largest element and its coordinates.
// MAIN DESCRIPTION:
//   - Global arg-max over the flat buffer.
//
// Behavior highlights:
//   - Ties resolve to the first occurrence in row-major scan order (lowest row,
//     then lowest column), because only a strictly greater value replaces the
//     running best.
//   - NaN never wins a comparison.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Max() (v float64, row, col int) {
	best, at := m.data[0], 0
	for k := 1; k < len(m.data); k++ {
		if m.data[k] > best || (math.IsNaN(best) && !math.IsNaN(m.data[k])) {
			best, at = m.data[k], k
		}
	}

	return best, at / m.c, at % m.c
}
