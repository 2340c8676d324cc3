// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view handed out by accessors that return copies.
type Matrix interface {
	// Rows and Cols report the shape.
	Rows() int
	Cols() int

	// At reads (i, j); ErrOutOfRange on a bad index.
	At(i, j int) (float64, error)

	// Set writes (i, j); ErrOutOfRange on a bad index.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
