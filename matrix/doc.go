// Package matrix provides the dense, row-major float64 storage used by the
// ziptie statistics (energy accumulators and permission masks).
//
// The matrix package provides:
//
//   - Dense: a flat row-major buffer with safe At/Set accessors that return
//     sentinel errors instead of panicking.
//   - Row and column kernels (RawRow, FillRow, FillCol, Fill) used to reset
//     accumulators in O(r) or O(c).
//   - Max: a deterministic global arg-max with row-major first-occurrence
//     tie-break.
//   - Validators for vector lengths and binary masks.
//
// Matrices are meant for small, fixed alphabets where O(r*c) memory is
// acceptable and index arithmetic beats hashing.
package matrix
