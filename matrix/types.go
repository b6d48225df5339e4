// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface shared by Dense and external adapters.
package matrix

// Matrix is a mutable rows×cols grid of float64 values addressed from (0, 0).
//
// Kernels accept any Matrix; they take a fast path for *Dense and fall back
// to At/Set for everything else.
type Matrix interface {
	// Rows is the height.
	Rows() int

	// Cols is the width.
	Cols() int

	// At reads (i, j); indices outside the shape give ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes (i, j); indices outside the shape give ErrOutOfRange.
	Set(i, j int, v float64) error

	// Clone returns a copy that shares no storage with the receiver.
	Clone() Matrix
}
