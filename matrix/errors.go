// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
//
// Kernels and constructors return these, usually wrapped with an operation
// tag (matrixErrorf, denseErrorf); match them with errors.Is. Every message
// starts with "matrix:".

package matrix

import "errors"

var (
	// ErrInvalidDimensions reports a non-positive row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange reports an index outside the matrix. At and Set return
	// it instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch reports ragged rows passed to NewFromRows or a
	// buffer whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf reports a NaN or ±Inf where the finite-only policy applies.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix reports a nil Matrix argument, including a typed nil *Dense.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMatrixSVDFailed reports Jacobi sweeps that were still rotating when
	// the sweep budget ran out.
	ErrMatrixSVDFailed = errors.New("matrix: singular value decomposition failed")
)
