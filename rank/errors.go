// SPDX-License-Identifier: MIT
// Package rank: sentinel error set.

package rank

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrank/matrix"
)

var (
	// ErrInvalidInput is returned when the leading singular value is not
	// positive (degenerate or numerically invalid matrix) or the input
	// matrix is unusable. Retrying on the same input cannot succeed.
	ErrInvalidInput = errors.New("rank: invalid input")

	// ErrEmptySequence is returned by EstimateRank for a zero-length
	// sequence. It also matches ErrInvalidInput under errors.Is.
	ErrEmptySequence = fmt.Errorf("%w: empty singular value sequence", ErrInvalidInput)

	// ErrDecomposition wraps a failure of the underlying SVD routine.
	ErrDecomposition = errors.New("rank: singular value decomposition failed")
)

// Operation tags for uniform error wrapping.
const (
	opCompute  = "ComputeSingularValues"
	opEstimate = "EstimateRank"
	opMatrix   = "EstimateMatrixRank"
)

// rankErrorf wraps err with an operation tag, preserving it for errors.Is.
func rankErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ErrUnknownBackend is returned by DecomposerByName for an unsupported name.
var ErrUnknownBackend = errors.New("rank: unknown decomposition backend")

// joinInvalid tags a matrix-level validation failure with ErrInvalidInput
// while keeping the original sentinel reachable.
func joinInvalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// joinDecomposition tags a backend failure with ErrDecomposition.
func joinDecomposition(err error) error {
	if errors.Is(err, ErrDecomposition) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrDecomposition, err)
}

// isInputError reports whether err stems from the shape or numeric policy
// of the input rather than from the decomposition itself.
func isInputError(err error) bool {
	return errors.Is(err, matrix.ErrNilMatrix) ||
		errors.Is(err, matrix.ErrInvalidDimensions) ||
		errors.Is(err, matrix.ErrDimensionMismatch) ||
		errors.Is(err, matrix.ErrNaNInf)
}
