// SPDX-License-Identifier: MIT

package rank

import (
	"github.com/katalvlaran/lvrank/matrix"
)

// SingularValues is a descending sequence of non-negative singular values.
// After ComputeSingularValues it is normalized so the first element is 1.
type SingularValues []float64

// Leading returns the first (largest) value, or 0 for an empty sequence.
func (s SingularValues) Leading() float64 {
	if len(s) == 0 {
		return 0
	}

	return s[0]
}

// Decomposer computes the singular values of a matrix, largest first.
// Implementations discard singular vectors.
type Decomposer interface {
	// Name identifies the backend in logs and configuration.
	Name() string

	// SingularValues returns min(rows, cols) values sorted descending.
	SingularValues(m matrix.Matrix) ([]float64, error)
}
