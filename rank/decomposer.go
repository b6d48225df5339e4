// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvrank/matrix"
)

// Backend names accepted by DecomposerByName.
const (
	BackendGonum  = "gonum"
	BackendJacobi = "jacobi"
)

// Compile-time assertions.
var (
	_ Decomposer = GonumSVD{}
	_ Decomposer = JacobiSVD{}
)

// GonumSVD factorizes with gonum's mat.SVD using mat.SVDNone, so only the
// singular values are computed.
type GonumSVD struct{}

// Name implements Decomposer.
func (GonumSVD) Name() string { return BackendGonum }

// SingularValues implements Decomposer.
func (GonumSVD) SingularValues(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, err
	}
	a, err := toGonum(m)
	if err != nil {
		return nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return nil, fmt.Errorf("gonum: factorization did not converge: %w", ErrDecomposition)
	}

	return svd.Values(nil), nil
}

// toGonum copies m into a gonum dense matrix.
func toGonum(m matrix.Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	if d, ok := m.(*matrix.Dense); ok {
		return mat.NewDense(r, c, d.RowMajor()), nil
	}

	data := make([]float64, r*c)
	var i, j int
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if data[i*c+j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return mat.NewDense(r, c, data), nil
}

// JacobiSVD uses matrix.SingularValues. Zero fields select the matrix
// package defaults.
type JacobiSVD struct {
	Epsilon   float64 // relative orthogonality tolerance; 0 → matrix.DefaultEpsilon
	MaxSweeps int     // sweep budget; 0 → matrix.DefaultMaxSweeps
}

// Name implements Decomposer.
func (JacobiSVD) Name() string { return BackendJacobi }

// SingularValues implements Decomposer.
func (j JacobiSVD) SingularValues(m matrix.Matrix) ([]float64, error) {
	var opts []matrix.Option
	if j.Epsilon > 0 {
		opts = append(opts, matrix.WithEpsilon(j.Epsilon))
	}
	if j.MaxSweeps > 0 {
		opts = append(opts, matrix.WithMaxSweeps(j.MaxSweeps))
	}

	return matrix.SingularValues(m, opts...)
}

// DecomposerByName maps a backend name (case-insensitive) to a Decomposer.
// The empty name selects the default backend.
func DecomposerByName(name string) (Decomposer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", BackendGonum:
		return GonumSVD{}, nil
	case BackendJacobi:
		return JacobiSVD{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownBackend)
	}
}
