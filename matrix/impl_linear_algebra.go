// SPDX-License-Identifier: MIT
// Package matrix - kernels used around rank estimation: Transpose, Scale
// and SingularValues (one-sided Jacobi).
//
// Notes:
//   - Inputs go through the validators first; failures carry the kernel name via matrixErrorf.
//   - *Dense inputs are read from the flat buffer; other implementations through At, row by row.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ZeroSum seeds the dot-product and norm accumulators.
const ZeroSum = 0.0

// machEps is the float64 unit roundoff (2^-52).
const machEps = 2.220446049250313e-16

// op tags for matrixErrorf
const (
	opTranspose      = "Transpose"
	opScale          = "Scale"
	opSingularValues = "SingularValues"
)

// matrixErrorf prefixes a non-nil err with the kernel name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellFunc receives the source coordinates and value of one element and
// returns the destination coordinates and value.
type cellFunc func(i, j int, v float64) (di, dj int, dv float64)

// mapCells visits every element of m in row-major order and writes f's
// result into dst. *Dense sources are read straight from the buffer.
func mapCells(m Matrix, dst *Dense, f cellFunc) error {
	rows, cols := m.Rows(), m.Cols()
	if src, ok := m.(*Dense); ok {
		for k, v := range src.data {
			di, dj, dv := f(k/cols, k%cols, v)
			dst.data[di*dst.c+dj] = dv
		}

		return nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			di, dj, dv := f(i, j, v)
			if err = dst.Set(di, dj, dv); err != nil {
				return fmt.Errorf("Set(%d,%d): %w", di, dj, err)
			}
		}
	}

	return nil
}

// Transpose returns mᵀ as a new cols×rows Dense.
//
// Errors:
//   - ErrNilMatrix; At/Set errors of foreign Matrix implementations.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	flip := func(i, j int, v float64) (int, int, float64) { return j, i, v }
	if err = mapCells(m, res, flip); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return res, nil
}

// Scale returns alpha·m as a new Dense; m is left untouched.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is not finite.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if !finite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	mul := func(i, j int, v float64) (int, int, float64) { return i, j, alpha * v }
	if err = mapCells(m, res, mul); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// SingularValues computes the singular values of m, sorted descending,
// via one-sided (Hestenes) Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateNonEmpty + ValidateFinite. Load the columns of m (or of mᵀ
//     when rows < cols) into a column-major work buffer, so the number of
//     work columns is n = min(rows, cols).
//   - Stage 2: Sweep all pairs (p,q), p<q, in fixed order. For each pair with
//     |γ| > eps·√(αβ) (α=‖a_p‖², β=‖a_q‖², γ=<a_p,a_q>) apply the plane
//     rotation that makes the two columns orthogonal.
//   - Stage 3: Stop after the first sweep without rotations; the column norms
//     are then the singular values.
//
// Inputs:
//   - m: non-empty, finite matrix.
//   - opts: WithEpsilon (relative orthogonality tolerance), WithMaxSweeps.
//
// Returns:
//   - []float64 of length min(rows, cols), non-negative, descending.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNaNInf,
//     ErrMatrixSVDFailed (still rotating after maxSweeps).
//
// Determinism:
//   - Fixed p→q pair order and fixed update order produce stable results.
//
// Complexity:
//   - Time O(sweeps · n² · k) with k = max(rows, cols), Space O(n·k).
//
// Notes:
//   - Columns with ‖a‖² ≤ u²·‖m‖²_F (u = unit roundoff) are never rotated, so an
//     all-zero matrix returns all-zero values after a single sweep.
//   - Working on columns directly (instead of eigenvalues of mᵀm) keeps small
//     singular values accurate to the eps level.
//
// AI-Hints:
//   - Good defaults: eps≈1e-12, maxSweeps≈30..64.
//   - For large photographs prefer the gonum backend in package rank; this kernel is
//     a dependency-free reference.
func SingularValues(m Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}
	o := gatherOptions(opts...)

	// Stage 1: column-major work buffer over the longer side.
	rows, cols := m.Rows(), m.Cols()
	transposed := rows < cols
	n, k := cols, rows // n work columns of length k
	if transposed {
		n, k = rows, cols
	}
	buf := make([]float64, n*k)
	work := make([][]float64, n)
	var i, j int
	for j = 0; j < n; j++ {
		work[j] = buf[j*k : (j+1)*k]
	}
	if err := loadColumns(m, work, transposed); err != nil {
		return nil, matrixErrorf(opSingularValues, err)
	}

	// Columns whose squared norm is below floor are roundoff of the others
	// and are treated as zero; without it such columns never test orthogonal.
	var frob2 float64
	for _, v := range buf {
		frob2 += v * v
	}
	floor := machEps * machEps * frob2

	// Stage 2: Jacobi sweeps.
	var (
		sweep              int
		p, q               int
		alpha, beta, gamma float64 // ‖a_p‖², ‖a_q‖², <a_p,a_q>
		zeta, t, c, s      float64 // rotation parameters
		ap, aq             []float64
		up, uq             float64
		rotated            bool
	)
	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				ap, aq = work[p], work[q]

				// J.1: Gram entries of the column pair.
				alpha, beta, gamma = ZeroSum, ZeroSum, ZeroSum
				for i = 0; i < k; i++ {
					alpha += ap[i] * ap[i]
					beta += aq[i] * aq[i]
					gamma += ap[i] * aq[i]
				}

				// J.2: Skip pairs that are already orthogonal within eps.
				if alpha <= floor || beta <= floor || math.Abs(gamma) <= o.eps*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true

				// J.3: ζ = (β−α)/(2γ); t = sign(ζ)/(|ζ|+√(1+ζ²)); c = 1/√(1+t²); s = c·t.
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0/(math.Abs(zeta)+math.Hypot(zeta, 1)), zeta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = c * t

				// J.4: Rotate the column pair in place.
				for i = 0; i < k; i++ {
					up, uq = ap[i], aq[i]
					ap[i] = c*up - s*uq
					aq[i] = s*up + c*uq
				}
			}
		}
		if !rotated {
			break
		}
	}
	if rotated {
		return nil, matrixErrorf(opSingularValues, ErrMatrixSVDFailed)
	}

	// Stage 3: column norms, descending.
	values := make([]float64, n)
	var acc float64
	for j = 0; j < n; j++ {
		acc = ZeroSum
		for i = 0; i < k; i++ {
			acc += work[j][i] * work[j][i]
		}
		values[j] = math.Sqrt(acc)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	return values, nil
}

// loadColumns copies m (or mᵀ when transposed) into the column-major work
// slices.
func loadColumns(m Matrix, work [][]float64, transposed bool) error {
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			i, j := k/d.c, k%d.c
			if transposed {
				work[i][j] = v
			} else {
				work[j][i] = v
			}
		}

		return nil
	}

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if transposed {
				work[i][j] = v
			} else {
				work[j][i] = v
			}
		}
	}

	return nil
}
