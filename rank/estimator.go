// SPDX-License-Identifier: MIT

package rank

import (
	"math"

	"github.com/katalvlaran/lvrank/matrix"
)

// Estimator bundles a resolved threshold and decomposition backend.
// It is immutable and safe for concurrent use when its Decomposer is.
type Estimator struct {
	threshold  float64
	decomposer Decomposer
}

// NewEstimator resolves opts over the defaults (DefaultThreshold, GonumSVD).
func NewEstimator(opts ...Option) *Estimator {
	o := gatherOptions(opts...)

	return &Estimator{threshold: o.threshold, decomposer: o.decomposer}
}

// Threshold reports the relative cutoff in use.
func (e *Estimator) Threshold() float64 { return e.threshold }

// Backend reports the name of the decomposition backend in use.
func (e *Estimator) Backend() string { return e.decomposer.Name() }

// SingularValues decomposes m and normalizes the values by the first one.
//
// When the leading value is not positive (or not finite) the raw values are
// returned as-is, with no error: normalizing would produce NaN, and Rank
// reports the condition as ErrInvalidInput.
//
// Errors:
//   - ErrInvalidInput for a nil, empty or non-finite matrix.
//   - ErrDecomposition when the backend fails.
func (e *Estimator) SingularValues(m matrix.Matrix) (SingularValues, error) {
	if err := matrix.ValidateNonEmpty(m); err != nil {
		return nil, rankErrorf(opCompute, joinInvalid(err))
	}
	values, err := e.decomposer.SingularValues(m)
	if err != nil {
		if isInputError(err) {
			return nil, rankErrorf(opCompute, joinInvalid(err))
		}

		return nil, rankErrorf(opCompute, joinDecomposition(err))
	}

	sv := SingularValues(values)
	if !validLeading(sv.Leading()) {
		return sv, nil
	}
	normalize(sv, sv[0])

	return sv, nil
}

// Rank returns the 0-based index of the first value strictly below the
// threshold after dividing by sv[0]; len(sv) when there is none. sv is not
// modified.
//
// Errors:
//   - ErrEmptySequence for len(sv) == 0.
//   - ErrInvalidInput when sv[0] ≤ 0 or is not finite.
func (e *Estimator) Rank(sv SingularValues) (int, error) {
	if len(sv) == 0 {
		return 0, rankErrorf(opEstimate, ErrEmptySequence)
	}
	lead := sv[0]
	if !validLeading(lead) {
		return 0, rankErrorf(opEstimate, ErrInvalidInput)
	}

	for i, v := range sv {
		// A value exactly at the threshold is still significant.
		if v/lead < e.threshold {
			return i, nil
		}
	}

	return len(sv), nil
}

// MatrixRank composes SingularValues and Rank.
func (e *Estimator) MatrixRank(m matrix.Matrix) (int, error) {
	sv, err := e.SingularValues(m)
	if err != nil {
		return 0, rankErrorf(opMatrix, err)
	}
	r, err := e.Rank(sv)
	if err != nil {
		return 0, rankErrorf(opMatrix, err)
	}

	return r, nil
}

// ComputeSingularValues is Estimator.SingularValues with one-off options.
func ComputeSingularValues(m matrix.Matrix, opts ...Option) (SingularValues, error) {
	return NewEstimator(opts...).SingularValues(m)
}

// EstimateRank is Estimator.Rank with one-off options.
func EstimateRank(sv SingularValues, opts ...Option) (int, error) {
	return NewEstimator(opts...).Rank(sv)
}

// EstimateMatrixRank is Estimator.MatrixRank with one-off options.
func EstimateMatrixRank(m matrix.Matrix, opts ...Option) (int, error) {
	return NewEstimator(opts...).MatrixRank(m)
}

func validLeading(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func normalize(sv SingularValues, lead float64) {
	for i := range sv {
		sv[i] /= lead
	}
}
