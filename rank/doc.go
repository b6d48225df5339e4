// Package rank estimates the numerical rank of a matrix from its singular
// values.
//
// The rank of a photographed painting is the number of singular values
// that stay at or above a fixed fraction (DefaultThreshold, 5%) of the
// largest one. Three operations mirror the steps:
//
//	sv, err := rank.ComputeSingularValues(m)   // normalized, sv[0] == 1
//	r, err  := rank.EstimateRank(sv)           // first index with sv[i] < 0.05
//	r, err  := rank.EstimateMatrixRank(m)      // both at once
//
// A degenerate input (all-zero matrix, leading value ≤ 0) fails with
// ErrInvalidInput instead of producing NaN. When no value drops below the
// threshold the estimate is the full sequence length.
//
// The decomposition is pluggable through the Decomposer interface:
// GonumSVD (default) wraps gonum's LAPACK-backed SVD, JacobiSVD uses the
// dependency-free kernel of package matrix.
package rank
