// Package matrix offers the dense numeric container used by lvrank.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors
//     (At/Set never panic on user input).
//   - Constructors from shapes (NewDense), nested rows (NewFromRows) and
//     flat row-major buffers (NewFromData).
//   - Small kernels needed around rank estimation: Transpose, Scale and
//     SingularValues (one-sided Jacobi).
//
// Greyscale images decoded by imageio land here as rows=height, cols=width
// matrices of pixel intensities; the rank package consumes them.
//
// See the examples in this package for usage patterns.
package matrix
