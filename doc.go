// Package lvrank estimates how many singular values a painting needs.
//
// Every greyscale image is a matrix; its numerical rank is the number of
// singular values that stay at or above 5% of the largest one. Flat,
// geometric canvases (think Mondrian) come out with very low ranks.
//
// 🚀 What is inside?
//
//	matrix/     Dense row-major matrix, validators, one-sided Jacobi singular values
//	rank/       ComputeSingularValues, EstimateRank, EstimateMatrixRank (gonum or Jacobi backend)
//	imageio/    image files → greyscale matrices, directory discovery
//	chart/      rank histogram and singular value line plot (gonum/plot)
//	pipeline/   concurrent batch runner with ordered results and Prometheus metrics
//	config/     YAML settings with defaults and validation
//	cmd/lvrank  the CLI: batch, image, example
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 0}, {0, 1}})
//	r, _ := rank.EstimateMatrixRank(m) // 2
//
// Batch run over a folder of paintings, saving painting_ranks.png:
//
//	go run ./cmd/lvrank batch piet_mondrian_painting_ranks/paintings
package lvrank
