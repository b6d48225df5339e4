package rank_test

import (
	"testing"

	"github.com/katalvlaran/lvrank/rank"
)

func benchmarkMatrixRank(b *testing.B, d rank.Decomposer) {
	m := randDense(b, 96, 64, 5)
	e := rank.NewEstimator(rank.WithDecomposer(d))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.MatrixRank(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatrixRank_Gonum(b *testing.B)  { benchmarkMatrixRank(b, rank.GonumSVD{}) }
func BenchmarkMatrixRank_Jacobi(b *testing.B) { benchmarkMatrixRank(b, rank.JacobiSVD{}) }
