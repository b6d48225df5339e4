// SPDX-License-Identifier: MIT
package rank_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/rank"
	"github.com/stretchr/testify/require"
)

// backends lists every Decomposer the properties must hold for.
var backends = []rank.Decomposer{rank.GonumSVD{}, rank.JacobiSVD{}}

// exampleRows is the 9×5 reference matrix of the painting notebook (true rank 3).
var exampleRows = [][]float64{
	{1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 1, 1, 1},
	{0, 0, 0, 0, 0},
	{1, 0, 2, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
}

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func diag(t testing.TB, values ...float64) *matrix.Dense {
	t.Helper()
	n := len(values)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, v := range values {
		require.NoError(t, m.Set(i, i, v))
	}

	return m
}

// randDense fills r×c with uniform values in [-1,1) from seed.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// lowRank builds an r×c matrix of exact rank k (k < min(r,c)) from
// orthogonal cosine vectors with weights 1, 1/2, 1/4, ..., so the normalized
// singular values are exactly those weights followed by zeros.
func lowRank(t testing.TB, r, c, k int) *matrix.Dense {
	t.Helper()
	data := make([]float64, r*c)
	w := 1.0
	for l := 1; l <= k; l++ {
		for i := 0; i < r; i++ {
			ui := math.Cos(math.Pi * float64(l) * (float64(i) + 0.5) / float64(r))
			for j := 0; j < c; j++ {
				vj := math.Cos(math.Pi * float64(l) * (float64(j) + 0.5) / float64(c))
				data[i*c+j] += w * ui * vj
			}
		}
		w /= 2
	}
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// stubDecomposer returns canned values or an error.
type stubDecomposer struct {
	values []float64
	err    error
}

func (s stubDecomposer) Name() string { return "stub" }

func (s stubDecomposer) SingularValues(matrix.Matrix) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}

	return append([]float64(nil), s.values...), nil
}
