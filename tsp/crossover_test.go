package tsp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

func TestCrossoverAt_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		a, b       tsp.Tour
		start, end int
		want       tsp.Tour
	}{
		{"reversed parent", tsp.Tour{0, 1, 2, 3, 4}, tsp.Tour{4, 3, 2, 1, 0}, 1, 3, tsp.Tour{0, 1, 2, 4, 3}},
		{"wraps to front", tsp.Tour{0, 1, 2, 3, 4, 5}, tsp.Tour{5, 4, 3, 2, 1, 0}, 2, 4, tsp.Tour{1, 0, 2, 3, 5, 4}},
		{"whole of a", tsp.Tour{2, 0, 1}, tsp.Tour{0, 1, 2}, 0, 3, tsp.Tour{2, 0, 1}},
		{"single gene", tsp.Tour{0, 1, 2, 3}, tsp.Tour{3, 2, 1, 0}, 0, 1, tsp.Tour{0, 3, 2, 1}},
		{"identical parents", tsp.Tour{3, 1, 0, 2}, tsp.Tour{3, 1, 0, 2}, 1, 2, tsp.Tour{2, 1, 3, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tsp.CrossoverAt(tc.a, tc.b, tc.start, tc.end)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CrossoverAt mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrossoverAt_Errors(t *testing.T) {
	t.Parallel()

	a, b := tsp.Tour{0, 1, 2, 3}, tsp.Tour{3, 2, 1, 0}
	for _, cut := range [][2]int{{-1, 2}, {2, 2}, {3, 1}, {0, 5}} {
		_, err := tsp.CrossoverAt(a, b, cut[0], cut[1])
		assert.ErrorIs(t, err, tsp.ErrDimensionMismatch, "cut %v", cut)
	}
	_, err := tsp.CrossoverAt(a, tsp.Tour{0, 1, 2}, 0, 2)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
	_, err = tsp.CrossoverAt(a, tsp.Tour{0, 1, 1, 3}, 0, 2)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

func TestCrossoverAt_EveryCutPair(t *testing.T) {
	t.Parallel()

	const n = 7
	r := tsp.NewRand(seedDet)
	parents := [][2]tsp.Tour{
		{{0, 1, 2, 3, 4, 5, 6}, {6, 5, 4, 3, 2, 1, 0}},
		{{3, 1, 4, 0, 5, 2, 6}, {3, 1, 4, 0, 5, 2, 6}},
		{tsp.PermRange(n, r), tsp.PermRange(n, r)},
	}
	var start, end int
	for _, p := range parents {
		for start = 0; start < n; start++ {
			for end = start + 1; end <= n; end++ {
				child, err := tsp.CrossoverAt(p[0], p[1], start, end)
				require.NoError(t, err, "cut [%d,%d)", start, end)
				requirePermutation(t, child, n)
				require.Equal(t, p[0][start:end], child[start:end], "cut [%d,%d)", start, end)
			}
		}
	}
}

func TestCrossover_AlwaysPermutationAndParentsUntouched(t *testing.T) {
	t.Parallel()

	const n = 9
	r := tsp.NewRand(seedDet)
	var i int
	for i = 0; i < 500; i++ {
		a, b := tsp.PermRange(n, r), tsp.PermRange(n, r)
		ca, cb := a.Clone(), b.Clone()

		child, err := tsp.Crossover(a, b, r)
		require.NoError(t, err)
		requirePermutation(t, child, n)
		require.Equal(t, ca, a)
		require.Equal(t, cb, b)
	}

	_, err := tsp.Crossover(tsp.Tour{0}, tsp.Tour{0}, r)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
