// Package tsp_test provides helpers shared across *_test.go files.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

const (
	// epsTiny is the tolerance for comparing stabilized costs.
	epsTiny = 1e-9

	// seedDet is the fixed seed used where a test needs one.
	seedDet = int64(42)
)

// square4 has every Hamiltonian cycle costing 14.
var square4 = [][]float64{
	{0, 1, 2, 3},
	{1, 0, 4, 5},
	{2, 4, 0, 6},
	{3, 5, 6, 0},
}

// triangle3 has the single cycle cost 1 + 3 + 2 = 6.
var triangle3 = [][]float64{
	{0, 1, 2},
	{1, 0, 3},
	{2, 3, 0},
}

// zeros returns an n×n all-zero matrix.
func zeros(n int) [][]float64 {
	a := make([][]float64, n)
	var i int
	for i = range a {
		a[i] = make([]float64, n)
	}

	return a
}

// scaled returns a copy of a with every entry multiplied by f.
func scaled(a [][]float64, f float64) [][]float64 {
	out := make([][]float64, len(a))
	var i, j int
	for i = range a {
		out[i] = make([]float64, len(a[i]))
		for j = range a[i] {
			out[i][j] = a[i][j] * f
		}
	}

	return out
}

// uniform returns an n×n matrix with v off the diagonal.
func uniform(n int, v float64) [][]float64 {
	a := zeros(n)
	var i, j int
	for i = range a {
		for j = range a[i] {
			if i != j {
				a[i][j] = v
			}
		}
	}

	return a
}

func mustDense(t testing.TB, a [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(a)
	require.NoError(t, err)

	return m
}

func mustCost(t testing.TB, a [][]float64) *tsp.CostMatrix {
	t.Helper()
	cm, err := tsp.NewCostMatrix(mustDense(t, a))
	require.NoError(t, err)

	return cm
}

// ringPoints places n points on the unit circle in visiting order, so the
// identity tour is the unique optimal cycle.
func ringPoints(n int) []matrix.Point {
	pts := make([]matrix.Point, n)
	var (
		i     int
		theta float64
	)
	for i = 0; i < n; i++ {
		theta = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = matrix.Point{X: math.Cos(theta), Y: math.Sin(theta)}
	}

	return pts
}

func ringCost(t testing.TB, n int) *tsp.CostMatrix {
	t.Helper()
	m, err := matrix.NewEuclidean(ringPoints(n))
	require.NoError(t, err)
	cm, err := tsp.NewCostMatrix(m)
	require.NoError(t, err)

	return cm
}

// ringPerimeter is the optimal cycle cost of ringCost(n).
func ringPerimeter(n int) float64 {
	return float64(n) * 2 * math.Sin(math.Pi/float64(n))
}

// quickOptions returns a small silent configuration for fast tests.
func quickOptions(seed int64) tsp.Options {
	opts := tsp.DefaultOptions()
	opts.PopulationSize = 20
	opts.MaxGenerations = 30
	opts.LogEvery = 0
	opts.Seed = seed

	return opts
}

func requirePermutation(t testing.TB, tour tsp.Tour, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n), "tour %v", tour)
}
