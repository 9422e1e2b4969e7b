package tsp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

func TestSelect_KeepsBetterHalf(t *testing.T) {
	t.Parallel()

	var (
		cm   = ringCost(t, 5)
		opt  = tsp.Tour{0, 1, 2, 3, 4} // five sides
		mid  = tsp.Tour{0, 1, 3, 2, 4} // three sides, two diagonals
		star = tsp.Tour{0, 2, 4, 1, 3} // five diagonals
	)
	got, err := tsp.Select(tsp.Population{star, mid, opt, star.Clone()}, cm)
	require.NoError(t, err)
	if diff := cmp.Diff([]tsp.Tour{opt, mid}, got); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}

	got, err = tsp.Select(tsp.Population{star, mid, opt, star, mid}, cm)
	require.NoError(t, err)
	assert.Len(t, got, 2, "floor(5/2)")
}

func TestSelect_TiesKeepPopulationOrder(t *testing.T) {
	t.Parallel()

	pop := tsp.Population{{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 2, 1, 3}, {1, 0, 2, 3}}
	got, err := tsp.Select(pop, mustCost(t, square4))
	require.NoError(t, err)
	if diff := cmp.Diff([]tsp.Tour{pop[0], pop[1]}, got); diff != "" {
		t.Errorf("Select mismatch (-want +got):\n%s", diff)
	}
}

func TestSelect_Errors(t *testing.T) {
	t.Parallel()

	pop := tsp.Population{{0, 1, 2, 3}, {3, 2, 1, 0}, {0, 2, 1, 3}, {1, 0, 2, 3}}
	_, err := tsp.Select(pop, mustCost(t, zeros(4)))
	assert.ErrorIs(t, err, tsp.ErrZeroTourCost)

	pop[2] = tsp.Tour{0, 0, 1, 2}
	_, err = tsp.Select(pop, mustCost(t, square4))
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
