package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

func TestMutate_RateZeroNeverChanges(t *testing.T) {
	t.Parallel()

	r := tsp.NewRand(seedDet)
	var i int
	for i = 0; i < 200; i++ {
		tour := tsp.PermRange(6, r)
		want := tour.Clone()
		require.Equal(t, want, tsp.Mutate(tour, 0, r))
	}
}

func TestMutate_RateOneSwapsExactlyTwo(t *testing.T) {
	t.Parallel()

	r := tsp.NewRand(seedDet)
	var i, k int
	for i = 0; i < 200; i++ {
		tour := tsp.PermRange(6, r)
		before := tour.Clone()
		got := tsp.Mutate(tour, 1, r)
		requirePermutation(t, got, 6)

		var diff []int
		for k = range got {
			if got[k] != before[k] {
				diff = append(diff, k)
			}
		}
		require.Len(t, diff, 2)
		assert.Equal(t, before[diff[0]], got[diff[1]])
		assert.Equal(t, before[diff[1]], got[diff[0]])
	}
}

func TestMutate_ShortTours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, tsp.Tour{0}, tsp.Mutate(tsp.Tour{0}, 1, nil))
	assert.Equal(t, tsp.Tour{1, 0}, tsp.Mutate(tsp.Tour{0, 1}, 1, nil))
}
