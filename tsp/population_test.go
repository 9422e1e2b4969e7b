package tsp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

func TestNewPopulation(t *testing.T) {
	t.Parallel()

	pop, err := tsp.NewPopulation(7, 25, tsp.NewRand(seedDet))
	require.NoError(t, err)
	require.Len(t, pop, 25)
	for _, tour := range pop {
		requirePermutation(t, tour, 7)
	}

	again, err := tsp.NewPopulation(7, 25, tsp.NewRand(seedDet))
	require.NoError(t, err)
	if diff := cmp.Diff(pop, again); diff != "" {
		t.Errorf("same seed gave different populations (-first +second):\n%s", diff)
	}
}

func TestNewPopulation_ToursAreIndependent(t *testing.T) {
	t.Parallel()

	pop, err := tsp.NewPopulation(5, 2, nil)
	require.NoError(t, err)
	before := pop[1].Clone()
	pop[0][0], pop[0][1] = pop[0][1], pop[0][0]
	assert.Equal(t, before, pop[1])
}

func TestNewPopulation_InvalidArgs(t *testing.T) {
	t.Parallel()

	for _, args := range [][2]int{{0, 4}, {4, 0}, {-1, 4}} {
		_, err := tsp.NewPopulation(args[0], args[1], nil)
		assert.ErrorIs(t, err, tsp.ErrConfiguration, "args %v", args)
	}
}
