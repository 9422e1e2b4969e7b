package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/tsp"
)

func TestNewRand_ZeroSeedIsDefault(t *testing.T) {
	t.Parallel()

	a, b := tsp.NewRand(0), tsp.NewRand(1)
	var i int
	for i = 0; i < 8; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDistinctPair_CoversAllOrderedPairs(t *testing.T) {
	t.Parallel()

	const k = 4
	r := tsp.NewRand(seedDet)
	seen := make(map[[2]int]int)

	var n int
	for n = 0; n < 4000; n++ {
		i, j := tsp.DistinctPair(r, k)
		require.NotEqual(t, i, j)
		require.True(t, i >= 0 && i < k && j >= 0 && j < k, "pair (%d,%d)", i, j)
		seen[[2]int{i, j}]++
	}
	assert.Len(t, seen, k*(k-1))
}

func TestSortedDistinctPair_Ordered(t *testing.T) {
	t.Parallel()

	r := tsp.NewRand(seedDet)
	var n int
	for n = 0; n < 1000; n++ {
		lo, hi := tsp.SortedDistinctPair(r, 2)
		require.Equal(t, 0, lo)
		require.Equal(t, 1, hi)
	}
}

func TestDeriveSeed_DecorrelatesStreams(t *testing.T) {
	t.Parallel()

	seen := make(map[uint64]bool)
	var s uint64
	for s = 0; s < 64; s++ {
		v := tsp.DeriveSeed(1, s)
		require.False(t, seen[v], "stream %d collides", s)
		seen[v] = true
	}
}

func TestDeriveRNG_Deterministic(t *testing.T) {
	t.Parallel()

	a := tsp.DeriveRNG(tsp.NewRand(seedDet), 3)
	b := tsp.DeriveRNG(tsp.NewRand(seedDet), 3)
	assert.Equal(t, a.Uint64(), b.Uint64())

	c := tsp.DeriveRNG(tsp.NewRand(seedDet), 4)
	d := tsp.DeriveRNG(tsp.NewRand(seedDet), 3)
	assert.NotEqual(t, c.Uint64(), d.Uint64())
}

func TestPermRange_IsPermutation(t *testing.T) {
	t.Parallel()

	r := tsp.NewRand(seedDet)
	var n int
	for n = 1; n < 20; n++ {
		requirePermutation(t, tsp.PermRange(n, r), n)
	}
}
