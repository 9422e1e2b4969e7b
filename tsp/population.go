package tsp

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Population is the fixed-size set of tours of one generation.
type Population []Tour

// NewPopulation returns size independent, uniformly random permutations of
// 0..n-1 (Fisher–Yates). Tours are not required to be distinct.
//
// Complexity: O(size·n).
func NewPopulation(n, size int, r *rand.Rand) (Population, error) {
	if n <= 0 || size <= 0 {
		return nil, fmt.Errorf("%w: population of %d tours over %d locations", ErrConfiguration, size, n)
	}
	r = orDefault(r)

	pop := make(Population, size)
	var i int
	for i = 0; i < size; i++ {
		pop[i] = permRange(n, r)
	}

	return pop, nil
}
