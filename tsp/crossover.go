// Package tsp - order crossover.
//
// Crossover keeps a contiguous block of parent A verbatim and fills the
// remaining slots with the missing genes in parent B's order, starting right
// after the block and wrapping to the front. The child is always a
// permutation: every gene is placed exactly once.
package tsp

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Crossover draws two distinct cut points start < end from [0, n) and returns
// CrossoverAt(a, b, start, end). Both parents must be permutations of the same
// length n ≥ 2; parents are never modified and the child is freshly allocated.
//
// Complexity: O(n).
func Crossover(a, b Tour, r *rand.Rand) (Tour, error) {
	if len(a) < 2 || len(a) != len(b) {
		return nil, fmt.Errorf("%w: parents of length %d and %d", ErrDimensionMismatch, len(a), len(b))
	}
	start, end := sortedDistinctPair(orDefault(r), len(a))

	return CrossoverAt(a, b, start, end)
}

// CrossoverAt is the deterministic core of Crossover:
//  1. child[start:end] = a[start:end];
//  2. walk b in order; each gene not yet in the child goes to the next
//     unfilled slot, the cursor starting at end, skipping filled slots and
//     wrapping from n to 0.
//
// Requires 0 ≤ start < end ≤ n and both parents permutations of 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func CrossoverAt(a, b Tour, start, end int) (Tour, error) {
	var n = len(a)
	if len(b) != n {
		return nil, fmt.Errorf("%w: parents of length %d and %d", ErrDimensionMismatch, n, len(b))
	}
	if start < 0 || end > n || start >= end {
		return nil, fmt.Errorf("%w: cut [%d, %d) outside [0, %d]", ErrDimensionMismatch, start, end, n)
	}
	if err := ValidatePermutation(a, n); err != nil {
		return nil, err
	}
	if err := ValidatePermutation(b, n); err != nil {
		return nil, err
	}

	return orderCrossover(a, b, start, end), nil
}

// orderCrossover assumes validated inputs; it is the hot-path variant.
func orderCrossover(a, b Tour, start, end int) Tour {
	var (
		n      = len(a)
		child  = make(Tour, n)
		placed = make([]bool, n) // gene already in child
		filled = make([]bool, n) // slot already set
		i      int
	)
	for i = start; i < end; i++ {
		child[i] = a[i]
		placed[a[i]] = true
		filled[i] = true
	}

	var cursor = end
	for _, gene := range b {
		if placed[gene] {
			continue
		}
		for {
			if cursor >= n {
				cursor = 0
			}
			if !filled[cursor] {
				break
			}
			cursor++
		}
		child[cursor] = gene
		placed[gene] = true
		filled[cursor] = true
		cursor++
	}

	return child
}
