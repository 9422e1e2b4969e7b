// Package tsp - exact Held–Karp solver.
//
// TSPExact is the reference optimum used to judge genetic runs on small
// instances (and by the --verify CLI flag).
//
// dp[mask][j] = minimum cost of a path that starts at 0, visits exactly the
// vertices of mask (bit 0 always set) and ends at j. Closing the cycle adds
// cost(j, 0).
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
package tsp

import (
	"fmt"
	"math"
)

// MaxExactSize bounds TSPExact: 2¹⁶·16 float64 cells are ≈ 8 MiB.
const MaxExactSize = 16

// TSPExact returns an optimal open tour starting at 0 and its cycle cost.
//
// Errors: ErrInvalidMatrix for a nil matrix, ErrTooLarge when n > MaxExactSize,
// ErrCostOverflow when no cycle has a finite cost.
func TSPExact(cm *CostMatrix) (Tour, float64, error) {
	if cm == nil {
		return nil, 0, fmt.Errorf("%w: nil cost matrix", ErrInvalidMatrix)
	}
	var n = cm.n
	if n > MaxExactSize {
		return nil, 0, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, MaxExactSize)
	}

	var (
		full   = 1 << n
		all    = full - 1
		dp     = make([]float64, full*n)
		parent = make([]int, full*n)
		mask   int
		j, k   int
		prev   int
		cand   float64
	)
	for k = range dp {
		dp[k] = math.Inf(1)
		parent[k] = -1
	}
	dp[1*n+0] = 0

	for mask = 1; mask <= all; mask += 2 { // odd masks contain vertex 0
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				cand = dp[prev*n+k] + cm.w[k*n+j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	var (
		best = math.Inf(1)
		last = -1
	)
	for j = 1; j < n; j++ {
		cand = dp[all*n+j] + cm.w[j*n]
		if cand < best {
			best = cand
			last = j
		}
	}

	if last < 0 {
		return nil, 0, fmt.Errorf("%w: no finite cycle", ErrCostOverflow)
	}

	tour := make(Tour, n)
	mask = all
	j = last
	for k = n - 1; k >= 1; k-- {
		tour[k] = j
		prev = parent[mask*n+j]
		mask ^= 1 << j
		j = prev
	}
	tour[0] = 0

	cost := cm.tourCost(tour)
	if err := checkCost(tour, cost); err != nil {
		return nil, 0, err
	}

	return tour, cost, nil
}
