// Package tsp - 2-opt local search.
//
// TwoOpt polishes a genetic result with deterministic first-improvement 2-opt
// on the implicit cycle of an open tour. For cut indices 0 ≤ i < k ≤ n-1 with
// a = T[i-1 mod n], b = T[i], c = T[k], d = T[k+1 mod n], reversing T[i..k]
// changes the cost by
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d).
//
// A move is applied when Δ < −twoOptEps; scanning restarts after every
// accepted move. No randomness is used.
//
// Complexity: O(n²) candidate checks per pass; O(n) per accepted move.
package tsp

import "fmt"

// twoOptEps is the minimum improvement accepted, guarding against cycles of
// moves that only shuffle float rounding noise.
const twoOptEps = 1e-12

// TwoOpt returns an improved copy of tour and its cycle cost. maxIters bounds
// the number of accepted moves; 0 runs until a local optimum. The input tour
// is not modified.
//
// Errors: ErrInvalidMatrix for a nil matrix, ErrDimensionMismatch when tour is
// not a permutation of 0..n-1.
func TwoOpt(cm *CostMatrix, tour Tour, maxIters int) (Tour, float64, error) {
	if cm == nil {
		return nil, 0, fmt.Errorf("%w: nil cost matrix", ErrInvalidMatrix)
	}
	if err := ValidatePermutation(tour, cm.n); err != nil {
		return nil, 0, err
	}

	var (
		n        = cm.n
		cur      = tour.Clone()
		accepted int
	)
	at := func(u, v int) float64 { return cm.w[u*n+v] }

	for {
		var (
			improved   bool
			a, b, c, d int
			i, k       int
			delta      float64
		)
	scan:
		for i = 0; i < n-1; i++ {
			for k = i + 1; k < n; k++ {
				if i == 0 && k == n-1 {
					continue // reversing the whole cycle is a no-op
				}
				a = cur[(i-1+n)%n]
				b = cur[i]
				c = cur[k]
				d = cur[(k+1)%n]

				delta = at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -twoOptEps {
					continue
				}
				reverseInPlace(cur, i, k)
				accepted++
				improved = true

				break scan
			}
		}
		if !improved || (maxIters > 0 && accepted >= maxIters) {
			break
		}
	}

	return cur, cm.tourCost(cur), nil
}
