// Package tsp - cost matrix and fitness evaluation.
//
// CostMatrix is the immutable, validated view of a distance matrix that every
// operator reads. Weights are prefetched into a flat buffer w[i*n+j] so hot
// loops avoid interface indirection and error returns; the buffer is never
// written after construction, so concurrent readers are safe.
//
// Cycle costs are stabilized to costDigits significant digits (stabilize) so
// FP drift does not split equal cycles; the rounding is relative, never
// turning a positive cost into 0 or a finite one into +Inf.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

// costDigits is the number of significant decimal digits kept by stabilize.
const costDigits = 12

// CostMatrix is an immutable n×n symmetric table of non-negative travel costs
// with a zero diagonal and n ≥ 3.
type CostMatrix struct {
	n int
	w []float64
}

// NewCostMatrix validates dist and copies it into a CostMatrix.
// Later changes to dist do not affect the result.
//
// Errors: ErrInvalidMatrix (and its refinements), ErrConfiguration for n < 3,
// ErrIncompleteGraph for a +Inf off-diagonal entry.
//
// Complexity: O(n²) time and memory.
func NewCostMatrix(dist matrix.Matrix) (*CostMatrix, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, err
	}

	cm := &CostMatrix{n: n, w: make([]float64, n*n)}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, _ = dist.At(i, j) // in range after validation
			cm.w[i*n+j] = x
		}
	}
	// The diagonal is only ≈ 0 within symTol; store it as exact zero.
	for i = 0; i < n; i++ {
		cm.w[i*n+i] = 0
	}

	return cm, nil
}

// Size returns n, the number of locations.
func (c *CostMatrix) Size() int { return c.n }

// Cost returns the travel cost between i and j. Indices must lie in [0, n);
// violating that is a programming error and panics like a slice index.
func (c *CostMatrix) Cost(i, j int) float64 { return c.w[i*c.n+j] }

// zeroEdge reports the first off-diagonal pair with zero cost, if any.
func (c *CostMatrix) zeroEdge() (int, int, bool) {
	var i, j int
	for i = 0; i < c.n; i++ {
		for j = i + 1; j < c.n; j++ {
			if c.w[i*c.n+j] == 0 {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// tourCost sums the closed cycle of a tour known to be a valid permutation.
//
// Complexity: O(n).
func (c *CostMatrix) tourCost(t Tour) float64 {
	var (
		sum float64
		k   int
		n   = len(t)
	)
	for k = 0; k < n-1; k++ {
		sum += c.w[t[k]*c.n+t[k+1]]
	}
	sum += c.w[t[n-1]*c.n+t[0]]

	return stabilize(sum)
}

// TotalCost returns Σ cost(t[k], t[k+1]) for k in 0..n-2 plus the closing edge
// cost(t[n-1], t[0]).
//
// Errors: ErrDimensionMismatch when t is not a permutation of 0..n-1.
//
// Complexity: O(n).
func TotalCost(c *CostMatrix, t Tour) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("%w: nil cost matrix", ErrInvalidMatrix)
	}
	if err := ValidatePermutation(t, c.n); err != nil {
		return 0, err
	}

	return c.tourCost(t), nil
}

// Fitness returns 1 / TotalCost(c, t); higher is better.
//
// Errors: those of TotalCost, ErrZeroTourCost when the cycle costs nothing and
// ErrCostOverflow when its sum is not finite; both are ErrDegenerateInput, so
// no infinite or zero score is ever produced.
func Fitness(c *CostMatrix, t Tour) (float64, error) {
	cost, err := TotalCost(c, t)
	if err != nil {
		return 0, err
	}
	if err = checkCost(t, cost); err != nil {
		return 0, err
	}

	return 1 / cost, nil
}

// checkCost rejects cycle costs that cannot be ranked by 1/cost.
func checkCost(t Tour, cost float64) error {
	switch {
	case cost == 0:
		return fmt.Errorf("%w: tour %v", ErrZeroTourCost, t)
	case math.IsInf(cost, 0) || math.IsNaN(cost):
		return fmt.Errorf("%w: tour %v", ErrCostOverflow, t)
	}

	return nil
}

// stabilize rounds x to costDigits significant digits. Zero, non-finite values
// and magnitudes whose decimal scale is not representable pass through.
func stabilize(x float64) float64 {
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	exp := math.Ceil(math.Log10(math.Abs(x)))
	scale := math.Pow(10, costDigits-exp)
	if scale == 0 || math.IsInf(scale, 0) {
		return x
	}
	r := math.Round(x*scale) / scale
	if r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return x
	}

	return r
}
