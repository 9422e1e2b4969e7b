// Package tsp - validation utilities for options and distance matrices.
//
// This file contains small, side-effect free helpers that:
//  1. Validate Options (population, rates, generation budget, workers).
//  2. Validate distance matrices (shape, diagonal, negativity, NaN, ∞, symmetry)
//     and translate matrix sentinels into tsp sentinels.
//
// No logging, no panics on user input - only sentinel errors from types.go,
// wrapped with the offending value for context.
package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gatsp/matrix"
)

// symTol is the structural tolerance for symmetry/diagonal checks.
const symTol = 1e-12

// configErrorf wraps ErrConfiguration with a formatted reason.
func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfiguration}, args...)...)
}

// validateOptions checks run parameters. The first violation wins.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.PopulationSize < MinPopulationSize {
		return configErrorf("population size %d < %d (breeding pool needs two distinct parents)",
			opts.PopulationSize, MinPopulationSize)
	}
	if !inUnitInterval(opts.CrossoverRate) {
		return configErrorf("crossover rate %v outside [0, 1]", opts.CrossoverRate)
	}
	// A zero rate never appends a child; the generation could not be filled.
	if opts.CrossoverRate == 0 {
		return configErrorf("crossover rate is 0, no child can ever be produced")
	}
	if !inUnitInterval(opts.MutationRate) {
		return configErrorf("mutation rate %v outside [0, 1]", opts.MutationRate)
	}
	if opts.MaxGenerations <= 0 {
		return configErrorf("max generations %d must be > 0", opts.MaxGenerations)
	}
	if opts.Workers < 0 {
		return configErrorf("workers %d must be ≥ 0", opts.Workers)
	}
	if opts.LogEvery < 0 {
		return configErrorf("log interval %d must be ≥ 0", opts.LogEvery)
	}
	if opts.MaxAttemptsPerGeneration < 0 {
		return configErrorf("attempt budget %d must be ≥ 0", opts.MaxAttemptsPerGeneration)
	}

	return nil
}

func inUnitInterval(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

// validateSize enforces the N ≥ 3 instance invariant.
func validateSize(n int) error {
	if n < MinLocations {
		return configErrorf("%d locations < %d (a cycle needs at least three)", n, MinLocations)
	}

	return nil
}

// validateDistMatrix performs full matrix validation and returns n:
//   - non-nil, square, n ≥ 3,
//   - no NaN, no negative entries,
//   - diagonal ≈ 0 (|a_ii| ≤ symTol),
//   - |a_ij − a_ji| ≤ symTol,
//   - no +Inf off-diagonal (missing edge ⇒ ErrIncompleteGraph).
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, fmt.Errorf("%w: nil matrix", ErrInvalidMatrix)
		}
		if errors.Is(err, matrix.ErrInvalidDimensions) {
			return 0, validateSize(0)
		}
		return 0, fmt.Errorf("%w (%d×%d)", ErrNonSquare, safeRows(dist), safeCols(dist))
	}
	var n = dist.Rows()
	if err := validateSize(n); err != nil {
		return 0, err
	}
	if err := matrix.ValidateNonNegative(dist); err != nil {
		return 0, translateMatrixErr(err)
	}
	if err := matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return 0, translateMatrixErr(err)
	}
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return 0, translateMatrixErr(err)
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w, _ = dist.At(i, j) // in range after ValidateSquare
			if math.IsInf(w, 1) {
				return 0, fmt.Errorf("%w: no edge %d-%d", ErrIncompleteGraph, i, j)
			}
		}
	}

	return n, nil
}

// translateMatrixErr maps matrix validator sentinels onto tsp sentinels.
func translateMatrixErr(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNegative):
		return ErrNegativeWeight
	case errors.Is(err, matrix.ErrNonZeroDiagonal):
		return ErrNonZeroDiagonal
	case errors.Is(err, matrix.ErrAsymmetry):
		return ErrAsymmetry
	case errors.Is(err, matrix.ErrNaNInf):
		return ErrNaNWeight
	default:
		return fmt.Errorf("%w: %v", ErrInvalidMatrix, err)
	}
}

func safeRows(m matrix.Matrix) int {
	if m == nil {
		return 0
	}
	return m.Rows()
}

func safeCols(m matrix.Matrix) int {
	if m == nil {
		return 0
	}
	return m.Cols()
}
