// Package tsp - shared types, sentinels and options of the genetic solver.
package tsp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel roots. Every error returned by this package matches exactly one of
// them (or a context error from Run) via errors.Is.
var (
	// ErrConfiguration reports engine parameters that can never yield a run:
	// PopulationSize < 4, N < 3, rates outside their range, MaxGenerations ≤ 0.
	// It is surfaced before any generation executes and is not retryable.
	ErrConfiguration = errors.New("tsp: invalid configuration")

	// ErrDegenerateInput reports a distance matrix that makes some tour cost
	// zero or undefined (missing edges, zero-cost cycles), so fitness 1/cost
	// would be infinite or NaN.
	ErrDegenerateInput = errors.New("tsp: degenerate input")

	// ErrInvalidMatrix reports a distance matrix that violates the shape or
	// value contract (square, symmetric, zero diagonal, non-negative, no NaN).
	ErrInvalidMatrix = errors.New("tsp: invalid distance matrix")

	// ErrDimensionMismatch reports a tour or cut whose length/indices do not
	// fit the instance (not a permutation of 0..n-1, cut outside [0,n]).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrAttemptsExhausted reports that a generation could not be filled
	// within Options.MaxAttemptsPerGeneration crossover attempts.
	ErrAttemptsExhausted = errors.New("tsp: crossover attempts exhausted")

	// ErrEngineUsed is returned by Engine.Run on an engine that already ran.
	ErrEngineUsed = errors.New("tsp: engine already used")

	// ErrTooLarge is returned by TSPExact when n exceeds MaxExactSize.
	ErrTooLarge = errors.New("tsp: instance too large for exact solver")
)

// Refinements of the roots above; callers may match either level.
var (
	ErrNonSquare       = fmt.Errorf("%w: not square", ErrInvalidMatrix)
	ErrAsymmetry       = fmt.Errorf("%w: not symmetric", ErrInvalidMatrix)
	ErrNonZeroDiagonal = fmt.Errorf("%w: non-zero diagonal", ErrInvalidMatrix)
	ErrNegativeWeight  = fmt.Errorf("%w: negative weight", ErrInvalidMatrix)
	ErrNaNWeight       = fmt.Errorf("%w: NaN or non-finite weight", ErrInvalidMatrix)

	// ErrIncompleteGraph marks a missing edge (+Inf), so no Hamiltonian cycle
	// through it can be evaluated.
	ErrIncompleteGraph = fmt.Errorf("%w: incomplete distance matrix", ErrDegenerateInput)

	// ErrZeroEdge marks a zero off-diagonal cost rejected under StrictEdges.
	ErrZeroEdge = fmt.Errorf("%w: zero-cost edge", ErrDegenerateInput)

	// ErrZeroTourCost marks a tour whose total cost is zero.
	ErrZeroTourCost = fmt.Errorf("%w: tour has zero total cost", ErrDegenerateInput)

	// ErrCostOverflow marks a tour whose summed cost is not a finite float64.
	ErrCostOverflow = fmt.Errorf("%w: tour cost overflows", ErrDegenerateInput)
)

// Defaults mirror the classic parameterization of the solver.
const (
	DefaultPopulationSize = 100
	DefaultCrossoverRate  = 0.8
	DefaultMutationRate   = 0.1
	DefaultMaxGenerations = 500
	DefaultLogEvery       = 100

	// MinPopulationSize is the smallest population whose breeding pool
	// (floor(size/2)) still holds two distinct parents.
	MinPopulationSize = 4

	// MinLocations is the smallest instance that forms a meaningful cycle.
	MinLocations = 3

	// defaultAttemptFactor scales the automatic attempt budget: a generation
	// may spend defaultAttemptFactor times its expected attempt count.
	defaultAttemptFactor = 64
)

// Options configures one genetic run. All fields are fixed for the run; pass
// a fresh value per engine, there is no process-wide state.
type Options struct {
	// PopulationSize is the number of tours per generation (≥ 4).
	PopulationSize int

	// CrossoverRate is the probability that a parent draw yields a child, in (0, 1].
	CrossoverRate float64

	// MutationRate is the probability of a single swap per child, in [0, 1].
	MutationRate float64

	// MaxGenerations is the number of generations to execute (> 0).
	MaxGenerations int

	// Seed drives every random decision. 0 selects a fixed default seed.
	Seed int64

	// Workers > 1 parallelizes breeding and evaluation. 0 means 1.
	// Results are deterministic for a fixed (Seed, Workers) pair.
	Workers int

	// LogEvery emits a V(1) progress line every LogEvery generations; 0 disables.
	LogEvery int

	// MaxAttemptsPerGeneration bounds crossover attempts per generation.
	// 0 derives a budget from PopulationSize and CrossoverRate.
	MaxAttemptsPerGeneration int

	// StrictEdges rejects zero off-diagonal costs up front (a zero is read as
	// a missing connection) instead of waiting for a zero-cost tour.
	StrictEdges bool

	// Observer, when non-nil, receives statistics after each generation.
	Observer Observer
}

// DefaultOptions returns the classic parameterization: 100 tours, crossover
// 0.8, mutation 0.1, 500 generations, sequential, progress every 100.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
		MaxGenerations: DefaultMaxGenerations,
		Workers:        1,
		LogEvery:       DefaultLogEvery,
	}
}

// GenerationStats summarizes one completed generation.
type GenerationStats struct {
	Generation     int     // 1-based index of the generation just completed
	BestCost       float64 // best cost seen in the run so far
	GenerationBest float64 // best cost within this generation
	MeanCost       float64 // mean cost of this generation
	Attempts       int     // crossover attempts spent filling this generation
	Improved       bool    // BestCost dropped in this generation
}

// Observer receives per-generation statistics. It is called synchronously
// from Run, after the generation completes, never concurrently.
type Observer interface {
	ObserveGeneration(GenerationStats)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(GenerationStats)

// ObserveGeneration calls f(s).
func (f ObserverFunc) ObserveGeneration(s GenerationStats) { f(s) }

// State is the lifecycle position of an Engine.
type State int

const (
	StateInitialized State = iota
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of a genetic run.
type Result struct {
	// Tour is the best tour found: an open permutation of 0..n-1; the closing
	// edge Tour[n-1]→Tour[0] is implicit.
	Tour Tour

	// Cost is the total cycle cost of Tour.
	Cost float64

	// Generations is the number of generations executed.
	Generations int

	// History[g] is the best cost after generation g+1; non-increasing.
	History []float64
}

// Closed returns the tour in closed form: len == n+1, last == first.
func (r Result) Closed() []int {
	if len(r.Tour) == 0 {
		return nil
	}
	out := make([]int, len(r.Tour)+1)
	copy(out, r.Tour)
	out[len(r.Tour)] = r.Tour[0]

	return out
}

// Canonical returns a copy of the tour rotated to start at 0 with a fixed
// orientation, so equal cycles compare equal.
func (r Result) Canonical() Tour {
	return Canonical(r.Tour)
}

// noBest is the BestSolution cost before any generation completed.
var noBest = math.Inf(1)
