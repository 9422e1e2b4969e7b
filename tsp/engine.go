// Package tsp - genetic engine.
//
// Engine drives Population → Select → (Crossover, Mutate) → next Population
// for a fixed number of generations and tracks the best tour seen.
//
// Lifecycle: StateInitialized → StateRunning → StateCompleted (or StateFailed).
// An Engine runs once.
//
// Determinism:
//   - All randomness flows from Options.Seed: the initial population uses the
//     base stream, each worker owns one stream derived from it at construction.
//   - Best-tracking scans costs sequentially in population order, so ties and
//     results are identical for a fixed (Seed, Workers) pair.
//
// Concurrency:
//   - With Workers > 1 the next population is split into contiguous chunks;
//     each worker reads the shared parents and writes only its chunk.
//   - Evaluation of the new population is chunked the same way.
package tsp

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/gatsp/matrix"
)

// Engine is a single-use genetic search over one CostMatrix.
type Engine struct {
	cm   *CostMatrix
	opts Options

	state   State
	base    *rand.Rand   // initial population
	streams []*rand.Rand // one per worker

	budget int // crossover attempts per generation

	generation int
	best       Tour
	bestCost   float64
	history    []float64
}

// NewEngine validates opts against cm and prepares an engine. Nothing random
// happens until Run.
//
// Errors: ErrConfiguration (parameters), ErrZeroEdge (StrictEdges).
func NewEngine(cm *CostMatrix, opts Options) (*Engine, error) {
	if cm == nil {
		return nil, fmt.Errorf("%w: nil cost matrix", ErrInvalidMatrix)
	}
	if err := validateSize(cm.n); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if opts.StrictEdges {
		if i, j, ok := cm.zeroEdge(); ok {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrZeroEdge, i, j)
		}
	}

	var workers = opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > opts.PopulationSize {
		workers = opts.PopulationSize
	}
	opts.Workers = workers

	e := &Engine{
		cm:       cm,
		opts:     opts,
		state:    StateInitialized,
		base:     NewRand(opts.Seed),
		streams:  make([]*rand.Rand, workers),
		budget:   attemptBudget(opts),
		bestCost: noBest,
		history:  make([]float64, 0, opts.MaxGenerations),
	}
	var w int
	for w = 0; w < workers; w++ {
		e.streams[w] = deriveRNG(e.base, uint64(w))
	}

	return e, nil
}

// attemptBudget returns the crossover attempt bound for one generation.
func attemptBudget(opts Options) int {
	if opts.MaxAttemptsPerGeneration > 0 {
		return opts.MaxAttemptsPerGeneration
	}
	expected := float64(opts.PopulationSize) / opts.CrossoverRate
	budget := math.Ceil(expected * defaultAttemptFactor)
	if budget > math.MaxInt32 {
		return math.MaxInt32
	}

	return int(budget)
}

// State reports the lifecycle state.
func (e *Engine) State() State { return e.state }

// SolveGenetic validates dist, builds an engine and runs it.
func SolveGenetic(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	cm, err := NewCostMatrix(dist)
	if err != nil {
		return Result{}, err
	}
	e, err := NewEngine(cm, opts)
	if err != nil {
		return Result{}, err
	}

	return e.Run(ctx)
}

// Run executes MaxGenerations generations and returns the best tour found.
//
// ctx is checked between generations; on cancellation Run returns the result
// accumulated so far together with ctx.Err(). Progress is logged through
// klog.FromContext(ctx).
//
// Errors: ErrEngineUsed, ErrZeroTourCost, ErrCostOverflow, ErrAttemptsExhausted,
// ctx.Err().
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if e.state != StateInitialized {
		return Result{}, ErrEngineUsed
	}
	e.state = StateRunning

	logger := klog.FromContext(ctx).WithValues("solver", "genetic", "locations", e.cm.n)
	logger.V(1).Info("Starting evolution",
		"populationSize", e.opts.PopulationSize,
		"generations", e.opts.MaxGenerations,
		"crossoverRate", e.opts.CrossoverRate,
		"mutationRate", e.opts.MutationRate,
		"workers", e.opts.Workers,
		"seed", e.opts.Seed)
	startTime := time.Now()

	pop, err := NewPopulation(e.cm.n, e.opts.PopulationSize, e.base)
	if err != nil {
		return e.fail(err)
	}
	costs := make([]float64, len(pop))
	if err = e.evaluate(pop, costs); err != nil {
		return e.fail(err)
	}

	next := make(Population, e.opts.PopulationSize)
	for e.generation < e.opts.MaxGenerations {
		if err = ctx.Err(); err != nil {
			e.state = StateFailed
			return e.result(), err
		}

		parents := truncate(pop, costs)

		attempts, err := e.breed(parents, next)
		if err != nil {
			return e.fail(fmt.Errorf("generation %d: %w", e.generation+1, err))
		}
		pop, next = next, pop

		if err = e.evaluate(pop, costs); err != nil {
			return e.fail(fmt.Errorf("generation %d: %w", e.generation+1, err))
		}
		stats := e.track(pop, costs)
		stats.Attempts = attempts

		if stats.Improved {
			logger.V(2).Info("Improved best tour", "generation", stats.Generation, "cost", stats.BestCost)
		}
		if e.opts.LogEvery > 0 && ((stats.Generation-1)%e.opts.LogEvery == 0 || stats.Generation == e.opts.MaxGenerations) {
			logger.V(1).Info("Generation complete",
				"generation", stats.Generation,
				"bestCost", stats.BestCost,
				"generationBest", stats.GenerationBest,
				"meanCost", stats.MeanCost,
				"attempts", stats.Attempts)
		}
		if e.opts.Observer != nil {
			e.opts.Observer.ObserveGeneration(stats)
		}
	}

	e.state = StateCompleted
	elapsed := time.Since(startTime)
	logger.V(1).Info("Evolution complete",
		"generations", e.generation,
		"bestCost", e.bestCost,
		"elapsed", elapsed,
		"perGeneration", elapsed/time.Duration(e.generation))

	return e.result(), nil
}

// fail moves the engine to StateFailed and returns the partial result.
func (e *Engine) fail(err error) (Result, error) {
	e.state = StateFailed
	return e.result(), err
}

// result snapshots the BestSolution. Before any generation completed, Tour is
// nil and Cost is 0.
func (e *Engine) result() Result {
	var res = Result{
		Generations: e.generation,
		History:     append([]float64(nil), e.history...),
	}
	if e.best != nil {
		res.Tour = e.best.Clone()
		res.Cost = e.bestCost
	}

	return res
}

// chunk returns the half-open slot range owned by worker w of W over size slots.
func chunk(w, workers, size int) (int, int) {
	return w * size / workers, (w + 1) * size / workers
}

// breed fills next with children of parents and returns the attempts spent.
func (e *Engine) breed(parents []Tour, next Population) (int, error) {
	var workers = len(e.streams)
	if workers == 1 {
		return fillChildren(next, parents, e.opts, e.streams[0], e.budget)
	}

	var (
		g        errgroup.Group
		attempts = make([]int, workers)
		size     = len(next)
	)
	for w := 0; w < workers; w++ {
		lo, hi := chunk(w, workers, size)
		budget := int(math.Ceil(float64(e.budget) * float64(hi-lo) / float64(size)))
		g.Go(func() error {
			var err error
			attempts[w], err = fillChildren(next[lo:hi], parents, e.opts, e.streams[w], budget)
			return err
		})
	}
	err := g.Wait()

	var total int
	for _, a := range attempts {
		total += a
	}

	return total, err
}

// fillChildren fills dst: each attempt draws two distinct parents and, with
// probability CrossoverRate, appends a mutated crossover child. At most budget
// attempts are made.
func fillChildren(dst []Tour, parents []Tour, opts Options, r *rand.Rand, budget int) (int, error) {
	var (
		k        = len(parents)
		n        = len(parents[0])
		filled   int
		attempts int
		i, j     int
		lo, hi   int
		child    Tour
	)
	for filled < len(dst) {
		if attempts >= budget {
			return attempts, fmt.Errorf("%w: %d of %d children after %d attempts",
				ErrAttemptsExhausted, filled, len(dst), attempts)
		}
		attempts++

		i, j = distinctPair(r, k)
		if r.Float64() >= opts.CrossoverRate {
			continue
		}
		lo, hi = sortedDistinctPair(r, n)
		child = orderCrossover(parents[i], parents[j], lo, hi)
		dst[filled] = Mutate(child, opts.MutationRate, r)
		filled++
	}

	return attempts, nil
}

// evaluate writes the cycle cost of pop[i] into costs[i]. A zero or
// non-finite cost is a degenerate input.
func (e *Engine) evaluate(pop Population, costs []float64) error {
	var workers = len(e.streams)
	if workers == 1 {
		return e.evaluateRange(pop, costs, 0, len(pop))
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := chunk(w, workers, len(pop))
		g.Go(func() error { return e.evaluateRange(pop, costs, lo, hi) })
	}

	return g.Wait()
}

func (e *Engine) evaluateRange(pop Population, costs []float64, lo, hi int) error {
	var i int
	for i = lo; i < hi; i++ {
		costs[i] = e.cm.tourCost(pop[i])
		if err := checkCost(pop[i], costs[i]); err != nil {
			return err
		}
	}

	return nil
}

// track advances the generation counter, updates the BestSolution on a
// strictly lower cost (first occurrence wins) and returns the statistics.
func (e *Engine) track(pop Population, costs []float64) GenerationStats {
	var (
		genBest = math.Inf(1)
		bestIdx = -1
		sum     float64
		i       int
	)
	for i = range costs {
		sum += costs[i]
		if costs[i] < genBest {
			genBest = costs[i]
			bestIdx = i
		}
	}

	var improved = genBest < e.bestCost
	if improved {
		e.bestCost = genBest
		e.best = pop[bestIdx].Clone()
	}
	e.generation++
	e.history = append(e.history, e.bestCost)

	return GenerationStats{
		Generation:     e.generation,
		BestCost:       e.bestCost,
		GenerationBest: genBest,
		MeanCost:       sum / float64(len(costs)),
		Improved:       improved,
	}
}
