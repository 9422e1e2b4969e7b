// Package tsp solves the symmetric Travelling Salesman Problem with a genetic
// algorithm.
//
// Building blocks:
//
//   - CostMatrix: validated, immutable n×n symmetric travel costs (n ≥ 3).
//   - Tour: an open permutation of 0..n-1; the closing edge is implicit.
//   - Fitness: 1 / TotalCost. A zero-cost tour is ErrZeroTourCost.
//   - Population: PopulationSize random permutations.
//   - Select: truncation, keeps the top floor(P/2) tours, ties stable.
//   - Crossover / CrossoverAt: order crossover.
//   - Mutate: a single swap with probability MutationRate.
//   - Engine: runs MaxGenerations generations and tracks the best tour.
//
// Two deterministic helpers complement the genetic search:
//
//   - TwoOpt: first-improvement local search to polish a result.
//   - TSPExact: Held–Karp optimum for n ≤ MaxExactSize.
//
// Randomness. Every random decision flows from Options.Seed through
// golang.org/x/exp/rand; the same (Seed, Workers) pair reproduces a run.
//
// Errors. All errors match one root sentinel via errors.Is: ErrConfiguration,
// ErrDegenerateInput, ErrInvalidMatrix, ErrDimensionMismatch,
// ErrAttemptsExhausted, ErrEngineUsed or ErrTooLarge; Run additionally
// returns context errors.
//
// Logging. Engine.Run logs through klog.FromContext: V(1) for progress,
// V(2) for each improvement of the best tour.
//
// Quick start:
//
//	m, _ := matrix.NewDenseFrom(dist)
//	opts := tsp.DefaultOptions()
//	opts.Seed = 42
//	res, err := tsp.SolveGenetic(ctx, m, opts)
//	if err != nil {
//		// handle
//	}
//	fmt.Println(res.Tour, res.Cost)
package tsp
