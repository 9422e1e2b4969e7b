// Package tsp - truncation selection.
//
// Select ranks a population by fitness 1/cost and keeps the better half as
// breeding stock. This guarantees breeding stock at or above the median, at
// the price of less diversity than roulette or tournament schemes.
package tsp

import "sort"

// Select returns the top floor(len(pop)/2) tours by descending fitness.
// Ties keep their population order (stable sort), so a run is reproducible.
// The returned tours alias pop; callers must not mutate them.
//
// Errors: those of Fitness (ErrDimensionMismatch, ErrZeroTourCost,
// ErrCostOverflow).
//
// Complexity: O(P·n + P log P) for P = len(pop).
func Select(pop Population, c *CostMatrix) ([]Tour, error) {
	costs := make([]float64, len(pop))

	var (
		i   int
		err error
	)
	for i = range pop {
		if costs[i], err = TotalCost(c, pop[i]); err != nil {
			return nil, err
		}
		if err = checkCost(pop[i], costs[i]); err != nil {
			return nil, err
		}
	}

	return truncate(pop, costs), nil
}

// truncate ranks pop by fitness computed from precomputed, positive costs and
// returns the better half.
func truncate(pop Population, costs []float64) []Tour {
	var (
		p       = len(pop)
		order   = make([]int, p)
		fitness = make([]float64, p)
		i       int
	)
	for i = 0; i < p; i++ {
		order[i] = i
		fitness[i] = 1 / costs[i]
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fitness[order[a]] > fitness[order[b]]
	})

	parents := make([]Tour, p/2)
	for i = range parents {
		parents[i] = pop[order[i]]
	}

	return parents
}
