package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

// ExampleSolveGenetic runs the default genetic search on four locations.
func ExampleSolveGenetic() {
	m, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 2, 3},
		{1, 0, 4, 5},
		{2, 4, 0, 6},
		{3, 5, 6, 0},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	opts := tsp.DefaultOptions()
	opts.Seed = 7
	opts.LogEvery = 0
	res, err := tsp.SolveGenetic(context.Background(), m, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("generations:", res.Generations)
	// Output:
	// cost: 14
	// generations: 500
}

// ExampleCrossoverAt keeps a[1:3] and fills the rest in b's order.
func ExampleCrossoverAt() {
	child, err := tsp.CrossoverAt(tsp.Tour{0, 1, 2, 3, 4}, tsp.Tour{4, 3, 2, 1, 0}, 1, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(child)
	// Output:
	// [0 1 2 4 3 | 0]
}

// ExampleTSPExact solves a 3-4-5 right triangle.
func ExampleTSPExact() {
	m, _ := matrix.NewEuclidean([]matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}})
	cm, err := tsp.NewCostMatrix(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	tour, cost, _ := tsp.TSPExact(cm)
	fmt.Println(tour, cost)
	// Output:
	// [0 2 1 | 0] 12
}
