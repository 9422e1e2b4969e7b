// Package source builds distance matrices for the solver from the outside
// world: coordinate CSV files, YAML/JSON instance files and seeded random
// graphs.
//
// Every constructor returns a matrix.Matrix ready for tsp.NewCostMatrix;
// structural validation (symmetry, diagonal, N ≥ 3) stays in package tsp.
package source
