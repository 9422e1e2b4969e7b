// Package gatsp solves the symmetric Travelling Salesman Problem with a
// genetic algorithm.
//
// Layout:
//
//	matrix/   Matrix interface, Dense storage, validators, Euclidean builder
//	tsp/      cost matrix, tours, selection, order crossover, swap mutation,
//	          the generational engine, 2-opt and Held–Karp
//	source/   instances from CSV coordinates, YAML/JSON files, random graphs
//	config/   run configuration files with defaults and validation
//	metrics/  Prometheus observer for engine progress
//	plot/     HTML convergence and tour charts
//	handler/  AWS Lambda Function URL front end
//	cmd/      the gatsp CLI and the Lambda entry point
//
// Quick start:
//
//	m, _ := matrix.NewEuclidean(points)
//	opts := tsp.DefaultOptions()
//	opts.Seed = 42
//	res, err := tsp.SolveGenetic(ctx, m, opts)
//
// Install the CLI:
//
//	go install github.com/katalvlaran/gatsp/cmd/gatsp@latest
package gatsp
