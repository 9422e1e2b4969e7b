// SPDX-License-Identifier: MIT

// Package matrix provides the small dense-matrix layer the solvers consume.
//
// What & Why:
//
//	Matrix is a uniform abstraction over two-dimensional float64 tables.
//	Dense stores values row-major in one flat slice; NewDenseFrom ingests
//	[][]float64 literals and NewEuclidean derives a distance matrix from
//	coordinates. Validators centralize the shape, sign, diagonal and
//	symmetry checks distance consumers need.
//
// Errors:
//
//	All failures are sentinels from errors.go (optionally tagged with the
//	failing function via %w); match them with errors.Is.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Clone and validators are O(n²).
package matrix
