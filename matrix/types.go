// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and builders.
// Errors live in errors.go, validators in validators.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Users can implement this interface to provide custom storage layouts;
// consumers in this module (tsp.NewCostMatrix) copy the values once and never
// call Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the receiver.
	Clone() Matrix
}

// Point is a location in the Euclidean plane, used by NewEuclidean.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
