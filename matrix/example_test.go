// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gatsp/matrix"
)

// ExampleNewEuclidean builds a distance matrix for a 3-4-5 triangle.
func ExampleNewEuclidean() {
	m, err := matrix.NewEuclidean([]matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 4}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// [0, 3, 5]
	// [3, 0, 4]
	// [5, 4, 0]
}
