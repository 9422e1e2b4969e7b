// SPDX-License-Identifier: MIT

package matrix

import "math"

// NewEuclidean builds the symmetric n×n matrix of straight-line distances
// between points, with an exact zero diagonal. Each pair is computed once
// and mirrored, so the result is symmetric bit-for-bit.
//
// Returns ErrInvalidDimensions for an empty input and ErrNaNInf when a
// coordinate is not finite.
// Complexity: O(n²) time and memory.
func NewEuclidean(points []Point) (*Dense, error) {
	var n = len(points)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return nil, validatorErrorf("NewEuclidean", ErrNaNInf)
		}
	}

	d := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var dist float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			d.data[i*n+j] = dist
			d.data[j*n+i] = dist
		}
	}

	return d, nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
