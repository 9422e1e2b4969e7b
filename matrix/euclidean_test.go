// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEuclidean_SymmetricZeroDiagonal(t *testing.T) {
	t.Parallel()

	pts := []matrix.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 0}}
	m, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(m, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(m, 0))

	d01, _ := m.At(0, 1)
	d02, _ := m.At(0, 2)
	assert.Equal(t, 5.0, d01)
	assert.Equal(t, 6.0, d02)
}

func TestNewEuclidean_Rejects(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewEuclidean(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewEuclidean([]matrix.Point{{X: math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}
