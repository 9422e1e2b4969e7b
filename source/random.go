package source

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/gatsp/matrix"
)

// Default weight range of generated graphs.
const (
	DefaultMinWeight = 10
	DefaultMaxWeight = 50
)

// RandomComplete returns a symmetric n×n matrix with a zero diagonal and
// integer off-diagonal weights drawn uniformly from [minW, maxW]. The same
// seed yields the same matrix.
func RandomComplete(n int, seed int64, minW, maxW int) (*matrix.Dense, error) {
	if err := checkRange(n, minW, maxW); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(uint64(seed)))

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if err = m.SetSymmetric(i, j, float64(minW+r.Intn(maxW-minW+1))); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// RandomSparse mimics a road network with gaps: every location connects to a
// random subset of the others, and a pair that was never connected keeps
// weight 0, meaning "no road". The solver reads such a 0 as a free road, so
// tours are simply cheaper through it; set tsp.Options.StrictEdges to reject
// these matrices instead.
func RandomSparse(n int, seed int64, minW, maxW int) (*matrix.Dense, error) {
	if err := checkRange(n, minW, maxW); err != nil {
		return nil, err
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(uint64(seed)))

	var (
		i, k  int
		links int
		perm  []int
	)
	for i = 0; i < n; i++ {
		links = 1 + r.Intn(n-1)
		perm = r.Perm(n)
		for k = 0; k < links; k++ {
			if perm[k] == i {
				continue
			}
			if err = m.SetSymmetric(i, perm[k], float64(minW+r.Intn(maxW-minW+1))); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

func checkRange(n, minW, maxW int) error {
	switch {
	case n < 1:
		return fmt.Errorf("%w: n=%d", ErrBadRange, n)
	case minW < 0 || maxW < minW:
		return fmt.Errorf("%w: weights [%d, %d]", ErrBadRange, minW, maxW)
	}

	return nil
}
