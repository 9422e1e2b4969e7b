package source

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/gatsp/matrix"
)

// Instance is the on-disk form of a problem. Exactly one of Matrix or Points
// is set:
//
//	matrix:
//	- [0, 3, 4]
//	- [3, 0, 5]
//	- [4, 5, 0]
//
// or
//
//	points: [[0, 0], [3, 0], [3, 4]]
type Instance struct {
	Matrix [][]float64 `json:"matrix,omitempty"`
	Points [][]float64 `json:"points,omitempty"`
}

// Parse decodes YAML or JSON (JSON is a subset of YAML) into an Instance.
func Parse(data []byte) (*Instance, error) {
	var in Instance
	if err := yaml.UnmarshalStrict(data, &in); err != nil {
		return nil, fmt.Errorf("source: decode instance: %w", err)
	}
	switch {
	case len(in.Matrix) == 0 && len(in.Points) == 0:
		return nil, ErrNoData
	case len(in.Matrix) > 0 && len(in.Points) > 0:
		return nil, ErrAmbiguous
	}

	return &in, nil
}

// Build turns the instance into a distance matrix. For point instances the
// points are returned too; they are nil for literal matrices.
func (in *Instance) Build() (*matrix.Dense, []matrix.Point, error) {
	if len(in.Matrix) > 0 {
		m, err := matrix.NewDenseFrom(in.Matrix)
		return m, nil, err
	}

	points, err := ToPoints(in.Points)
	if err != nil {
		return nil, nil, err
	}
	m, err := matrix.NewEuclidean(points)
	if err != nil {
		return nil, nil, err
	}

	return m, points, nil
}

// ToPoints converts [[x, y], ...] pairs into points.
func ToPoints(pairs [][]float64) ([]matrix.Point, error) {
	points := make([]matrix.Point, len(pairs))
	for i, xy := range pairs {
		if len(xy) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", ErrBadPoint, i, len(xy))
		}
		points[i] = matrix.Point{X: xy[0], Y: xy[1]}
	}

	return points, nil
}

// LoadFile reads and builds an instance file.
func LoadFile(path string) (*matrix.Dense, []matrix.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	in, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return in.Build()
}
