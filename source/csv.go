package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gatsp/matrix"
)

// ReadCoordinatesCSV reads one "x,y" record per line. Lines starting with '#'
// are comments; surrounding spaces are ignored. A first record that does not
// parse as numbers is treated as a header.
func ReadCoordinatesCSV(r io.Reader) ([]matrix.Point, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var (
		points []matrix.Point
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadPoint, err)
		}
		line++

		p, perr := parsePoint(rec)
		if perr != nil {
			if line == 1 {
				continue // header
			}
			row, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadPoint, row, perr)
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return nil, ErrNoData
	}

	return points, nil
}

// EuclideanFromCSV reads coordinates and returns their distance matrix along
// with the points, which callers keep for plotting.
func EuclideanFromCSV(r io.Reader) (*matrix.Dense, []matrix.Point, error) {
	points, err := ReadCoordinatesCSV(r)
	if err != nil {
		return nil, nil, err
	}
	m, err := matrix.NewEuclidean(points)
	if err != nil {
		return nil, nil, err
	}

	return m, points, nil
}

func parsePoint(rec []string) (matrix.Point, error) {
	x, err := parseCoord(rec[0])
	if err != nil {
		return matrix.Point{}, err
	}
	y, err := parseCoord(rec[1])
	if err != nil {
		return matrix.Point{}, err
	}

	return matrix.Point{X: x, Y: y}, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite coordinate %q", s)
	}

	return v, nil
}
