package source

import "errors"

var (
	// ErrNoData is returned when an input holds neither a matrix nor points.
	ErrNoData = errors.New("source: no matrix or points in input")

	// ErrAmbiguous is returned when an input holds both a matrix and points.
	ErrAmbiguous = errors.New("source: both matrix and points given")

	// ErrBadPoint reports a coordinate record that is not two finite numbers.
	ErrBadPoint = errors.New("source: invalid coordinate")

	// ErrBadRange reports an invalid random graph request.
	ErrBadRange = errors.New("source: invalid random graph parameters")
)
