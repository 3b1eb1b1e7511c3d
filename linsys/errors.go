package linsys

import "errors"

var (
	// ErrSingularMatrix is returned when elimination finds no usable pivot
	// in some column, which happens when points share an x coordinate or
	// the system is otherwise rank deficient.
	ErrSingularMatrix = errors.New("linsys: singular matrix")

	// ErrMismatchedLengths is returned when the coordinate slices differ in length.
	ErrMismatchedLengths = errors.New("linsys: mismatched coordinate slice lengths")

	// ErrEmptySystem is returned when no points are provided.
	ErrEmptySystem = errors.New("linsys: empty system")
)
