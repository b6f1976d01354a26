package grid

import "errors"

var (
	// ErrBadSize indicates a width or height below one.
	ErrBadSize = errors.New("grid: width and height must be positive")
	// ErrNilFactory indicates a Grid constructed without a tile factory.
	ErrNilFactory = errors.New("grid: factory is nil")
	// ErrOutOfBounds indicates a mutation addressed outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
