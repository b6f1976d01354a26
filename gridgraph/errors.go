package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the source has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrCellIndex indicates a cell index outside the grid or a null cell.
	ErrCellIndex = errors.New("gridgraph: cell index out of range or null")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)
