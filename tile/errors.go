package tile

import "errors"

// Sentinel errors for tile operations.
var (
	// ErrImmutableTile indicates an attempt to modify a null or read-only tile.
	ErrImmutableTile = errors.New("tile: attempt to modify a null or read-only tile")

	// ErrUnknownMask indicates a mask that is not one of the catalog masks.
	ErrUnknownMask = errors.New("tile: mask is not in the catalog")

	// ErrInvalidDirection indicates a direction value that is not a single bit.
	ErrInvalidDirection = errors.New("tile: invalid direction")
)
