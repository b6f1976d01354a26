package tile

import (
	"fmt"

	"github.com/katalvlaran/wang/geom"
)

// nullIndex is the index carried by the null sentinel.
const nullIndex = -1

// Tile is a blob Wang tile. The zero value is a mutable tile with an empty
// mask, which is how maze cells start out.
type Tile struct {
	index    int
	readOnly bool
}

// Null returns the immutable sentinel used for cells that hold no tile, such
// as out-of-bounds reads. It reports every direction flag as false.
func Null() Tile {
	return Tile{index: nullIndex, readOnly: true}
}

// New returns a mutable tile with the given mask.
func New(m Mask) Tile {
	return Tile{index: int(m)}
}

// readOnlyTile returns a catalog tile.
func readOnlyTile(m Mask) Tile {
	return Tile{index: int(m), readOnly: true}
}

// Index returns the mask as an int, or -1 for the null tile.
func (t Tile) Index() int { return t.index }

// Mask returns the mask of t; the null tile has an empty mask.
func (t Tile) Mask() Mask {
	if t.IsNull() {
		return 0
	}
	return Mask(t.index)
}

// IsNull reports whether t is the null sentinel.
func (t Tile) IsNull() bool { return t.index == nullIndex }

// ReadOnly reports whether t rejects mutation (catalog tiles and Null).
func (t Tile) ReadOnly() bool { return t.readOnly }

// Mutable returns a mutable copy of t. Null turns into an empty mask.
func (t Tile) Mutable() Tile {
	return New(t.Mask())
}

// Has reports whether the flag for d is set. Always false for Null.
func (t Tile) Has(d geom.Direction) bool {
	if t.IsNull() {
		return false
	}
	return Mask(t.index).Has(d)
}

// North reports the North flag. The seven accessors below follow suit.
func (t Tile) North() bool { return t.Has(geom.North) }
func (t Tile) NorthEast() bool { return t.Has(geom.NorthEast) }
func (t Tile) East() bool { return t.Has(geom.East) }
func (t Tile) SouthEast() bool { return t.Has(geom.SouthEast) }
func (t Tile) South() bool { return t.Has(geom.South) }
func (t Tile) SouthWest() bool { return t.Has(geom.SouthWest) }
func (t Tile) West() bool { return t.Has(geom.West) }
func (t Tile) NorthWest() bool { return t.Has(geom.NorthWest) }

// Set sets (on) or clears (!on) exactly the bit for d.
// Returns ErrImmutableTile for null or read-only tiles and
// ErrInvalidDirection if d is not a single direction bit.
func (t *Tile) Set(d geom.Direction, on bool) error {
	if t.IsNull() || t.readOnly {
		return fmt.Errorf("%w: %s", ErrImmutableTile, t)
	}
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}
	t.index = int(Mask(t.index).With(d, on))
	return nil
}

// Root returns the canonical root mask of t and the number of clockwise
// quarter turns that map the root onto t's mask, using the default catalog.
func (t Tile) Root() (root Mask, rotation int, err error) {
	if t.IsNull() {
		return 0, 0, fmt.Errorf("%w: null tile", ErrUnknownMask)
	}
	return DefaultCatalog().Lookup(Mask(t.index))
}

// RootIndex returns the root mask as an int; see Root.
func (t Tile) RootIndex() (int, error) {
	root, _, err := t.Root()
	if err != nil {
		return 0, err
	}
	return int(root), nil
}

// Rotation returns the rotation count in 0..3; see Root.
func (t Tile) Rotation() (int, error) {
	_, rot, err := t.Root()
	return rot, err
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return fmt.Sprintf("Index: %d IsNull: %t ReadOnly: %t", t.index, t.IsNull(), t.readOnly)
}
