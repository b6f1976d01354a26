package tile

import (
	"fmt"
	"sync"
)

// groupTable lists every rotation group as root followed by its rotated
// variants; variant i (1-based) is the root turned i quarter turns clockwise.
// Its flattened order is the catalog iteration order.
var groupTable = [][]Mask{
	{0},
	{1, 4, 16, 64},
	{5, 20, 80, 65},
	{7, 28, 112, 193},
	{17, 68},
	{21, 84, 81, 69},
	{23, 92, 113, 197},
	{29, 116, 209, 71},
	{31, 124, 241, 199},
	{85},
	{87, 93, 117, 213},
	{95, 125, 245, 215},
	{119, 221},
	{127, 253, 247, 223},
	{255},
}

// Group is one rotation-equivalence class of the catalog.
type Group struct {
	// Root is the canonical member.
	Root Mask
	// Variants holds Root followed by its distinct clockwise rotations.
	Variants []Mask
}

type lookupEntry struct {
	root     Mask
	rotation int8
	ok       bool
}

// Catalog is the immutable set of legal blob tiles.
type Catalog struct {
	tiles   []Tile
	groups  []Group
	reverse [256]lookupEntry
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// DefaultCatalog returns the process-wide catalog, building it on first use.
func DefaultCatalog() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

// NewCatalog builds a fresh catalog from the group table.
// Complexity: O(47).
func NewCatalog() *Catalog {
	c := &Catalog{}
	for _, row := range groupTable {
		g := Group{Root: row[0], Variants: append([]Mask(nil), row...)}
		c.groups = append(c.groups, g)
		for rot, m := range row {
			c.tiles = append(c.tiles, readOnlyTile(m))
			c.reverse[m] = lookupEntry{root: row[0], rotation: int8(rot), ok: true}
		}
	}
	return c
}

// Len returns the number of catalog tiles.
func (c *Catalog) Len() int { return len(c.tiles) }

// Tiles returns the read-only catalog tiles in iteration order.
// The returned slice is a copy.
func (c *Catalog) Tiles() []Tile {
	return append([]Tile(nil), c.tiles...)
}

// Groups returns the rotation groups in iteration order.
func (c *Catalog) Groups() []Group {
	out := make([]Group, len(c.groups))
	for i, g := range c.groups {
		out[i] = Group{Root: g.Root, Variants: append([]Mask(nil), g.Variants...)}
	}
	return out
}

// Contains reports whether m is a catalog mask.
func (c *Catalog) Contains(m Mask) bool {
	return c.reverse[m].ok
}

// Tile returns the read-only catalog tile for m.
func (c *Catalog) Tile(m Mask) (Tile, error) {
	if !c.Contains(m) {
		return Null(), fmt.Errorf("%w: %d", ErrUnknownMask, m)
	}
	return readOnlyTile(m), nil
}

// Lookup maps m to its canonical root and rotation count (0..3).
// Returns ErrUnknownMask if m is not in the catalog.
func (c *Catalog) Lookup(m Mask) (root Mask, rotation int, err error) {
	e := c.reverse[m]
	if !e.ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownMask, m)
	}
	return e.root, int(e.rotation), nil
}

// MustLookup is Lookup for call sites where an unknown mask is a programming
// error. It panics instead of returning ErrUnknownMask.
func (c *Catalog) MustLookup(m Mask) (root Mask, rotation int) {
	root, rotation, err := c.Lookup(m)
	if err != nil {
		panic(err)
	}
	return root, rotation
}
