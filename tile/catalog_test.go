package tile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/tile"
)

func TestCatalog_Shape(t *testing.T) {
	c := tile.NewCatalog()
	assert.Equal(t, 47, c.Len())
	assert.Len(t, c.Groups(), 15)
	assert.Same(t, tile.DefaultCatalog(), tile.DefaultCatalog())

	seen := map[int]bool{}
	for _, tl := range c.Tiles() {
		assert.True(t, tl.ReadOnly())
		assert.False(t, seen[tl.Index()], "duplicate mask %d", tl.Index())
		seen[tl.Index()] = true
	}
}

// TestCatalog_IsTheBlobClosure checks the hand-written table against the
// rule it encodes: the catalog is exactly the set of legal blob masks.
func TestCatalog_IsTheBlobClosure(t *testing.T) {
	c := tile.DefaultCatalog()
	count := 0
	for m := 0; m < 256; m++ {
		mask := tile.Mask(m)
		assert.Equal(t, mask.Blob(), c.Contains(mask), "mask %d", m)
		if mask.Blob() {
			count++
		}
	}
	assert.Equal(t, c.Len(), count)
}

func TestCatalog_RootsAndRotations(t *testing.T) {
	c := tile.DefaultCatalog()
	for _, g := range c.Groups() {
		require.NotEmpty(t, g.Variants)
		assert.Equal(t, g.Root, g.Variants[0])
		for i, v := range g.Variants {
			assert.Equal(t, v, g.Root.Rotate(i), "variant %d of root %d", i, g.Root)
			root, rot, err := c.Lookup(v)
			require.NoError(t, err)
			assert.Equal(t, g.Root, root)
			assert.Equal(t, i, rot)
			assert.LessOrEqual(t, int(root), int(v), "root is the smallest rotation")
		}
	}
}

func TestCatalog_LookupUnknown(t *testing.T) {
	c := tile.DefaultCatalog()
	_, _, err := c.Lookup(3)
	assert.ErrorIs(t, err, tile.ErrUnknownMask)
	_, err = c.Tile(3)
	assert.ErrorIs(t, err, tile.ErrUnknownMask)
	assert.Panics(t, func() { c.MustLookup(3) })
	assert.NotPanics(t, func() { c.MustLookup(255) })
}

func TestMatches(t *testing.T) {
	full, _ := tile.DefaultCatalog().Tile(255)
	empty, _ := tile.DefaultCatalog().Tile(0)
	westOnly := tile.New(tile.Mask(geom.West))

	assert.True(t, tile.Matches(tile.Null(), full, geom.North), "null neighbor never constrains")
	assert.True(t, tile.Matches(full, full, geom.East))
	assert.False(t, tile.Matches(full, empty, geom.East))
	assert.True(t, tile.Matches(empty, empty, geom.South))

	// A west-open candidate needs an east-open West neighbor.
	eastOnly := tile.New(tile.Mask(geom.East))
	assert.True(t, tile.Matches(eastOnly, westOnly, geom.West))
	assert.False(t, tile.Matches(westOnly, westOnly, geom.West))
	assert.False(t, tile.Matches(empty, westOnly, geom.West))
}

func TestPossibleMatches(t *testing.T) {
	c := tile.DefaultCatalog()
	n := tile.Null()

	t.Run("SingleCell", func(t *testing.T) {
		got := c.PossibleMatches(n, n, n, n, geom.Coordinate{}, geom.Size{Width: 1, Height: 1})
		require.Len(t, got, 1)
		assert.Equal(t, 0, got[0].Index())
	})

	t.Run("Unconstrained", func(t *testing.T) {
		got := c.PossibleMatches(n, n, n, n, geom.Coordinate{X: 1, Y: 1}, geom.Size{Width: 3, Height: 3})
		assert.Equal(t, c.Tiles(), got, "interior cell with no neighbors accepts the whole catalog in order")
	})

	t.Run("TopLeftCorner", func(t *testing.T) {
		got := c.PossibleMatches(n, n, n, n, geom.Coordinate{}, geom.Size{Width: 5, Height: 5})
		require.NotEmpty(t, got)
		for _, tl := range got {
			assert.False(t, tl.NorthWest() || tl.North() || tl.NorthEast() || tl.West() || tl.SouthWest())
		}
		// Remaining freedom: East, SouthEast, South.
		assert.Len(t, got, 5)
	})

	t.Run("FullWestNeighbor", func(t *testing.T) {
		full, _ := c.Tile(255)
		got := c.PossibleMatches(n, n, n, full, geom.Coordinate{X: 1, Y: 1}, geom.Size{Width: 3, Height: 3})
		require.NotEmpty(t, got)
		for _, tl := range got {
			assert.True(t, tl.NorthWest() && tl.West() && tl.SouthWest(), "mask %d", tl.Index())
		}
	})

	t.Run("Contradiction", func(t *testing.T) {
		// The West neighbor demands a NorthWest corner, the North neighbor forbids it.
		full, _ := c.Tile(255)
		empty, _ := c.Tile(0)
		got := c.PossibleMatches(empty, n, n, full, geom.Coordinate{X: 1, Y: 1}, geom.Size{Width: 3, Height: 3})
		assert.Empty(t, got)
	})
}
