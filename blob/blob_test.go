package blob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wang/blob"
	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/grid"
	"github.com/katalvlaran/wang/gridgraph"
	"github.com/katalvlaran/wang/tile"
)

func generate(t *testing.T, w, h int, seed int64, opts ...blob.Option) *blob.Map {
	t.Helper()
	m, err := blob.New(w, h, seed, opts...)
	require.NoError(t, err)
	require.NoError(t, m.Generate())
	return m
}

func audit(t *testing.T, m *blob.Map) (*gridgraph.GridGraph, gridgraph.Report) {
	t.Helper()
	gg, err := gridgraph.FromTiles(m, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	return gg, gg.Audit(nil)
}

func TestNew_BadSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 5}, {5, 0}, {-1, -1}} {
		m, err := blob.New(sz[0], sz[1], 1)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, grid.ErrBadSize)
	}
	assert.Panics(t, func() { blob.WithCatalog(nil) })
}

func TestGenerate_CornerExample(t *testing.T) {
	m := generate(t, 5, 5, 42)

	tl := m.TileAt(0, 0)
	assert.False(t, tl.NorthWest())
	assert.False(t, tl.North())
	assert.False(t, tl.West())

	br := m.TileAt(4, 4)
	assert.False(t, br.SouthEast())
	assert.False(t, br.South())
	assert.False(t, br.East())

	assert.True(t, m.TileAt(5, 0).IsNull())
	assert.True(t, m.TileAt(-1, 2).IsNull())
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, 1234567} {
		a, _ := audit(t, generate(t, 12, 9, seed))
		b, _ := audit(t, generate(t, 12, 9, seed))
		assert.Equal(t, a.Indices(), b.Indices(), "seed %d", seed)
	}
}

func TestGenerate_Legality(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m := generate(t, 10, 8, seed)
		_, r := audit(t, m)

		assert.Zero(t, r.BoundaryViolations, "seed %d", seed)
		assert.Zero(t, r.AdjacencyViolations, "seed %d", seed)
		assert.Zero(t, r.UnknownMasks, "seed %d: catalog closure", seed)
		assert.True(t, r.BlobLegal(), "seed %d: %+v", seed, r)
		assert.Equal(t, len(m.Unresolved()), r.Null, "seed %d", seed)
		if r.Null == 0 {
			assert.Zero(t, r.OneSidedEdges, "seed %d", seed)
		}

		for _, c := range m.Unresolved() {
			assert.True(t, m.TileAt(c.X, c.Y).IsNull(), "unresolved %s must stay null", c)
		}
		for x := 0; x < 10; x++ {
			for y := 0; y < 8; y++ {
				tl := m.TileAt(x, y)
				if !tl.IsNull() {
					assert.True(t, tl.ReadOnly(), "placed tiles are shared catalog tiles")
				}
			}
		}
	}
}

func TestGenerate_BlobLegalAcrossSizes(t *testing.T) {
	for w := 1; w <= 7; w++ {
		for h := 1; h <= 7; h++ {
			for seed := int64(0); seed < 5; seed++ {
				_, r := audit(t, generate(t, w, h, seed))
				assert.True(t, r.BlobLegal(), "%dx%d seed %d: %+v", w, h, seed, r)
			}
		}
	}
}

func TestGenerate_Degenerate(t *testing.T) {
	m := generate(t, 1, 1, 3)
	assert.Equal(t, 0, m.TileAt(0, 0).Index(), "a lone cell can only be empty")

	m = generate(t, 1, 6, 3)
	_, r := audit(t, m)
	assert.True(t, r.BlobLegal(), "%+v", r)
	for y := 0; y < 6; y++ {
		tl := m.TileAt(0, y)
		require.False(t, tl.IsNull())
		assert.Zero(t, tl.Index()&^int(geom.North|geom.South), "a single column only opens N/S")
	}
}

// contradict pre-places tiles so that (0,0) has no candidate: the full tile
// below it demands a SouthWest corner off the west edge.
func contradict(t *testing.T, m *blob.Map) {
	t.Helper()
	full, err := tile.DefaultCatalog().Tile(255)
	require.NoError(t, err)
	empty, err := tile.DefaultCatalog().Tile(0)
	require.NoError(t, err)
	m.Grid().Replace(geom.Coordinate{X: 0, Y: 1}, full)
	m.Grid().Replace(geom.Coordinate{X: 1, Y: 0}, empty)
}

func TestGenerate_Unresolved(t *testing.T) {
	want := []geom.Coordinate{{X: 0, Y: 0}}

	t.Run("Lenient", func(t *testing.T) {
		m, err := blob.New(3, 3, 1)
		require.NoError(t, err)
		contradict(t, m)

		require.NoError(t, m.Generate())
		assert.Equal(t, want, m.Unresolved())
		assert.True(t, m.TileAt(0, 0).IsNull())

		_, r := audit(t, m)
		assert.Equal(t, 1, r.Null)
		assert.True(t, r.BlobLegal(), "%+v", r)
	})

	t.Run("Strict", func(t *testing.T) {
		m, err := blob.New(3, 3, 1, blob.WithStrict())
		require.NoError(t, err)
		contradict(t, m)

		err = m.Generate()
		require.ErrorIs(t, err, blob.ErrNoCandidate)
		assert.Contains(t, err.Error(), "1 cell(s), first at (0,0)")
		assert.Equal(t, want, m.Unresolved())
		assert.True(t, m.TileAt(0, 0).IsNull())
	})
}

func TestGenerate_StrictWithoutGaps(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		m, err := blob.New(9, 9, seed, blob.WithStrict(), blob.WithCatalog(tile.NewCatalog()))
		require.NoError(t, err)
		require.NoError(t, m.Generate(), "seed %d", seed)
		assert.Empty(t, m.Unresolved(), "seed %d", seed)
	}
}
