package blob

import (
	"fmt"

	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/grid"
	"github.com/katalvlaran/wang/tile"
)

// factory leaves every cell null until the fill places a catalog tile.
type factory struct{}

func (factory) InvalidTile() tile.Tile { return tile.Null() }
func (factory) CreateTile(geom.Coordinate) tile.Tile { return tile.Null() }

// Map is a blob autotile map.
type Map struct {
	grid       *grid.Grid[tile.Tile]
	catalog    *tile.Catalog
	strict     bool
	unresolved []geom.Coordinate
}

// New returns an empty width×height blob map seeded with seed.
// Returns grid.ErrBadSize for non-positive dimensions.
func New(width, height int, seed int64, opts ...Option) (*Map, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := grid.New[tile.Tile](geom.Size{Width: width, Height: height}, seed, factory{})
	if err != nil {
		return nil, fmt.Errorf("blob: %w", err)
	}
	return &Map{grid: g, catalog: cfg.catalog, strict: cfg.strict}, nil
}

// Generate fills the map. Calling it again continues from the current state;
// build a new Map for a fresh grid.
func (m *Map) Generate() error {
	m.unresolved = m.unresolved[:0]
	size := m.grid.Size()
	for x := 0; x < size.Width; x++ {
		for y := 0; y < size.Height; y++ {
			pos := geom.Coordinate{X: x, Y: y}
			if !m.placeTile(pos) {
				m.unresolved = append(m.unresolved, pos)
			}
		}
	}
	if m.strict && len(m.unresolved) > 0 {
		return fmt.Errorf("%w: %d cell(s), first at %s", ErrNoCandidate, len(m.unresolved), m.unresolved[0])
	}
	return nil
}

// placeTile stores a random compatible tile at pos and reports whether one
// existed.
func (m *Map) placeTile(pos geom.Coordinate) bool {
	west, _, _ := m.grid.Neighbor(pos, geom.West)
	east, _, _ := m.grid.Neighbor(pos, geom.East)
	north, _, _ := m.grid.Neighbor(pos, geom.North)
	south, _, _ := m.grid.Neighbor(pos, geom.South)

	candidates := m.catalog.PossibleMatches(north, south, east, west, pos, m.grid.Size())
	if len(candidates) == 0 {
		return false
	}
	m.grid.Replace(pos, candidates[m.grid.RandomNext(len(candidates))])
	return true
}

// Unresolved returns the cells the last Generate could not fill, in visiting
// order. After a single Generate they read as tile.Null(); a repeated run
// leaves the previous tile in place instead.
func (m *Map) Unresolved() []geom.Coordinate {
	return append([]geom.Coordinate(nil), m.unresolved...)
}

// TileAt returns the tile at (x,y), or tile.Null() out of bounds.
func (m *Map) TileAt(x, y int) tile.Tile { return m.grid.TileAt(x, y) }

// Size returns the map dimensions.
func (m *Map) Size() geom.Size { return m.grid.Size() }

// Grid exposes the underlying grid.
func (m *Map) Grid() *grid.Grid[tile.Tile] { return m.grid }
