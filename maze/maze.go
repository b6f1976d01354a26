package maze

import (
	"fmt"

	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/grid"
	"github.com/katalvlaran/wang/tile"
)

// walkOrder is the order in which a cell's neighbors are offered to the draw.
var walkOrder = [4]geom.Direction{geom.North, geom.South, geom.East, geom.West}

// factory starts every in-bounds cell as an unvisited, mutable tile.
type factory struct{}

func (factory) InvalidTile() tile.Tile { return tile.Null() }
func (factory) CreateTile(geom.Coordinate) tile.Tile { return tile.New(0) }

// Stats summarizes what Generate did.
type Stats struct {
	// Visited counts cells that joined the walk, the start included.
	Visited int
	// Connections counts linked cell pairs, walk and room edges alike.
	Connections int
	// Rooms counts 2×2 blocks closed into rooms.
	Rooms int
}

// Map is a maze map.
type Map struct {
	grid       *grid.Grid[tile.Tile]
	randomness int
	rooms      bool
	start      geom.Coordinate
	stats      Stats
}

// New returns an unvisited width×height maze seeded with seed.
// Returns grid.ErrBadSize for non-positive dimensions.
func New(width, height int, seed int64, opts ...Option) (*Map, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g, err := grid.New[tile.Tile](geom.Size{Width: width, Height: height}, seed, factory{})
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	return &Map{grid: g, randomness: cfg.randomness, rooms: cfg.rooms}, nil
}

type step struct {
	pos geom.Coordinate
	dir geom.Direction
}

// Generate runs the growing-tree walk from a random start cell. One walk
// reaches every cell, so later calls leave the map, Start and Stats as they
// are; build a new Map for a fresh grid.
func (m *Map) Generate() error {
	if m.stats.Visited >= m.grid.Size().Area() {
		return nil
	}
	x := m.grid.RandomNext(m.grid.Width())
	y := m.grid.RandomNext(m.grid.Height())
	m.start = geom.Coordinate{X: x, Y: y}
	m.stats.Visited++

	active := []geom.Coordinate{m.start}
	open := make([]step, 0, len(walkOrder))
	for len(active) > 0 {
		i := m.selectNext(len(active))
		current := active[i]

		open = open[:0]
		for _, d := range walkOrder {
			t, pos, dir := m.grid.Neighbor(current, d)
			if !t.IsNull() && t.Index() == 0 {
				open = append(open, step{pos: pos, dir: dir})
			}
		}
		if len(open) == 0 {
			active = append(active[:i], active[i+1:]...)
			continue
		}

		next := open[m.grid.RandomNext(len(open))]
		if err := m.link(current, next.dir); err != nil {
			return err
		}
		if m.rooms {
			if err := m.applyCornerRules(next.pos, next.dir); err != nil {
				return err
			}
		}
		m.stats.Visited++
		active = append(active, next.pos)
	}
	return nil
}

// selectNext returns a random index with probability randomness/100 and the
// last index otherwise.
func (m *Map) selectNext(n int) int {
	if m.grid.RandomNext(100) < m.randomness {
		return m.grid.RandomNext(n)
	}
	return n - 1
}

// link connects a and its neighbor in direction d on both sides.
func (m *Map) link(a geom.Coordinate, d geom.Direction) error {
	b := a.Add(d)
	if m.linked(a, d) {
		return nil
	}
	if err := m.setFlags(a, d); err != nil {
		return err
	}
	if err := m.setFlags(b, d.Opposite()); err != nil {
		return err
	}
	m.stats.Connections++
	return nil
}

// linked reports whether the edge from a towards d is registered on either side.
func (m *Map) linked(a geom.Coordinate, d geom.Direction) bool {
	return m.grid.At(a).Has(d) || m.grid.At(a.Add(d)).Has(d.Opposite())
}

// setFlags sets every flag in ds on the cell at pos, turning a read-only or
// not yet materialized cell into an ordinary mutable one first.
func (m *Map) setFlags(pos geom.Coordinate, ds ...geom.Direction) error {
	return m.grid.Update(pos, func(t *tile.Tile) error {
		if t.ReadOnly() {
			*t = t.Mutable()
		}
		for _, d := range ds {
			if err := t.Set(d, true); err != nil {
				return err
			}
		}
		return nil
	})
}

// Start returns the cell the walk started from.
func (m *Map) Start() geom.Coordinate { return m.start }

// Stats returns what the walk did.
func (m *Map) Stats() Stats { return m.stats }

// TileAt returns the tile at (x,y), or tile.Null() out of bounds.
func (m *Map) TileAt(x, y int) tile.Tile { return m.grid.TileAt(x, y) }

// Size returns the map dimensions.
func (m *Map) Size() geom.Size { return m.grid.Size() }

// Grid exposes the underlying grid.
func (m *Map) Grid() *grid.Grid[tile.Tile] { return m.grid }
