package grid

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wang/geom"
)

// Factory supplies the tiles a Grid hands out for cells it has not stored.
type Factory[T any] interface {
	// InvalidTile is returned for every out-of-bounds read.
	InvalidTile() T
	// CreateTile builds the tile for an in-bounds cell on its first access.
	CreateTile(pos geom.Coordinate) T
}

// Grid is a lazily populated Width×Height array of T.
type Grid[T any] struct {
	size    geom.Size
	cells   []T
	created []bool
	factory Factory[T]
	rng     *rand.Rand
}

// New returns an empty grid of the given size whose random source is seeded
// with seed. Returns ErrBadSize or ErrNilFactory on invalid input.
// Complexity: O(W×H) time and memory.
func New[T any](size geom.Size, seed int64, f Factory[T]) (*Grid[T], error) {
	if size.Width < 1 || size.Height < 1 {
		return nil, fmt.Errorf("%w: %s", ErrBadSize, size)
	}
	if f == nil {
		return nil, ErrNilFactory
	}
	n := size.Area()
	return &Grid[T]{
		size:    size,
		cells:   make([]T, n),
		created: make([]bool, n),
		factory: f,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Size returns the grid dimensions.
func (g *Grid[T]) Size() geom.Size { return g.size }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.size.Width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.size.Height }

// InBounds reports whether c lies inside the grid.
func (g *Grid[T]) InBounds(c geom.Coordinate) bool {
	return g.size.Contains(c)
}

// offset maps (x,y) to the row-major index x + y*Width.
func (g *Grid[T]) offset(x, y int) int {
	return x + y*g.size.Width
}

// TileAt returns the tile at (x,y). Out of bounds it returns the factory's
// invalid tile; otherwise the cached tile, creating and caching it on first
// access.
// Complexity: O(1).
func (g *Grid[T]) TileAt(x, y int) T {
	if !g.InBounds(geom.Coordinate{X: x, Y: y}) {
		return g.factory.InvalidTile()
	}
	i := g.offset(x, y)
	if !g.created[i] {
		g.cells[i] = g.factory.CreateTile(geom.Coordinate{X: x, Y: y})
		g.created[i] = true
	}
	return g.cells[i]
}

// At is TileAt for a Coordinate.
func (g *Grid[T]) At(c geom.Coordinate) T {
	return g.TileAt(c.X, c.Y)
}

// Materialized reports whether the cell at c has been created or replaced.
func (g *Grid[T]) Materialized(c geom.Coordinate) bool {
	return g.InBounds(c) && g.created[g.offset(c.X, c.Y)]
}

// Neighbor returns the tile one step from c in direction d together with its
// coordinate and d itself, so callers can inspect and later replace it.
func (g *Grid[T]) Neighbor(c geom.Coordinate, d geom.Direction) (T, geom.Coordinate, geom.Direction) {
	n := c.Add(d)
	return g.At(n), n, d
}

// Replace stores t at c. Out-of-bounds coordinates are ignored.
func (g *Grid[T]) Replace(c geom.Coordinate, t T) {
	if !g.InBounds(c) {
		return
	}
	i := g.offset(c.X, c.Y)
	g.cells[i] = t
	g.created[i] = true
}

// Update materializes the cell at c and lets fn mutate it in place.
// Returns ErrOutOfBounds outside the grid; an error from fn is wrapped with
// the coordinate and the cell keeps whatever fn left in it.
func (g *Grid[T]) Update(c geom.Coordinate, fn func(*T) error) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	g.At(c)
	if err := fn(&g.cells[g.offset(c.X, c.Y)]); err != nil {
		return fmt.Errorf("grid: update %s: %w", c, err)
	}
	return nil
}

// RandomNext returns a deterministic pseudo-random int in [0,n).
// It panics if n <= 0, as rand.Intn does.
func (g *Grid[T]) RandomNext(n int) int {
	return g.rng.Intn(n)
}
