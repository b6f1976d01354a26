package gridgraph

import (
	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/tile"
)

// FromTiles snapshots src into a GridGraph.
// Returns ErrEmptyGrid if src has no rows or no columns.
// Complexity: O(W×H) time and memory.
func FromTiles(src Source, opts GridOptions) (*GridGraph, error) {
	size := src.Size()
	if size.Width < 1 || size.Height < 1 {
		return nil, ErrEmptyGrid
	}
	masks := make([][]int, size.Height)
	for y := 0; y < size.Height; y++ {
		masks[y] = make([]int, size.Width)
		for x := 0; x < size.Width; x++ {
			masks[y][x] = src.TileAt(x, y).Index()
		}
	}
	dirs := geom.Cardinals[:]
	if opts.Conn == Conn8 {
		dirs = geom.All[:]
	}
	return &GridGraph{
		Width:      size.Width,
		Height:     size.Height,
		Masks:      masks,
		Conn:       opts.Conn,
		directions: dirs,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// tileAt rebuilds the tile stored at (x,y); tile.Null() out of bounds.
func (gg *GridGraph) tileAt(x, y int) tile.Tile {
	if !gg.InBounds(x, y) || gg.Masks[y][x] < 0 {
		return tile.Null()
	}
	return tile.New(tile.Mask(gg.Masks[y][x]))
}

// Linked reports whether (x,y) opens towards d and its neighbor in that
// direction opens back.
func (gg *GridGraph) Linked(x, y int, d geom.Direction) bool {
	dx, dy := d.Offset()
	return gg.tileAt(x, y).Has(d) && gg.tileAt(x+dx, y+dy).Has(d.Opposite())
}

// Connections counts linked orthogonal cell pairs, each pair once.
// Complexity: O(W×H).
func (gg *GridGraph) Connections() int {
	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Linked(x, y, geom.East) {
				n++
			}
			if gg.Linked(x, y, geom.South) {
				n++
			}
		}
	}
	return n
}

// Indices returns a copy of the masks, row by row.
func (gg *GridGraph) Indices() [][]int {
	out := make([][]int, gg.Height)
	for y := range gg.Masks {
		out[y] = append([]int(nil), gg.Masks[y]...)
	}
	return out
}
