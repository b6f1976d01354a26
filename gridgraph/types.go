package gridgraph

import (
	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/tile"
)

// Source is anything that exposes a finished tile grid: blob.Map, maze.Map
// or a *grid.Grid[tile.Tile].
type Source interface {
	Size() geom.Size
	TileAt(x, y int) tile.Tile
}

// Connectivity selects which links count: edges only (Conn4) or edges and
// corners (Conn8).
type Connectivity int

const (
	// Conn4 follows N, E, S, W links.
	Conn4 Connectivity = iota
	// Conn8 also follows NE, SE, SW, NW corner links.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional links.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions{Conn: Conn4}.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// GridGraph is an immutable snapshot of a tile grid.
// Masks[y][x] holds the tile index at (x,y), -1 for null cells.
type GridGraph struct {
	Width, Height int
	Masks         [][]int
	Conn          Connectivity
	directions    []geom.Direction
}

// Report is the outcome of Audit. Which counters are violations depends on
// the kind of map: see BlobLegal and MazeLegal.
type Report struct {
	// Cells is Width×Height.
	Cells int
	// Null counts cells holding no tile (unresolved blob cells).
	Null int
	// BoundaryViolations counts tiles with a flag pointing off the grid.
	BoundaryViolations int
	// AdjacencyViolations counts orthogonal non-null pairs whose facing
	// flags disagree.
	AdjacencyViolations int
	// UnknownMasks counts non-null tiles whose mask is not in the catalog.
	UnknownMasks int
	// OneSidedEdges counts edge flags whose in-bounds neighbor lacks the
	// opposite flag.
	OneSidedEdges int
	// OpenCorners counts 2×2 blocks with exactly three of four loop edges.
	OpenCorners int
	// Components is the number of Conn4 components over non-null cells.
	Components int
}

// BlobLegal reports whether every placed tile is a catalog tile that stays
// on the grid and agrees with its non-null neighbors. Null cells, one-sided
// edges towards them and 3-of-4 blocks are all allowed in a blob map.
func (r Report) BlobLegal() bool {
	return r.BoundaryViolations == 0 && r.AdjacencyViolations == 0 && r.UnknownMasks == 0
}

// MazeLegal reports whether a maze is BlobLegal with every edge registered
// on both cells. With rooms it also requires that no 2×2 block holds exactly
// three of its four loop edges.
func (r Report) MazeLegal(rooms bool) bool {
	if !r.BlobLegal() || r.OneSidedEdges != 0 {
		return false
	}
	return !rooms || r.OpenCorners == 0
}
