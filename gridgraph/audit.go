package gridgraph

import (
	"github.com/katalvlaran/wang/geom"
	"github.com/katalvlaran/wang/tile"
)

// Audit checks the snapshot against the blob tiling rules and the maze
// invariants in a single pass. A nil catalog means tile.DefaultCatalog().
// Complexity: O(W×H).
func (gg *GridGraph) Audit(c *tile.Catalog) Report {
	if c == nil {
		c = tile.DefaultCatalog()
	}
	size := geom.Size{Width: gg.Width, Height: gg.Height}
	r := Report{Cells: size.Area()}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			t := gg.tileAt(x, y)
			if t.IsNull() {
				r.Null++
				continue
			}
			if !tile.FitsBounds(t, geom.Coordinate{X: x, Y: y}, size) {
				r.BoundaryViolations++
			}
			if !c.Contains(t.Mask()) {
				r.UnknownMasks++
			}
			for _, d := range geom.Cardinals {
				dx, dy := d.Offset()
				if !gg.InBounds(x+dx, y+dy) {
					continue
				}
				if t.Has(d) && !gg.Linked(x, y, d) {
					r.OneSidedEdges++
				}
			}
			// East and South pairs cover every orthogonal pair once.
			if e := gg.tileAt(x+1, y); !e.IsNull() && !tile.Matches(e, t, geom.East) {
				r.AdjacencyViolations++
			}
			if s := gg.tileAt(x, y+1); !s.IsNull() && !tile.Matches(s, t, geom.South) {
				r.AdjacencyViolations++
			}
			if gg.loopEdges(x, y) == 3 {
				r.OpenCorners++
			}
		}
	}

	r.Components = len(gg.conn4().ConnectedComponents())
	return r
}

// loopEdges counts the linked edges of the 2×2 block whose top-left cell is
// (x,y), counting a flag on either side; 0 if the block leaves the grid.
func (gg *GridGraph) loopEdges(x, y int) int {
	if !gg.InBounds(x+1, y+1) {
		return 0
	}
	edge := func(ax, ay int, d geom.Direction) int {
		dx, dy := d.Offset()
		if gg.tileAt(ax, ay).Has(d) || gg.tileAt(ax+dx, ay+dy).Has(d.Opposite()) {
			return 1
		}
		return 0
	}
	return edge(x, y, geom.East) + edge(x+1, y, geom.South) +
		edge(x, y+1, geom.East) + edge(x, y, geom.South)
}

// conn4 returns gg itself or a Conn4 view sharing its masks.
func (gg *GridGraph) conn4() *GridGraph {
	if gg.Conn == Conn4 {
		return gg
	}
	view := *gg
	view.Conn = Conn4
	view.directions = geom.Cardinals[:]
	return &view
}
