package maze

import "github.com/katalvlaran/wang/geom"

// cornersFor lists, for a connection made towards d, the two corners of the
// newly reached cell whose 2×2 blocks contain the new edge.
var cornersFor = map[geom.Direction][2]geom.Direction{
	geom.North: {geom.SouthEast, geom.SouthWest},
	geom.East:  {geom.NorthWest, geom.SouthWest},
	geom.South: {geom.NorthEast, geom.NorthWest},
	geom.West:  {geom.NorthEast, geom.SouthEast},
}

// blockEdge is one of the four loop edges of a 2×2 block: the link from
// cell towards dir, and the top-left cell of the other block sharing it.
type blockEdge struct {
	cell   geom.Coordinate
	dir    geom.Direction
	beyond geom.Coordinate
}

// applyCornerRules runs the corner rule for both blocks sharing the edge
// that just reached pos from direction d.
func (m *Map) applyCornerRules(pos geom.Coordinate, d geom.Direction) error {
	for _, c := range cornersFor[d] {
		if err := m.applyCornerRule(pos, c); err != nil {
			return err
		}
	}
	return nil
}

// applyCornerRule closes the block at corner c of pos if at least three of
// its four loop edges hold, then re-checks every block that gained an edge.
func (m *Map) applyCornerRule(pos geom.Coordinate, c geom.Direction) error {
	pending := []geom.Coordinate{blockAt(pos, c)}
	for len(pending) > 0 {
		tl := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		added, err := m.closeBlock(tl)
		if err != nil {
			return err
		}
		pending = append(pending, added...)
	}
	return nil
}

// blockAt returns the top-left cell of the 2×2 block at corner c of pos.
func blockAt(pos geom.Coordinate, c geom.Direction) geom.Coordinate {
	dx, dy := c.Offset()
	return geom.Coordinate{X: pos.X + min(dx, 0), Y: pos.Y + min(dy, 0)}
}

// closeBlock turns the block with top-left cell tl into a room when at least
// three of its loop edges hold. It returns the blocks on the far side of each
// edge it had to add. Blocks reaching outside the grid are left alone.
func (m *Map) closeBlock(tl geom.Coordinate) ([]geom.Coordinate, error) {
	ne, sw, se := tl.Add(geom.East), tl.Add(geom.South), tl.Add(geom.SouthEast)
	if !m.grid.InBounds(tl) || !m.grid.InBounds(se) {
		return nil, nil
	}

	edges := [4]blockEdge{
		{cell: tl, dir: geom.East, beyond: geom.Coordinate{X: tl.X, Y: tl.Y - 1}},
		{cell: ne, dir: geom.South, beyond: geom.Coordinate{X: tl.X + 1, Y: tl.Y}},
		{cell: sw, dir: geom.East, beyond: geom.Coordinate{X: tl.X, Y: tl.Y + 1}},
		{cell: tl, dir: geom.South, beyond: geom.Coordinate{X: tl.X - 1, Y: tl.Y}},
	}
	var missing []blockEdge
	for _, e := range edges {
		if !m.linked(e.cell, e.dir) {
			missing = append(missing, e)
		}
	}
	if len(missing) > 1 {
		return nil, nil
	}

	corners := [4]struct {
		cell geom.Coordinate
		dir  geom.Direction
	}{
		{tl, geom.SouthEast},
		{ne, geom.SouthWest},
		{sw, geom.NorthEast},
		{se, geom.NorthWest},
	}
	open := len(missing) > 0
	for _, c := range corners {
		if !m.grid.At(c.cell).Has(c.dir) {
			open = true
		}
	}
	if !open {
		return nil, nil
	}

	var added []geom.Coordinate
	for _, e := range missing {
		if err := m.link(e.cell, e.dir); err != nil {
			return nil, err
		}
		added = append(added, e.beyond)
	}
	for _, c := range corners {
		if err := m.setFlags(c.cell, c.dir); err != nil {
			return nil, err
		}
	}
	m.stats.Rooms++
	return added, nil
}
