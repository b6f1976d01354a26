package tile

import "github.com/katalvlaran/wang/geom"

// facing pairs the candidate's three flags on one side with the neighbor's
// flags on the opposite side of the shared border, west to east or north to
// south along that border.
var facing = map[geom.Direction][3][2]geom.Direction{
	geom.North: {
		{geom.NorthWest, geom.SouthWest},
		{geom.North, geom.South},
		{geom.NorthEast, geom.SouthEast},
	},
	geom.East: {
		{geom.NorthEast, geom.NorthWest},
		{geom.East, geom.West},
		{geom.SouthEast, geom.SouthWest},
	},
	geom.South: {
		{geom.SouthWest, geom.NorthWest},
		{geom.South, geom.North},
		{geom.SouthEast, geom.NorthEast},
	},
	geom.West: {
		{geom.NorthWest, geom.NorthEast},
		{geom.West, geom.East},
		{geom.SouthWest, geom.SouthEast},
	},
}

// Matches reports whether candidate may be placed with neighbor on its side
// (side is the direction from candidate to neighbor). A null neighbor never
// constrains. Non-cardinal sides always match.
func Matches(neighbor, candidate Tile, side geom.Direction) bool {
	if neighbor.IsNull() {
		return true
	}
	pairs, ok := facing[side]
	if !ok {
		return true
	}
	for _, p := range pairs {
		if candidate.Has(p[0]) != neighbor.Has(p[1]) {
			return false
		}
	}
	return true
}

// FitsBounds reports whether candidate has no flag pointing off a grid of the
// given size when placed at pos.
func FitsBounds(candidate Tile, pos geom.Coordinate, size geom.Size) bool {
	if pos.X == 0 && (candidate.NorthWest() || candidate.West() || candidate.SouthWest()) {
		return false
	}
	if pos.X == size.Width-1 && (candidate.NorthEast() || candidate.East() || candidate.SouthEast()) {
		return false
	}
	if pos.Y == 0 && (candidate.NorthWest() || candidate.North() || candidate.NorthEast()) {
		return false
	}
	if pos.Y == size.Height-1 && (candidate.SouthWest() || candidate.South() || candidate.SouthEast()) {
		return false
	}
	return true
}

// PossibleMatches returns, in catalog order, every catalog tile that fits
// the grid bounds at pos and agrees with each non-null neighbor.
// Complexity: O(catalog size).
func (c *Catalog) PossibleMatches(north, south, east, west Tile, pos geom.Coordinate, size geom.Size) []Tile {
	var out []Tile
	for _, t := range c.tiles {
		if !FitsBounds(t, pos, size) {
			continue
		}
		if !Matches(north, t, geom.North) ||
			!Matches(east, t, geom.East) ||
			!Matches(south, t, geom.South) ||
			!Matches(west, t, geom.West) {
			continue
		}
		out = append(out, t)
	}
	return out
}
