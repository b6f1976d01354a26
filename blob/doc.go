// Package blob fills a grid with edge-consistent blob Wang tiles.
//
// What:
//
//	Generate visits every cell column by column (x outer, y inner). For each
//	cell it reads the West, East, North and South neighbors, asks the tile
//	catalog for every tile that fits the grid boundary and agrees with the
//	non-null neighbors, and stores one of them chosen uniformly at random.
//	Cells not yet visited read as tile.Null() and impose no constraint.
//
// Dead ends:
//
//	Constraints from the West and North neighbors can contradict each other
//	(for example one demands a NorthWest corner and the other forbids it).
//	Such a cell is left as tile.Null() and its coordinate is reported by
//	Unresolved. WithStrict turns that outcome into ErrNoCandidate.
//
// Determinism:
//
//	Same size, seed and catalog give the same tiles. Each placed cell costs
//	exactly one draw from the grid's random source.
//
// Complexity: O(W×H×C) time with C catalog tiles, O(W×H) memory.
package blob
