// Package wang generates tile maps from blob Wang tiles: 8-bit masks that
// record which of a cell's eight neighbors it connects to.
//
// The library is split into small packages, each usable on its own:
//
//	geom/       Coordinate, Size and the eight compass Directions
//	tile/       Tile values, the 47-tile blob Catalog, adjacency matching
//	grid/       generic lazily populated Grid[T] with a seeded random source
//	blob/       raster-scan fill picking a random compatible tile per cell
//	maze/       growing-tree maze with optional corner-smoothing rooms
//	gridgraph/  components, reachability and a legality audit of a map
//
// The wanggen command in cmd/wanggen prints generated maps as index grids.
//
// Generation is deterministic: the same size, seed and options give the same
// map. Maps are not safe for concurrent use; the catalog is.
package wang
