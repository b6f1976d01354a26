// Package gridgraph treats a generated tile grid as a graph whose edges are
// the links tiles open towards each other, enabling connectivity analysis,
// minimal-cost bridging between regions and a legality audit.
//
// What:
//
//   - GridGraph snapshots the masks of any Source (blob or maze map); null
//     cells are stored as -1 and belong to no component.
//   - Two cells are linked in direction d when the first has flag d and the
//     second the opposite flag. Conn4 follows the four edges only; Conn8 also
//     follows corner flags to the diagonal neighbor.
//   - ConnectedComponents and Reachable run BFS over links.
//   - Bridge finds the fewest new links joining two components (0-1 BFS).
//   - Audit counts boundary, adjacency, catalog, reciprocity and open-corner
//     violations in one pass.
//
// Why:
//
//   - Mazes: prove the walk reached every cell and that rooms are closed.
//   - Blob maps: count separate terrain regions, spot unresolved cells.
//   - Post-processing: decide which walls to open to join two regions.
//
// Complexity:
//
//   - FromTiles:            O(W×H), Memory: O(W×H).
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - Bridge:               O(W×H×d), Memory: O(W×H).
//   - Audit:                O(W×H + C), Memory: O(W×H)  (C = catalog size).
//
// Errors:
//
//   - ErrEmptyGrid: source has no rows or no columns.
//   - ErrCellIndex: a cell index outside the grid, or a null start cell.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no bridge exists between the two components.
package gridgraph
