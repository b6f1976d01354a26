// Package maze grows connected corridor layouts on a tile grid with a
// randomized growing-tree walk, optionally opening small rooms where the walk
// nearly closes a 2×2 loop. Corridors are recorded as blob edge flags, so the
// result can be skinned with the same tile catalog as a blob map.
//
// What:
//
//   - Every cell starts as a mutable tile with an empty mask (unvisited).
//   - Generate seeds an active list with one random cell, then repeatedly
//     picks an active cell: with probability Randomness/100 a uniformly random
//     one, otherwise the most recently added one. If it has unvisited
//     in-bounds orthogonal neighbors, one of them is connected to it (the
//     facing flags are set on both cells) and appended; otherwise the cell is
//     dropped. The walk ends when the active list is empty.
//   - Randomness 0 is a recursive backtracker (long corridors); 100 behaves
//     like randomized Prim (short, branchy corridors).
//
// Rooms:
//
//	With rooms enabled, each new connection checks the two 2×2 blocks that
//	share the new edge. A block whose four loop edges hold at least three
//	times is closed into a room: all four edges are linked both ways and the
//	four inner corner flags are set. Edges added this way re-check the block
//	on their other side, so no block is left with exactly three of four edges.
//
// Determinism:
//
//	Draw order is: start X, start Y, then per step one draw in [0,100), one
//	more for the active index when the first fell under the threshold, and
//	one for the neighbor whenever at least one is open.
//
// Complexity: O(W×H) steps, each O(1) amortized except active-list removal,
// which is O(len(active)).
package maze
