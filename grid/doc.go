// Package grid provides the lazily populated, seeded 2D container that the
// wang generators grow their tiles in.
//
// What:
//
//   - Grid[T]: Width×Height cells stored row-major (offset = x + y*Width).
//     A cell is created by the Factory on first access and cached; reads
//     outside the grid return Factory.InvalidTile and never touch storage.
//   - Factory[T]: the capability a generator plugs in, InvalidTile for
//     out-of-bounds reads and CreateTile for first-touch cells.
//   - A math/rand source seeded at construction and owned by the grid, so the
//     same seed and the same sequence of calls replay the same output.
//
// Mutation:
//
//	Replace overwrites a cell; Update mutates a cell in place through a
//	callback. Both ignore (Replace) or reject (Update) out-of-bounds cells.
//
// Errors:
//
//   - ErrBadSize: a non-positive width or height.
//   - ErrNilFactory: New called without a Factory.
//   - ErrOutOfBounds: Update on a coordinate outside the grid.
//
// Concurrency:
//
//	A Grid is single-owner. Neither the cells nor the rand source are guarded;
//	do not share a Grid across goroutines while it is being generated.
package grid
