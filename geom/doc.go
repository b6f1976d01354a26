// Package geom holds the value types every other wang package is built on:
// integer grid coordinates, grid sizes and the eight compass directions.
//
// What:
//
//   - Coordinate: an (X, Y) cell position; Y grows southwards.
//   - Size: a Width×Height rectangle anchored at (0,0).
//   - Direction: one of eight compass directions, each a distinct single bit
//     (North=1 … NorthWest=128), so a set of directions is an 8-bit mask.
//
// Rotation:
//
//	Directions are numbered clockwise starting at North, two bits per quarter
//	turn. Rotating a direction (or a whole mask) by k quarter turns clockwise
//	is a circular left shift by 2k bits.
//
// Complexity: every operation is O(1).
package geom
