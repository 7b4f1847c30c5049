// SPDX-License-Identifier: MIT

// Package point provides a generic 2D coordinate, Point[T], with vector
// arithmetic, lexicographic ordering, distances and cardinal navigation.
//
// What:
//
//   - Point[T] is a value type over any num.Number; == compares structurally.
//   - Add/Sub/Mul/Div and the cross-type Scale/Divide return new points;
//     AddAssign/SubAssign/MulAssign/DivAssign mutate through a pointer.
//   - Up/Down/Left/Right, Move*, Step/Move by Direction, Neighbors/Neighbors8.
//   - Manhattan and Chebyshev distances, safe for unsigned coordinates.
//   - Compare/Less order by X first, then Y.
//
// Screen convention:
//
//	Up decreases Y and Down increases Y; X is the horizontal axis.
//
//	      (x, y-1)
//	(x-1, y) P (x+1, y)
//	      (x, y+1)
//
// This is the opposite of the Cartesian "up increases y" convention and
// matches row-major grids where grid[y][x] and row 0 is the top line.
//
// Errors:
//
//   - ErrDivideByZero: Div, DivAssign, Divide or DivideAssign by zero.
//   - ErrScalarRange: Divide or DivideAssign by a scalar the coordinate
//     type cannot hold exactly.
//
// Limitations:
//
//   - Fixed-width integer overflow wraps per Go semantics; Point does not
//     detect it.
package point
