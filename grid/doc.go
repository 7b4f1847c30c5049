// SPDX-License-Identifier: MIT

// Package grid provides stateless helpers over row-major 2D slices ([][]T):
// row and column aggregation, rotation, border padding, Euclidean modulus
// and aligned rendering.
//
// What:
//
//   - SumRow/SumColumn, MinRow/MinColumn, MaxRow/MaxColumn return (v, ok);
//     ok is false when the grid is empty or the index addresses nothing.
//   - Rotate transposes a possibly ragged grid without losing cells.
//   - Pad/PadGrid surround a grid with a one-cell border of a filler value.
//   - Modulus is the always-non-negative remainder ((a % b) + b) % b.
//   - Lines, Runes, Text, Clone and Render move between text and grids.
//
// Shape policy:
//
//   - Rows may have different lengths. Row n is g[n]. Column n collects
//     g[y][n] from every row long enough to have it; shorter rows are
//     skipped. Column n is absent only when no row reaches it.
//   - Hence SumColumn(g, n) == SumRow(Rotate(g), n) for every grid g.
//   - No function returns rows that alias its input.
//
// Complexity:
//
//   - Row accessors:    O(len(g[n])).
//   - Column accessors: O(H).
//   - Rotate, PadGrid, Clone, Render: O(W×H) time and memory.
//
// Errors:
//
//   - ErrDivideByZero: Modulus with b == 0.
package grid
