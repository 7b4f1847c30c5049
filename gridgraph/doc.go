// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of cells as a graph, enabling
// region analysis, shortest walks and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]T grid; cells are addressed by
//     point.Point[int] with X the column and Y the row (Up is Y-1).
//   - A cell is "land" when its value is >= LandThreshold, or when the
//     optional Land predicate accepts it (e.g. '#' in a rune map).
//   - ConnectedComponents finds contiguous land regions.
//   - ShortestPath walks land cells with unit steps (BFS).
//   - ExpandIsland computes the minimal number of water cells to convert
//     to connect two regions (0-1 BFS).
//
// Why:
//
//   - Puzzle maps: count islands, flood-fill regions, find the shortest walk.
//   - Game maps: contiguous land detection, optimal bridging.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - ShortestPath:        O(W×H×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Land: predicate overriding LandThreshold when non-nil.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrOutOfBounds: a point lies outside the grid.
//   - ErrNoPath: no path exists between the requested cells or components.
package gridgraph
