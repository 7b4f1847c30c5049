// SPDX-License-Identifier: MIT

// Package gridkit is a small toolkit for grid-based puzzle solving.
//
// Everything is organized under focused subpackages:
//
//	num/        — numeric constraints (Signed, Unsigned, Integer, Float, Number)
//	point/      — generic 2D Point[T]: arithmetic, ordering, distances, moves
//	grid/       — row/column aggregates, Rotate, Pad, Modulus, Render
//	textsplit/  — split/filter text by pattern, parse tokens into numbers
//	gridgraph/  — regions, shortest walks and bridges over a grid
//
// Screen convention: Up decreases Y. Row 0 is the first line of the input.
//
// Quick example:
//
//	rows, _ := textsplit.SplitLines("1 2 3\n4 5 6\n", `\s+`)
//	g, _ := textsplit.Parse2D[int](rows)
//	sum, ok := grid.SumColumn(g, 1) // 7, true
//
// The library does no I/O and never logs; failures are returned as errors
// and "no answer" results as a false ok value.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
