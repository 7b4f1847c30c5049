// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/gridkit/num"
	"github.com/katalvlaran/gridkit/point"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph[T num.Number](values [][]T, opts GridOptions[T]) (*GridGraph[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], values[y])
	}
	land := opts.Land
	if land == nil {
		threshold := opts.LandThreshold
		land = func(v T) bool { return v >= threshold }
	}

	return &GridGraph[T]{
		Width:      w,
		Height:     h,
		CellValues: cells,
		Conn:       opts.Conn,
		land:       land,
	}, nil
}

// FromRunes builds a GridGraph over a rune map where the cells equal to any
// of landRunes are land, e.g. FromRunes(grid.Runes(text), Conn4, '#').
func FromRunes(values [][]rune, conn Connectivity, landRunes ...rune) (*GridGraph[rune], error) {
	set := make(map[rune]struct{}, len(landRunes))
	for _, r := range landRunes {
		set[r] = struct{}{}
	}
	return NewGridGraph(values, GridOptions[rune]{
		Conn: conn,
		Land: func(r rune) bool {
			_, ok := set[r]
			return ok
		},
	})
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph[T]) InBounds(p point.Point[int]) bool {
	return p.InBounds(gg.Width, gg.Height)
}

// At returns the value stored at p; ok is false outside the grid.
func (gg *GridGraph[T]) At(p point.Point[int]) (v T, ok bool) {
	if !gg.InBounds(p) {
		return v, false
	}
	return gg.CellValues[p.Y][p.X], true
}

// IsLand reports whether p is inside the grid and holds a land cell.
func (gg *GridGraph[T]) IsLand(p point.Point[int]) bool {
	v, ok := gg.At(p)
	return ok && gg.land(v)
}

// Neighbors returns the in-bounds neighbors of p under gg.Conn, in
// point.Neighbors (Conn4) or point.Neighbors8 (Conn8) order.
// Complexity: O(d).
func (gg *GridGraph[T]) Neighbors(p point.Point[int]) []point.Point[int] {
	var all []point.Point[int]
	if gg.Conn == Conn8 {
		n := p.Neighbors8()
		all = n[:]
	} else {
		n := p.Neighbors()
		all = n[:]
	}
	out := all[:0]
	for _, q := range all {
		if gg.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// index maps p to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph[T]) index(p point.Point[int]) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row-major index back to a point.
// Complexity: O(1).
func (gg *GridGraph[T]) Coordinate(idx int) point.Point[int] {
	return point.New(idx%gg.Width, idx/gg.Width)
}
