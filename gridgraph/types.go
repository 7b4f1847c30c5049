// SPDX-License-Identifier: MIT

package gridgraph

import (
	"errors"

	"github.com/katalvlaran/gridkit/num"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point out of bounds")
	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions[T num.Number] struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold T
	// Land, when non-nil, decides land cells instead of LandThreshold.
	Land func(T) bool
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions[T num.Number]() GridOptions[T] {
	return GridOptions[T]{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
type GridGraph[T num.Number] struct {
	Width, Height int
	CellValues    [][]T
	Conn          Connectivity
	land          func(T) bool
}
