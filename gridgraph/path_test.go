// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/point"
)

const ring = "" +
	"#####\n" +
	"#...#\n" +
	"#.#.#\n" +
	"#...#\n" +
	"#####\n"

// TestShortestPath walks around the central wall; Neighbors order (up, down,
// left, right) makes the walk go down first.
func TestShortestPath(t *testing.T) {
	gg, err := gridgraph.FromRunes(grid.Runes(ring), gridgraph.Conn4, '.')
	if err != nil {
		t.Fatalf("FromRunes failed: %v", err)
	}

	path, err := gg.ShortestPath(point.New(1, 1), point.New(3, 3))
	if err != nil {
		t.Fatalf("ShortestPath error: %v", err)
	}
	want := []point.Point[int]{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
	for i := 1; i < len(path); i++ {
		if d := point.Manhattan(path[i-1], path[i]); d != 1 {
			t.Errorf("step %d has length %d", i, d)
		}
	}

	self, err := gg.ShortestPath(point.New(2, 1), point.New(2, 1))
	if err != nil || len(self) != 1 {
		t.Errorf("self path = %v, %v; want single cell", self, err)
	}
}

// TestShortestPath_Errors covers bounds, water endpoints and unreachable cells.
func TestShortestPath_Errors(t *testing.T) {
	gg, _ := gridgraph.FromRunes(grid.Runes(".#.\n"), gridgraph.Conn4, '.')

	if _, err := gg.ShortestPath(point.New(-1, 0), point.New(0, 0)); !errors.Is(err, gridgraph.ErrOutOfBounds) {
		t.Errorf("out of bounds: got %v; want ErrOutOfBounds", err)
	}
	if _, err := gg.ShortestPath(point.New(0, 0), point.New(1, 0)); !errors.Is(err, gridgraph.ErrNoPath) {
		t.Errorf("wall endpoint: got %v; want ErrNoPath", err)
	}
	if _, err := gg.ShortestPath(point.New(0, 0), point.New(2, 0)); !errors.Is(err, gridgraph.ErrNoPath) {
		t.Errorf("unreachable: got %v; want ErrNoPath", err)
	}
}
