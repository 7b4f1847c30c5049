// SPDX-License-Identifier: MIT

package point

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/katalvlaran/gridkit/num"
)

// Point represents a point in <X,Y> 2-space.
type Point[T num.Number] struct {
	X T
	Y T
}

// New is a convenience constructor for Point.
func New[T num.Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Zero returns the origin, which is also the zero value of Point[T].
func Zero[T num.Number]() Point[T] {
	return Point[T]{}
}

// String renders the point as "(x, y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Compare orders a and b lexicographically: by X, then by Y.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare[T num.Number](a, b Point[T]) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Less reports whether p sorts before other (X primary, Y secondary).
func (p Point[T]) Less(other Point[T]) bool {
	return Compare(p, other) < 0
}

// Sort orders pts in place by Compare.
func Sort[T num.Number](pts []Point[T]) {
	slices.SortFunc(pts, Compare[T])
}

// Min returns the component-wise minimum of p and other.
func (p Point[T]) Min(other Point[T]) Point[T] {
	return Point[T]{X: min(p.X, other.X), Y: min(p.Y, other.Y)}
}

// Max returns the component-wise maximum of p and other.
func (p Point[T]) Max(other Point[T]) Point[T] {
	return Point[T]{X: max(p.X, other.X), Y: max(p.Y, other.Y)}
}

// InBounds reports whether 0 <= X < width and 0 <= Y < height.
func (p Point[T]) InBounds(width, height T) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Hash returns a structural hash of the point; equal points hash equally.
func (p Point[T]) Hash() uint64 {
	// -0.0 == 0.0 but the bits differ.
	if p.X == 0 {
		p.X = 0
	}
	if p.Y == 0 {
		p.Y = 0
	}
	h, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	if err != nil {
		// Point holds two numbers; hashstructure only fails on
		// unsupported kinds such as funcs or channels.
		panic(fmt.Sprintf("point: hash %v: %v", p, err))
	}
	return h
}
