// SPDX-License-Identifier: MIT

package point

// Up returns the point one unit above p (Y-1).
func (p Point[T]) Up() Point[T] {
	p.Y--
	return p
}

// Down returns the point one unit below p (Y+1).
func (p Point[T]) Down() Point[T] {
	p.Y++
	return p
}

// Left returns the point one unit left of p (X-1).
func (p Point[T]) Left() Point[T] {
	p.X--
	return p
}

// Right returns the point one unit right of p (X+1).
func (p Point[T]) Right() Point[T] {
	p.X++
	return p
}

// MoveUp moves p one unit up (Y-1) in place.
func (p *Point[T]) MoveUp() { p.Y-- }

// MoveDown moves p one unit down (Y+1) in place.
func (p *Point[T]) MoveDown() { p.Y++ }

// MoveLeft moves p one unit left (X-1) in place.
func (p *Point[T]) MoveLeft() { p.X-- }

// MoveRight moves p one unit right (X+1) in place.
func (p *Point[T]) MoveRight() { p.X++ }

// Step returns the point one unit from p in direction d.
// Unknown directions return p unchanged.
func (p Point[T]) Step(d Direction) Point[T] {
	switch d {
	case Up:
		return p.Up()
	case Down:
		return p.Down()
	case Left:
		return p.Left()
	case Right:
		return p.Right()
	}
	return p
}

// Move moves p one unit in direction d in place.
func (p *Point[T]) Move(d Direction) {
	*p = p.Step(d)
}

// Neighbors returns the four cardinal neighbors in order
// [up, down, left, right].
func (p Point[T]) Neighbors() [4]Point[T] {
	return [4]Point[T]{p.Up(), p.Down(), p.Left(), p.Right()}
}

// Neighbors8 returns the cardinal neighbors followed by the diagonals:
// [up, down, left, right, up-left, up-right, down-left, down-right].
func (p Point[T]) Neighbors8() [8]Point[T] {
	u, d := p.Up(), p.Down()
	return [8]Point[T]{
		u, d, p.Left(), p.Right(),
		u.Left(), u.Right(), d.Left(), d.Right(),
	}
}
