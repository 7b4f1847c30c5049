// SPDX-License-Identifier: MIT

package point

import "github.com/katalvlaran/gridkit/num"

// Add returns p+other, component-wise.
func (p Point[T]) Add(other Point[T]) Point[T] {
	p.X += other.X
	p.Y += other.Y
	return p
}

// Sub returns p-other, component-wise.
func (p Point[T]) Sub(other Point[T]) Point[T] {
	p.X -= other.X
	p.Y -= other.Y
	return p
}

// Mul returns p with both components multiplied by k.
func (p Point[T]) Mul(k T) Point[T] {
	p.X *= k
	p.Y *= k
	return p
}

// Div returns p with both components divided by k.
// Integer division truncates toward zero.
// Returns ErrDivideByZero if k == 0.
func (p Point[T]) Div(k T) (Point[T], error) {
	if k == 0 {
		return p, ErrDivideByZero
	}
	p.X /= k
	p.Y /= k
	return p, nil
}

// AddAssign adds other to p in place.
func (p *Point[T]) AddAssign(other Point[T]) {
	*p = p.Add(other)
}

// SubAssign subtracts other from p in place.
func (p *Point[T]) SubAssign(other Point[T]) {
	*p = p.Sub(other)
}

// MulAssign multiplies p by k in place.
func (p *Point[T]) MulAssign(k T) {
	*p = p.Mul(k)
}

// DivAssign divides p by k in place. On ErrDivideByZero p is left untouched.
func (p *Point[T]) DivAssign(k T) error {
	q, err := p.Div(k)
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// Scale multiplies p by a scalar of a possibly different numeric type.
// A floating-point k on an integer point is applied in float64 and the
// product truncated toward zero, so Scale(New(3, 4), 1.5) is (4, 6).
// Otherwise k is converted to T; for integer types this matches the
// fixed-width wrap of the product itself.
func Scale[T, K num.Number](p Point[T], k K) Point[T] {
	if num.IsFloat[K]() && !num.IsFloat[T]() {
		f := float64(k)
		return Point[T]{X: T(float64(p.X) * f), Y: T(float64(p.Y) * f)}
	}
	return p.Mul(T(k))
}

// Divide divides p by a scalar of a possibly different numeric type.
// A zero k yields ErrDivideByZero. A k that T cannot hold exactly (256 or
// -1 for a uint8 point, 0.5 for an int point) or that underflows to zero
// in a float T yields ErrScalarRange.
func Divide[T, K num.Number](p Point[T], k K) (Point[T], error) {
	t, err := divisor[T](k)
	if err != nil {
		return p, err
	}
	return p.Div(t)
}

// ScaleAssign is the in-place form of Scale.
func ScaleAssign[T, K num.Number](p *Point[T], k K) {
	*p = Scale(*p, k)
}

// DivideAssign is the in-place form of Divide. On error p is left untouched.
func DivideAssign[T, K num.Number](p *Point[T], k K) error {
	t, err := divisor[T](k)
	if err != nil {
		return err
	}
	return p.DivAssign(t)
}

// divisor converts k to T, checking for zero before the conversion.
func divisor[T, K num.Number](k K) (T, error) {
	if k == 0 {
		return 0, ErrDivideByZero
	}
	t := T(k)
	if t == 0 || (!num.IsFloat[T]() && K(t) != k) {
		return 0, ErrScalarRange
	}
	return t, nil
}
