// SPDX-License-Identifier: MIT

package point_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridkit/point"
	"github.com/stretchr/testify/require"
)

// TestAdd covers value and in-place addition.
func TestAdd(t *testing.T) {
	p1 := point.New(1, 2)
	p2 := point.New(3, 4)
	want := point.New(4, 6)

	require.Equal(t, want, p1.Add(p2))
	require.Equal(t, p1.Add(p2), p2.Add(p1))

	p1.AddAssign(p2)
	require.Equal(t, want, p1)
}

// TestSub covers value and in-place subtraction.
func TestSub(t *testing.T) {
	p1 := point.New(1, 2)
	p2 := point.New(3, 4)
	want := point.New(-2, -2)

	require.Equal(t, want, p1.Sub(p2))
	require.NotEqual(t, p1.Sub(p2), p2.Sub(p1))

	p1.SubAssign(p2)
	require.Equal(t, want, p1)
}

// TestMul covers same-type and cross-type scaling.
func TestMul(t *testing.T) {
	p := point.New(1, 2)
	require.Equal(t, point.New(2, 4), p.Mul(2))
	require.Equal(t, point.New(3, 6), point.Scale(p, int64(3)))
	require.Equal(t, point.New(1.5, 3.0), point.Scale(point.New(1.0, 2.0), 1.5))
	require.Equal(t, point.New(1, 3), point.Scale(p, 1.9)) // 1.9, 3.8 truncated
	require.Equal(t, point.New(4, 6), point.Scale(point.New(3, 4), 1.5))
	require.Equal(t, point.New[uint8](0, 0), point.Scale(point.New[uint8](10, 20), 256)) // wraps like 10*256

	p.MulAssign(2)
	require.Equal(t, point.New(2, 4), p)

	point.ScaleAssign(&p, uint8(3))
	require.Equal(t, point.New(6, 12), p)
}

// TestDiv covers value and in-place division.
func TestDiv(t *testing.T) {
	p := point.New(3, 9)

	got, err := p.Div(3)
	require.NoError(t, err)
	require.Equal(t, point.New(1, 3), got)

	got, err = point.Divide(point.New(-7, 7), int8(2))
	require.NoError(t, err)
	require.Equal(t, point.New(-3, 3), got) // truncates toward zero

	require.NoError(t, p.DivAssign(3))
	require.Equal(t, point.New(1, 3), p)

	f := point.New(1.0, 3.0)
	require.NoError(t, point.DivideAssign(&f, 2))
	require.Equal(t, point.New(0.5, 1.5), f)
}

// TestDivideByZero ensures every division form reports ErrDivideByZero and
// leaves the receiver untouched.
func TestDivideByZero(t *testing.T) {
	p := point.New(4, 8)

	_, err := p.Div(0)
	require.ErrorIs(t, err, point.ErrDivideByZero)

	_, err = point.Divide(p, 0.0)
	require.ErrorIs(t, err, point.ErrDivideByZero)


	err = p.DivAssign(0)
	require.ErrorIs(t, err, point.ErrDivideByZero)
	require.Equal(t, point.New(4, 8), p)

	err = point.DivideAssign(&p, uint(0))
	require.ErrorIs(t, err, point.ErrDivideByZero)
	require.Equal(t, point.New(4, 8), p)

	fp := point.New(1.0, 1.0)
	_, err = fp.Div(0)
	require.ErrorIs(t, err, point.ErrDivideByZero)
}

// TestArithmeticProperties checks commutativity and inverse laws on a
// deterministic random sample.
func TestArithmeticProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := point.New(rng.Intn(2001)-1000, rng.Intn(2001)-1000)
		b := point.New(rng.Intn(2001)-1000, rng.Intn(2001)-1000)
		k := rng.Intn(199) - 99
		if k == 0 {
			k = 1
		}

		require.Equal(t, a.Add(b), b.Add(a))
		require.Equal(t, a, a.Add(b).Sub(b))

		q, err := a.Mul(k).Div(k)
		require.NoError(t, err)
		require.Equal(t, a, q)
	}
}

// TestDivideScalarRange ensures a divisor that the coordinate type cannot
// hold is rejected instead of wrapping or truncating.
func TestDivideScalarRange(t *testing.T) {
	u := point.New[uint8](10, 20)

	got, err := point.Divide(u, 256)
	require.ErrorIs(t, err, point.ErrScalarRange)
	require.NotErrorIs(t, err, point.ErrDivideByZero)
	require.Equal(t, u, got)

	_, err = point.Divide(u, -1)
	require.ErrorIs(t, err, point.ErrScalarRange)

	_, err = point.Divide(point.New(4, 8), 0.5)
	require.ErrorIs(t, err, point.ErrScalarRange)

	_, err = point.Divide(point.New[float32](1, 1), 1e-50)
	require.ErrorIs(t, err, point.ErrScalarRange)

	require.ErrorIs(t, point.DivideAssign(&u, 300), point.ErrScalarRange)
	require.Equal(t, point.New[uint8](10, 20), u)

	got, err = point.Divide(u, 2.0)
	require.NoError(t, err)
	require.Equal(t, point.New[uint8](5, 10), got)

	require.NoError(t, point.DivideAssign(&u, int64(5)))
	require.Equal(t, point.New[uint8](2, 4), u)

	_, err = point.Divide(point.New[float32](1, 2), 0.1)
	require.NoError(t, err)
}
