// SPDX-License-Identifier: MIT

package textsplit_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/katalvlaran/gridkit/textsplit"
	"github.com/stretchr/testify/require"
)

// TestParseNumericInts parses the split delimiter example as integers.
func TestParseNumericInts(t *testing.T) {
	tokens, err := textsplit.Split("1,2.3|4 5", delimiters)
	require.NoError(t, err)

	ints, err := textsplit.ParseNumeric[int](tokens)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, ints)

	u8, err := textsplit.ParseNumeric[uint8](tokens)
	require.NoError(t, err)
	require.Equal(t, []uint8{1, 2, 3, 4, 5}, u8)
}

// TestParseNumericKinds covers signed, unsigned, floats and named types.
func TestParseNumericKinds(t *testing.T) {
	i64, err := textsplit.ParseNumeric[int64]([]string{"-9223372036854775808", "+7"})
	require.NoError(t, err)
	require.Equal(t, []int64{-9223372036854775808, 7}, i64)

	f, err := textsplit.ParseNumeric[float64]([]string{"1.5", "-2e3"})
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2000}, f)

	f32, err := textsplit.ParseNumeric[float32]([]string{"0.25"})
	require.NoError(t, err)
	require.Equal(t, []float32{0.25}, f32)

	type cost int16
	c, err := textsplit.ParseNumeric[cost]([]string{"12"})
	require.NoError(t, err)
	require.Equal(t, []cost{12}, c)

	empty, err := textsplit.ParseNumeric[int](nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

// TestParseError ensures failures name the offending token instead of
// dropping or defaulting it.
func TestParseError(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		index  int
		cause  error
	}{
		{"syntax", []string{"1", "x", "3"}, 1, strconv.ErrSyntax},
		{"empty token", []string{"", "1"}, 0, strconv.ErrSyntax},
		{"padded", []string{"1", " 2"}, 1, strconv.ErrSyntax},
		{"float for int", []string{"2.5"}, 0, strconv.ErrSyntax},
		{"range", []string{"127", "128"}, 1, strconv.ErrRange},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := textsplit.ParseNumeric[int8](tc.tokens)
			require.Nil(t, got)
			require.ErrorIs(t, err, textsplit.ErrParse)
			require.ErrorIs(t, err, tc.cause)

			var pe *textsplit.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, -1, pe.Row)
			require.Equal(t, tc.index, pe.Index)
			require.Equal(t, tc.tokens[tc.index], pe.Token)
			require.Equal(t, "int8", pe.Type)
			require.Contains(t, err.Error(), strconv.Quote(pe.Token))
		})
	}

	_, err := textsplit.ParseNumeric[uint]([]string{"-1"})
	require.ErrorIs(t, err, textsplit.ErrParse)
}

// TestParse2D converts a token grid and locates failures by row.
func TestParse2D(t *testing.T) {
	rows, err := textsplit.SplitLines("1 2 3\n4 5 6\n7 8 9\n", " ")
	require.NoError(t, err)

	g, err := textsplit.Parse2D[int](rows)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, g)

	_, err = textsplit.Parse2D[int]([][]string{{"1"}, {"2", "oops"}})
	var pe *textsplit.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 1, pe.Row)
	require.Equal(t, 1, pe.Index)
	require.Equal(t, `textsplit: row 1 token 1 "oops": cannot parse as int: invalid syntax`, err.Error())
}
