// SPDX-License-Identifier: MIT

package textsplit

import (
	"reflect"
	"strconv"

	"github.com/katalvlaran/gridkit/num"
)

// ParseNumeric converts every token to T using the strconv parser matching
// T's kind and bit size (base 10 for integers). Tokens are not trimmed.
// The first failure is returned as a *ParseError wrapping ErrParse; no
// token is ever dropped or defaulted.
func ParseNumeric[T num.Number](tokens []string) ([]T, error) {
	return parseRow[T](tokens, -1)
}

// Parse2D converts a token grid with ParseNumeric, row by row.
// The returned *ParseError carries the row index of the failing token.
func Parse2D[T num.Number](rows [][]string) ([][]T, error) {
	out := make([][]T, len(rows))
	for y, row := range rows {
		vals, err := parseRow[T](row, y)
		if err != nil {
			return nil, err
		}
		out[y] = vals
	}
	return out, nil
}

func parseRow[T num.Number](tokens []string, row int) ([]T, error) {
	out := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := parse[T](tok)
		if err != nil {
			var zero T
			return nil, &ParseError{
				Row:   row,
				Index: i,
				Token: tok,
				Type:  reflect.TypeOf(zero).String(),
				Err:   err,
			}
		}
		out[i] = v
	}
	return out, nil
}

// parse dispatches on the underlying kind so named types (~int) parse too.
func parse[T num.Number](s string) (T, error) {
	var zero T
	typ := reflect.TypeOf(zero)
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, typ.Bits())
		return T(v), err
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(s, 10, typ.Bits())
		return T(v), err
	default:
		v, err := strconv.ParseFloat(s, typ.Bits())
		return T(v), err
	}
}
