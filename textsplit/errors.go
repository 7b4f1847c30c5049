// SPDX-License-Identifier: MIT

package textsplit

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrPattern indicates a pattern specification is not a valid pattern.
	ErrPattern = errors.New("textsplit: invalid pattern")
	// ErrParse indicates a token could not be converted to the requested
	// numeric type.
	ErrParse = errors.New("textsplit: cannot parse token")
	// ErrDecode indicates raw input bytes could not be decoded to text.
	ErrDecode = errors.New("textsplit: cannot decode input")
)

// PatternError records a pattern that failed to compile.
// errors.Is(err, ErrPattern) reports true for it.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("textsplit: invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error { return []error{ErrPattern, e.Err} }

// ParseError records the token that failed numeric conversion.
// errors.Is(err, ErrParse) reports true for it, and so does the underlying
// strconv sentinel (strconv.ErrSyntax or strconv.ErrRange).
type ParseError struct {
	// Row is the row index for Parse2D, or -1 for ParseNumeric.
	Row int
	// Index is the position of the token within its row.
	Index int
	// Token is the offending input.
	Token string
	// Type names the requested numeric type, e.g. "int32".
	Type string
	Err  error
}

func (e *ParseError) Error() string {
	reason := e.Err
	var ne *strconv.NumError
	if errors.As(reason, &ne) {
		reason = ne.Err
	}
	if e.Row >= 0 {
		return fmt.Sprintf("textsplit: row %d token %d %q: cannot parse as %s: %v",
			e.Row, e.Index, e.Token, e.Type, reason)
	}
	return fmt.Sprintf("textsplit: token %d %q: cannot parse as %s: %v",
		e.Index, e.Token, e.Type, reason)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }
