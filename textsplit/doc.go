// SPDX-License-Identifier: MIT

// Package textsplit turns raw puzzle text into token and number grids.
//
// What:
//
//   - Splitter wraps a compiled regular expression (Go RE2 syntax) and
//     splits text on its matches, line by line, or filters matches out.
//   - Split, SplitLines and Filter are one-shot forms taking a pattern string.
//   - ParseNumeric and Parse2D convert tokens to any num.Number type.
//   - Decode turns raw input bytes into text, honoring a UTF-8/UTF-16 BOM.
//
// Empty tokens:
//
//	Delimiters at the edges of the text or next to each other produce empty
//	tokens; they are kept. Use DropEmpty to filter them explicitly.
//
//	Split(",a,,b", ",") == []string{"", "a", "", "b"}
//
// Errors:
//
//   - ErrPattern: malformed pattern (concrete type *PatternError).
//   - ErrParse:   a token is not a valid number of the requested type
//     (concrete type *ParseError, naming the token and its position).
//   - ErrDecode:  raw input could not be decoded.
package textsplit
