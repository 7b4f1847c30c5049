// SPDX-License-Identifier: MIT

package textsplit

import (
	"errors"
	"regexp"
	"strings"
)

// Splitter splits and filters text on the matches of a compiled pattern.
// A Splitter is immutable and safe for concurrent use.
type Splitter struct {
	re *regexp.Regexp
}

// Compile parses pattern (RE2 syntax) into a Splitter.
// Returns a *PatternError wrapping ErrPattern if the pattern is malformed.
func Compile(pattern string) (*Splitter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return &Splitter{re: re}, nil
}

var errNilRegexp = errors.New("nil regexp")

// FromRegexp wraps an already compiled expression.
// A nil re yields a *PatternError wrapping ErrPattern.
func FromRegexp(re *regexp.Regexp) (*Splitter, error) {
	if re == nil {
		return nil, &PatternError{Err: errNilRegexp}
	}
	return &Splitter{re: re}, nil
}

// Pattern returns the source text of the pattern.
func (s *Splitter) Pattern() string {
	return s.re.String()
}

// Split returns the substrings of text separated by non-overlapping matches,
// in order. Empty tokens are kept; empty text yields [""].
func (s *Splitter) Split(text string) []string {
	return s.re.Split(text, -1)
}

// SplitLines applies Split to each line of text separately, so a match
// never spans a line break. A trailing "\r" is trimmed from each line and a
// final newline does not add an empty row.
func (s *Splitter) SplitLines(text string) [][]string {
	ls := lines(text)
	out := make([][]string, len(ls))
	for i, l := range ls {
		out[i] = s.Split(l)
	}
	return out
}

// Filter removes every match from text in a single replacement pass.
func (s *Splitter) Filter(text string) string {
	return s.re.ReplaceAllLiteralString(text, "")
}

// Split compiles pattern and splits text on it.
func Split(text, pattern string) ([]string, error) {
	s, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return s.Split(text), nil
}

// SplitLines compiles pattern and splits every line of text on it.
func SplitLines(text, pattern string) ([][]string, error) {
	s, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return s.SplitLines(text), nil
}

// Filter compiles pattern and removes every match from text.
func Filter(text, pattern string) (string, error) {
	s, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return s.Filter(text), nil
}

// DropEmpty returns tokens without the empty strings, preserving order.
func DropEmpty(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// lines must stay in step with grid.Lines; it returns nil for empty text.
func lines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	ls := strings.Split(text, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
