// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
	"github.com/katalvlaran/gridkit/point"
	"github.com/katalvlaran/gridkit/textsplit"
)

type command func(args []string, text string, stdout, stderr io.Writer) error

var commands = map[string]command{
	"split":      splitCmd,
	"sum":        aggregateCmd("sum", grid.SumRow[int64], grid.SumColumn[int64]),
	"min":        aggregateCmd("min", grid.MinRow[int64], grid.MinColumn[int64]),
	"max":        aggregateCmd("max", grid.MaxRow[int64], grid.MaxColumn[int64]),
	"rotate":     rotateCmd,
	"pad":        padCmd,
	"components": componentsCmd,
	"path":       pathCmd,
}

const defaultPattern = `\s+`

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

// tokens splits every line on pattern and drops empty tokens.
func tokens(text, pattern string) ([][]string, error) {
	rows, err := textsplit.SplitLines(text, pattern)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		rows[i] = textsplit.DropEmpty(r)
	}
	return rows, nil
}

func splitCmd(args []string, text string, stdout, stderr io.Writer) error {
	fs := newFlagSet("split", stderr)
	pattern := fs.String("pattern", defaultPattern, "delimiter pattern (RE2)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	rows, err := textsplit.SplitLines(text, *pattern)
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Fprintf(stdout, "%q\n", row)
	}
	return nil
}

type accessor func([][]int64, int) (int64, bool)

func aggregateCmd(name string, byRow, byCol accessor) command {
	return func(args []string, text string, stdout, stderr io.Writer) error {
		fs := newFlagSet(name, stderr)
		pattern := fs.String("pattern", defaultPattern, "delimiter pattern (RE2)")
		axis := fs.String("axis", "row", "row or col")
		index := fs.Int("index", 0, "row or column index")
		if err := parseFlags(fs, args); err != nil {
			return err
		}

		var fn accessor
		switch *axis {
		case "row":
			fn = byRow
		case "col", "column":
			fn = byCol
		default:
			return fmt.Errorf("%w: axis must be row or col, got %q", errUsage, *axis)
		}

		rows, err := tokens(text, *pattern)
		if err != nil {
			return err
		}
		g, err := textsplit.Parse2D[int64](rows)
		if err != nil {
			return err
		}
		v, ok := fn(g, *index)
		if !ok {
			return fmt.Errorf("no %s %d in a grid of %d rows", *axis, *index, len(g))
		}
		fmt.Fprintln(stdout, v)
		return nil
	}
}

func rotateCmd(args []string, text string, stdout, stderr io.Writer) error {
	fs := newFlagSet("rotate", stderr)
	pattern := fs.String("pattern", defaultPattern, "delimiter pattern (RE2)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	rows, err := tokens(text, *pattern)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, grid.Render(grid.Rotate(rows)))
	return nil
}

func padCmd(args []string, text string, stdout, stderr io.Writer) error {
	fs := newFlagSet("pad", stderr)
	filler := fs.String("filler", ".", "border rune")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if utf8.RuneCountInString(*filler) != 1 {
		return fmt.Errorf("%w: filler must be a single rune, got %q", errUsage, *filler)
	}
	r, _ := utf8.DecodeRuneInString(*filler)
	padded, ok := grid.Pad(text, r)
	if !ok {
		return errors.New("input has no non-empty lines to pad")
	}
	fmt.Fprint(stdout, grid.Text(padded))
	return nil
}

// runeMap builds a GridGraph from a text map whose land cells are any of land.
func runeMap(text, land string, conn8 bool) (*gridgraph.GridGraph[rune], error) {
	if land == "" {
		return nil, fmt.Errorf("%w: -land must name at least one rune", errUsage)
	}
	conn := gridgraph.Conn4
	if conn8 {
		conn = gridgraph.Conn8
	}
	return gridgraph.FromRunes(grid.Runes(text), conn, []rune(land)...)
}

func componentsCmd(args []string, text string, stdout, stderr io.Writer) error {
	fs := newFlagSet("components", stderr)
	land := fs.String("land", "#", "runes that count as land")
	diag := fs.Bool("diagonal", false, "connect diagonal neighbors")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	gg, err := runeMap(text, *land, *diag)
	if err != nil {
		return err
	}
	comps := gg.ConnectedComponents()
	fmt.Fprintln(stdout, len(comps))
	for i, c := range comps {
		fmt.Fprintf(stdout, "%d %d %v\n", i, len(c), c[0])
	}
	return nil
}

// parsePoint reads "x,y" into a point.
func parsePoint(s string) (point.Point[int], error) {
	parts, err := textsplit.Split(s, `\s*,\s*`)
	if err != nil {
		return point.Point[int]{}, err
	}
	if len(parts) != 2 {
		return point.Point[int]{}, fmt.Errorf("%w: point %q must be X,Y", errUsage, s)
	}
	xy, err := textsplit.ParseNumeric[int](parts)
	if err != nil {
		return point.Point[int]{}, fmt.Errorf("%w: point %q: %w", errUsage, s, err)
	}
	return point.New(xy[0], xy[1]), nil
}

func pathCmd(args []string, text string, stdout, stderr io.Writer) error {
	fs := newFlagSet("path", stderr)
	land := fs.String("land", ".", "runes that can be walked on")
	from := fs.String("from", "", "start X,Y")
	to := fs.String("to", "", "end X,Y")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	src, err := parsePoint(*from)
	if err != nil {
		return err
	}
	dst, err := parsePoint(*to)
	if err != nil {
		return err
	}
	gg, err := runeMap(text, *land, false)
	if err != nil {
		if errors.Is(err, gridgraph.ErrNonRectangular) {
			return fmt.Errorf("map rows must have equal length: %w", err)
		}
		return err
	}
	path, err := gg.ShortestPath(src, dst)
	if err != nil {
		return fmt.Errorf("from %v to %v: %w", src, dst, err)
	}
	fmt.Fprintln(stdout, len(path)-1)
	fmt.Fprintln(stdout, path)
	return nil
}
