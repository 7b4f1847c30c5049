// SPDX-License-Identifier: MIT

// Command gridkit applies the gridkit text and grid helpers to puzzle input
// read from stdin.
//
// Usage:
//
//	gridkit [-log-level L] [-log-format text|json] <command> [flags] < input
//
// Commands:
//
//	split       -pattern P                        tokens of each line
//	sum|min|max -pattern P -axis row|col -index N aggregate one row or column
//	rotate      -pattern P                        transpose the token grid
//	pad         -filler C                         surround the map with C
//	components  -land RUNES                       count regions of a map
//	path        -land RUNES -from X,Y -to X,Y     shortest walk on land
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gridkit/internal/logger"
	"github.com/katalvlaran/gridkit/textsplit"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks failures caused by bad arguments.
var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	levelName := fs.String("log-level", "warn", "log level: debug, info, warn, error")
	formatName := fs.String("log-format", "text", "log format: text or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	level, err := logger.ParseLevel(*levelName)
	if err != nil {
		fmt.Fprintf(stderr, "gridkit: %v\n", err)
		return exitUsage
	}
	format, err := logger.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(stderr, "gridkit: %v\n", err)
		return exitUsage
	}
	log := logger.New(logger.Options{Writer: stderr, Level: level, Format: format})

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "gridkit: missing command")
		return exitUsage
	}
	name, cmdArgs := fs.Arg(0), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "gridkit: unknown command %q\n", name)
		return exitUsage
	}
	log = log.With("command", name)

	raw, err := io.ReadAll(stdin)
	if err != nil {
		return fail(log, stderr, name, fmt.Errorf("read input: %w", err))
	}
	text, err := textsplit.Decode(raw)
	if err != nil {
		return fail(log, stderr, name, err)
	}
	log.Debug("input decoded", "bytes", len(raw))

	if err := cmd(cmdArgs, text, stdout, stderr); err != nil {
		return fail(log, stderr, name, err)
	}
	return exitOK
}

// fail reports which operation failed and on what input, never a trace.
func fail(log logger.Logger, stderr io.Writer, name string, err error) int {
	log.Error("command failed", "error", err)
	fmt.Fprintf(stderr, "gridkit: %s: %v\n", name, err)
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	return exitError
}
