// Command figsearch analyzes a textual bitmap for geometric figures: the
// longest horizontal or vertical run of filled pixels, or the largest
// square whose border is entirely filled.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/geometry"
	"github.com/katalvlaran/figsearch/scan"
)

// Exit codes: a completed query (including "Not found") succeeds; load and
// format failures are distinguished from usage mistakes.
const (
	exitOK    = 0
	exitLoad  = 1
	exitUsage = 2
)

const usage = `figsearch — bitmap figure search

USAGE:
    figsearch [command] [bitmap location]

COMMANDS:
    --help       Display this help message.
    test         Validate the bitmap file. Requires: [bitmap location].
    hline        Find the longest horizontal line. Requires: [bitmap location].
    vline        Find the longest vertical line. Requires: [bitmap location].
    square       Find the largest filled-border square. Requires: [bitmap location].

NOTES:
    - hline, vline and square implicitly validate the file first.
    - Figures are printed as "<row> <col> <row> <col>": start point, then
      end point, row before column. A grid with no filled pixel prints
      "Not found".
    - Example: figsearch hline my_image.txt
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches one command and returns the process exit code. Separated
// from main so tests can drive it with in-memory writers.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 1 {
		if args[0] == "--help" {
			fmt.Fprint(stdout, usage)
			return exitOK
		}
		fmt.Fprintf(stderr, "figsearch: command %q needs a bitmap location\n\n%s", args[0], usage)
		return exitUsage
	}
	if len(args) != 2 {
		fmt.Fprintf(stderr, "figsearch: expected a command and a bitmap location, got %d arguments\n\n%s",
			len(args), usage)
		return exitUsage
	}

	cmd, path := args[0], args[1]
	switch cmd {
	case "test":
		if _, err := bitmap.LoadFile(path); err != nil {
			fmt.Fprintln(stderr, "Invalid")
			return exitLoad
		}
		fmt.Fprintln(stdout, "Valid")
		return exitOK
	case "hline":
		return search(path, stdout, stderr, func(b *bitmap.Bitmap) (geometry.Shape, bool) {
			return scan.LongestHorizontal(b)
		})
	case "vline":
		return search(path, stdout, stderr, func(b *bitmap.Bitmap) (geometry.Shape, bool) {
			return scan.LongestVertical(b)
		})
	case "square":
		return search(path, stdout, stderr, func(b *bitmap.Bitmap) (geometry.Shape, bool) {
			return scan.LargestSquare(b)
		})
	default:
		fmt.Fprintf(stderr, "figsearch: unknown command %q, expected one of: --help, test, hline, vline, square\n", cmd)
		return exitUsage
	}
}

// search loads the bitmap at path and reports the figure find returns.
// Absence of a figure is a successful query.
func search(path string, stdout, stderr io.Writer, find func(*bitmap.Bitmap) (geometry.Shape, bool)) int {
	b, err := bitmap.LoadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitLoad
	}
	shape, ok := find(b)
	if !ok {
		fmt.Fprintln(stdout, "Not found")
		return exitOK
	}
	fmt.Fprintln(stdout, shape)

	return exitOK
}
