// Package figsearch finds geometric figures drawn in textual monochrome
// bitmaps: the longest horizontal line, the longest vertical line, and the
// largest square whose border is entirely filled.
//
// What is figsearch?
//
//	A small, pure-Go toolkit plus a command-line front end:
//		• bitmap/       — the pixel-grid model and the streaming text loader
//		• geometry/     — Point, Line, Square values and the shared ordering
//		• scan/         — the three figure scanners with early-termination pruning
//		• cmd/figsearch — the CLI: test, hline, vline, square
//
// The bitmap format is a header of two decimal integers (height, then
// width) followed by exactly height×width characters from {'0','1'},
// with any amount of interleaved whitespace:
//
//	4 5
//	0 0 1 0 0
//	0 1 1 1 0
//	1 1 1 1 1
//	0 0 1 0 0
//
// Quick example:
//
//	b, err := bitmap.LoadFile("image.txt")
//	if err != nil { ... }
//	if sq, ok := scan.LargestSquare(b); ok {
//		fmt.Println(sq) // "<row> <col> <row> <col>"
//	}
//
// Every scanner is a pure function of an immutable grid: deterministic,
// and safe to run concurrently against one bitmap.
package figsearch
