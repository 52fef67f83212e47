package scan

import (
	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/geometry"
)

// runRight returns the last column of the maximal horizontal run of filled
// pixels starting at (row, col). The caller guarantees (row, col) is filled.
func runRight(b *bitmap.Bitmap, row, col int) int {
	end := col
	for end+1 < b.Width() && b.Filled(row, end+1) {
		end++
	}

	return end
}

// runDown returns the last row of the maximal vertical run of filled pixels
// starting at (row, col). The caller guarantees (row, col) is filled.
func runDown(b *bitmap.Bitmap, row, col int) int {
	end := row
	for end+1 < b.Height() && b.Filled(end+1, col) {
		end++
	}

	return end
}

// LongestHorizontal returns the longest horizontal run of filled pixels.
// ok is false iff the grid contains no filled pixel. Ties are resolved by
// geometry.Better: smaller row first, then smaller starting column.
// Complexity: O(W×H) time, O(1) memory.
func LongestHorizontal(b *bitmap.Bitmap) (line geometry.Line, ok bool) {
	var best geometry.Line
	found := false
	bestLen := 0
	for row := 0; row < b.Height(); row++ {
		// No run starting at or beyond width-bestLen can be longer than
		// bestLen, and equal-length runs found later lose the tie-break.
		for col := 0; col < b.Width()-bestLen; col++ {
			if !b.Filled(row, col) {
				continue
			}
			end := runRight(b, row, col)
			run := geometry.Line{
				Start: geometry.Point{X: col, Y: row},
				End:   geometry.Point{X: end, Y: row},
			}
			if !found || geometry.Better(run, best) {
				best = run
				found = true
				bestLen = run.Size()
			}
			// Jump past the run; the loop increment moves to end+1.
			col = end
		}
	}

	return best, found
}

// LongestVertical returns the longest vertical run of filled pixels.
// The transposed analogue of LongestHorizontal.
// Complexity: O(W×H) time, O(1) memory.
func LongestVertical(b *bitmap.Bitmap) (line geometry.Line, ok bool) {
	var best geometry.Line
	found := false
	bestLen := 0
	for col := 0; col < b.Width(); col++ {
		for row := 0; row < b.Height()-bestLen; row++ {
			if !b.Filled(row, col) {
				continue
			}
			end := runDown(b, row, col)
			run := geometry.Line{
				Start: geometry.Point{X: col, Y: row},
				End:   geometry.Point{X: col, Y: end},
			}
			if !found || geometry.Better(run, best) {
				best = run
				found = true
				bestLen = run.Size()
			}
			row = end
		}
	}

	return best, found
}
