package scan

import (
	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/geometry"
)

// diagonalReach walks right along the anchor's row and down along the
// anchor's column in lockstep, returning the largest offset k for which
// both the top edge (row, col..col+k) and the left edge (row..row+k, col)
// are fully filled. The caller guarantees (row, col) is filled.
// One linear pass pre-validates the two edges touching the anchor.
func diagonalReach(b *bitmap.Bitmap, row, col int) int {
	k := 0
	for col+k+1 < b.Width() && row+k+1 < b.Height() &&
		b.Filled(row, col+k+1) && b.Filled(row+k+1, col) {
		k++
	}

	return k
}

// borderClosed reports whether the bottom edge (row+k, col..col+k) and the
// right edge (row..row+k, col+k) of the candidate square are fully filled.
// The top and left edges are already known filled through offset k from the
// diagonal probe. k=0 is the anchor itself and always validates.
func borderClosed(b *bitmap.Bitmap, row, col, k int) bool {
	for i := 0; i <= k; i++ {
		if !b.Filled(row+k, col+i) || !b.Filled(row+i, col+k) {
			return false
		}
	}

	return true
}

// LargestSquare returns the largest axis-aligned square whose four border
// edges are entirely filled; interior pixels are unconstrained. ok is false
// iff the grid contains no filled pixel (a single filled pixel is a valid
// square of Size 1). Ties are resolved by geometry.Better.
//
// Per filled anchor, scanned in row-major order:
//  1. stop the whole scan once bestSide² ≥ (height-row)×width — rows below
//     cannot hold a strictly larger square;
//  2. probe the diagonal for the largest pre-validated side kMax+1;
//  3. skip the anchor when even kMax+1 cannot beat the running maximum;
//  4. check the bottom/right edges at kMax, shrinking one step at a time
//     until a size validates (size 1 always does).
//
// Complexity: bounded by the pruning in step 1; each anchor's worst case is
// O(kMax²) in the shrink loop.
func LargestSquare(b *bitmap.Bitmap) (square geometry.Square, ok bool) {
	var best geometry.Square
	found := false
	bestSide := 0
	width, height := b.Width(), b.Height()
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if !b.Filled(row, col) {
				continue
			}
			if bestSide*bestSide >= (height-row)*width {
				return best, found
			}
			kMax := diagonalReach(b, row, col)
			if bestSide > kMax+1 {
				continue
			}
			for k := kMax; k >= 0; k-- {
				if !borderClosed(b, row, col, k) {
					continue
				}
				cand := geometry.Square{
					TopLeft:     geometry.Point{X: col, Y: row},
					BottomRight: geometry.Point{X: col + k, Y: row + k},
				}
				if !found || geometry.Better(cand, best) {
					best = cand
					found = true
					bestSide = cand.Size()
				}
				break
			}
		}
	}

	return best, found
}
