// Package scan finds the largest figures drawn in a bitmap: the longest
// horizontal run, the longest vertical run, and the largest axis-aligned
// square whose four border edges are entirely filled.
//
// What:
//
//   - LongestHorizontal / LongestVertical: maximal contiguous runs of
//     filled pixels along a row or column.
//   - LargestSquare: the largest square whose top row, bottom row, left
//     column and right column are all filled; interior cells are
//     unconstrained.
//
// Why:
//
//   - Each scanner is a pure function of an immutable bitmap.Bitmap: it
//     threads one running-maximum accumulator through a single deterministic
//     pass, so repeated scans of the same grid always agree, and independent
//     queries may scan one grid concurrently.
//
// Ordering:
//
//   - All three scanners pick their winner with geometry.Better: greater
//     size, then smaller row, then smaller column. Absence of any filled
//     pixel yields ok=false, never an error.
//
// Complexity:
//
//   - LongestHorizontal / LongestVertical: O(W×H) — each cell is visited
//     O(1) amortized times, and rows (columns) stop early once no longer
//     run can start.
//   - LargestSquare: bounded by remaining-area pruning; without it the
//     shrink-and-retry loop degrades toward O(W×H×min(W,H)) on adversarial
//     grids such as the all-filled one.
package scan
