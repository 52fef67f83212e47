// Package bitmap models a monochrome pixel grid and loads it from the
// textual bitmap format.
//
// What:
//
//   - Pixel is a cell value, Filled or Empty.
//   - Dimensions carries the declared width and height.
//   - Bitmap wraps a rectangular, row-major pixel buffer; immutable once
//     built.
//   - Load / LoadFile parse the textual format: a header of two decimal
//     integers (height, then width) followed by exactly height×width
//     characters from {'0','1'} with arbitrary interleaved whitespace.
//
// Why:
//
//   - The scanners in package scan need a validated grid they can trust:
//     every cell addressable, no partial state. The loader either produces
//     a fully populated Bitmap or a classified error, never something in
//     between.
//
// Complexity:
//
//   - Load: O(W×H) time, O(W×H) memory (one pass over the input).
//   - At / Filled / InBounds: O(1).
//
// Errors:
//
//   - ErrInvalidDimension: header missing, non-numeric, zero, overflowing,
//     or fewer pixel characters than the header declares.
//   - ErrInvalidBitmapFile: unreadable input, an illegal character in the
//     pixel region, or more pixel characters than the header declares.
package bitmap
