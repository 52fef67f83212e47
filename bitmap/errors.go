// Package bitmap: sentinel error set.
// All loader failures wrap one of these sentinels; callers match with
// errors.Is. Context (offending character, counts, path) is attached with
// fmt.Errorf("%w: ...") at the point of failure.
package bitmap

import "errors"

var (
	// ErrInvalidDimension indicates a bad header: a dimension token is
	// missing, non-numeric or zero, the declared size overflows MaxCells,
	// or the pixel region ended before height×width characters were read.
	ErrInvalidDimension = errors.New("bitmap: invalid dimension")

	// ErrInvalidBitmapFile indicates a bad pixel region or an unreadable
	// input: a character outside {'0','1',whitespace}, more pixel
	// characters than the header declares, or an I/O failure.
	ErrInvalidBitmapFile = errors.New("bitmap: invalid bitmap file")
)
