package bitmap

import "fmt"

// Pixel is the value of a single bitmap cell.
type Pixel uint8

const (
	// Empty marks a cell written as '0'.
	Empty Pixel = iota
	// Filled marks a cell written as '1'.
	Filled
)

// MaxCells caps Width×Height so the linear buffer is always addressable by
// int on every platform. Larger declared grids are rejected at load time.
const MaxCells = 1<<31 - 1

// Dimensions is the grid extent declared by the bitmap header.
// Both fields must be strictly positive.
type Dimensions struct {
	Width  int
	Height int
}

// Cells returns the linear buffer size Width×Height.
func (d Dimensions) Cells() int { return d.Width * d.Height }

// validate rejects non-positive or overflowing dimensions.
func (d Dimensions) validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d",
			ErrInvalidDimension, d.Height, d.Width)
	}
	if uint64(d.Width)*uint64(d.Height) > MaxCells {
		return fmt.Errorf("%w: %dx%d exceeds the maximum grid size of %d cells",
			ErrInvalidDimension, d.Height, d.Width, MaxCells)
	}

	return nil
}

// Bitmap is a rectangular monochrome pixel grid. Cell (row, col) lives at
// row*Width+col in a private linear buffer. A Bitmap is immutable once
// built; it is safe to scan one Bitmap from multiple goroutines.
type Bitmap struct {
	dims Dimensions
	data []Pixel
}

// New builds a Bitmap from dimensions and a row-major pixel slice.
// The slice is deep-copied to keep the Bitmap immutable.
// Returns ErrInvalidDimension when dims is non-positive or overflowing, or
// when len(data) does not equal dims.Cells().
// Complexity: O(W×H) time and memory.
func New(dims Dimensions, data []Pixel) (*Bitmap, error) {
	if err := dims.validate(); err != nil {
		return nil, err
	}
	if len(data) != dims.Cells() {
		return nil, fmt.Errorf("%w: got %d pixels, want %dx%d=%d",
			ErrInvalidDimension, len(data), dims.Height, dims.Width, dims.Cells())
	}
	buf := make([]Pixel, len(data))
	copy(buf, data)

	return &Bitmap{dims: dims, data: buf}, nil
}

// Dimensions returns the grid extent.
func (b *Bitmap) Dimensions() Dimensions { return b.dims }

// Width returns the number of columns.
func (b *Bitmap) Width() int { return b.dims.Width }

// Height returns the number of rows.
func (b *Bitmap) Height() int { return b.dims.Height }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (b *Bitmap) InBounds(row, col int) bool {
	return row >= 0 && row < b.dims.Height && col >= 0 && col < b.dims.Width
}

// At returns the pixel at (row, col). It panics when the cell is out of
// range; use InBounds first when the coordinates are not already proven.
// Complexity: O(1).
func (b *Bitmap) At(row, col int) Pixel {
	if !b.InBounds(row, col) {
		panic(fmt.Sprintf("bitmap: cell (%d,%d) out of range %dx%d",
			row, col, b.dims.Height, b.dims.Width))
	}

	return b.data[row*b.dims.Width+col]
}

// Filled reports whether the pixel at (row, col) is Filled.
// Complexity: O(1).
func (b *Bitmap) Filled(row, col int) bool { return b.At(row, col) == Filled }
