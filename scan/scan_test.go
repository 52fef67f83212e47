package scan_test

import (
	"testing"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/geometry"
)

// grid builds a bitmap from rows of '0'/'1' characters. All rows must have
// equal length; test fixtures keep that by construction.
func grid(t *testing.T, rows ...string) *bitmap.Bitmap {
	t.Helper()
	dims := bitmap.Dimensions{Width: len(rows[0]), Height: len(rows)}
	data := make([]bitmap.Pixel, 0, dims.Cells())
	for _, row := range rows {
		for _, c := range row {
			px := bitmap.Empty
			if c == '1' {
				px = bitmap.Filled
			}
			data = append(data, px)
		}
	}
	b, err := bitmap.New(dims, data)
	if err != nil {
		t.Fatalf("grid fixture: %v", err)
	}

	return b
}

func pt(row, col int) geometry.Point { return geometry.Point{X: col, Y: row} }
