package scan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/geometry"
	"github.com/katalvlaran/figsearch/scan"
)

// requireBorderFilled re-verifies a returned square directly against the
// grid: all four border edges must be filled. This is an external check,
// independent of the scanner's internal probing.
func requireBorderFilled(t *testing.T, b *bitmap.Bitmap, sq geometry.Square) {
	t.Helper()
	tl, br := sq.TopLeft, sq.BottomRight
	require.Equal(t, br.X-tl.X, br.Y-tl.Y, "corners must span equal extents")
	for x := tl.X; x <= br.X; x++ {
		require.True(t, b.Filled(tl.Y, x), "top edge open at col %d", x)
		require.True(t, b.Filled(br.Y, x), "bottom edge open at col %d", x)
	}
	for y := tl.Y; y <= br.Y; y++ {
		require.True(t, b.Filled(y, tl.X), "left edge open at row %d", y)
		require.True(t, b.Filled(y, br.X), "right edge open at row %d", y)
	}
}

func TestLargestSquare(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want geometry.Square
	}{
		{
			"FullTwoByTwo",
			[]string{"11", "11"},
			geometry.Square{TopLeft: pt(0, 0), BottomRight: pt(1, 1)},
		},
		{
			"SinglePixel",
			[]string{"000", "010", "000"},
			geometry.Square{TopLeft: pt(1, 1), BottomRight: pt(1, 1)},
		},
		{
			"HollowInteriorStillValid",
			[]string{
				"11111",
				"10001",
				"10101",
				"10001",
				"11111",
			},
			geometry.Square{TopLeft: pt(0, 0), BottomRight: pt(4, 4)},
		},
		{
			"ShrinksWhenFarEdgesBroken",
			// Top and left edges reach offset 3, but the bottom/right
			// edges only close at side 2.
			[]string{
				"1111",
				"1100",
				"1010",
				"1001",
			},
			geometry.Square{TopLeft: pt(0, 0), BottomRight: pt(1, 1)},
		},
		{
			"LargerSquareBelow",
			[]string{
				"110000",
				"110000",
				"011110",
				"010010",
				"010010",
				"011110",
			},
			geometry.Square{TopLeft: pt(2, 1), BottomRight: pt(5, 4)},
		},
		{
			"TieSmallerRowWins",
			[]string{
				"1100",
				"1100",
				"0011",
				"0011",
			},
			geometry.Square{TopLeft: pt(0, 0), BottomRight: pt(1, 1)},
		},
		{
			"TieSmallerColWins",
			[]string{
				"11011",
				"11011",
			},
			geometry.Square{TopLeft: pt(0, 0), BottomRight: pt(1, 1)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := grid(t, tc.rows...)
			got, ok := scan.LargestSquare(b)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
			requireBorderFilled(t, b, got)
		})
	}
}

func TestLargestSquare_NotFound(t *testing.T) {
	_, ok := scan.LargestSquare(grid(t, "00", "00"))
	require.False(t, ok)
}

// TestLargestSquare_AllFilled exercises the remaining-area pruning path on
// the adversarial all-ones grid.
func TestLargestSquare_AllFilled(t *testing.T) {
	rows := make([]string, 16)
	for i := range rows {
		rows[i] = "1111111111111111"
	}
	b := grid(t, rows...)
	got, ok := scan.LargestSquare(b)
	require.True(t, ok)
	require.Equal(t, geometry.Square{TopLeft: pt(0, 0), BottomRight: pt(15, 15)}, got)
	requireBorderFilled(t, b, got)
}

// TestLargestSquare_Deterministic: repeated scans of one grid agree.
func TestLargestSquare_Deterministic(t *testing.T) {
	b := grid(t,
		"110110",
		"111011",
		"011110",
		"110111",
	)
	first, ok := scan.LargestSquare(b)
	require.True(t, ok)
	requireBorderFilled(t, b, first)
	for i := 0; i < 5; i++ {
		again, ok := scan.LargestSquare(b)
		require.True(t, ok)
		require.Equal(t, first, again)
	}
}
