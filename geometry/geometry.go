// Package geometry: point, line and square values plus the shared ordering.
package geometry

import "fmt"

// Point addresses a single grid cell. X is the column index, Y is the row
// index; both are zero-based.
type Point struct {
	X int
	Y int
}

// Line is a contiguous run of cells, either horizontal (Start.Y == End.Y,
// Start.X ≤ End.X) or vertical (Start.X == End.X, Start.Y ≤ End.Y).
// Endpoints are inclusive; a single cell is a valid line of Size 1.
type Line struct {
	Start Point
	End   Point
}

// Square is an axis-aligned square given by its top-left and bottom-right
// corners, with equal horizontal and vertical extent. Corners are inclusive;
// a single cell is a valid square of Size 1.
type Square struct {
	TopLeft     Point
	BottomRight Point
}

// Shape is the capability every reportable figure provides: a comparable
// magnitude, an anchor for tie-breaking, and the wire rendering
// "<row> <col> <row> <col>" (start point then end point, row before column).
type Shape interface {
	fmt.Stringer

	// Size is the inclusive cell count along the figure's defining axis:
	// run length for lines, side length for squares.
	Size() int

	// Anchor is the top-left-most cell of the figure.
	Anchor() Point
}

// Size returns the inclusive run length. Exactly one of the two coordinate
// deltas is non-zero, so the same formula covers both orientations.
func (l Line) Size() int {
	return (l.End.X - l.Start.X) + (l.End.Y - l.Start.Y) + 1
}

// Anchor returns the line's start point.
func (l Line) Anchor() Point { return l.Start }

// Horizontal reports whether the line runs along a single row.
func (l Line) Horizontal() bool { return l.Start.Y == l.End.Y }

// Vertical reports whether the line runs along a single column.
func (l Line) Vertical() bool { return l.Start.X == l.End.X }

// String renders the line as "<row> <col> <row> <col>", start then end.
func (l Line) String() string {
	return fmt.Sprintf("%d %d %d %d", l.Start.Y, l.Start.X, l.End.Y, l.End.X)
}

// Size returns the inclusive side length.
func (s Square) Size() int { return s.BottomRight.X - s.TopLeft.X + 1 }

// Anchor returns the square's top-left corner.
func (s Square) Anchor() Point { return s.TopLeft }

// String renders the square as "<row> <col> <row> <col>", top-left corner
// then bottom-right corner.
func (s Square) String() string {
	return fmt.Sprintf("%d %d %d %d", s.TopLeft.Y, s.TopLeft.X, s.BottomRight.Y, s.BottomRight.X)
}

// Better reports whether candidate should replace best as the running
// maximum: greater Size wins; on equal Size the smaller anchor row wins; on
// equal row the smaller anchor column wins. The ordering is total over the
// shapes a single scan can produce, so every non-empty grid has exactly one
// winner.
func Better(candidate, best Shape) bool {
	if candidate.Size() != best.Size() {
		return candidate.Size() > best.Size()
	}
	ca, ba := candidate.Anchor(), best.Anchor()
	if ca.Y != ba.Y {
		return ca.Y < ba.Y
	}

	return ca.X < ba.X
}
