// Package geometry defines the value types shared by the figure scanners:
// points, axis-aligned lines and squares on a pixel grid.
//
// What:
//
//   - Point addresses a grid cell (X = column, Y = row).
//   - Line is a horizontal or vertical run of cells, endpoints inclusive.
//   - Square is an axis-aligned square given by its two diagonal corners.
//   - Shape abstracts over Line and Square for ordering and printing.
//   - Better implements the single ordering rule every scanner uses.
//
// Why:
//
//   - The scanners keep one running maximum per scan; they need exactly one
//     total order over candidates so that every grid has a unique winner.
//   - Absence of a figure is expressed by the scanners' comma-ok result,
//     never by reserved coordinate values.
//
// Ordering:
//
//   - Greater Size wins.
//   - On equal Size, the shape anchored on the smaller row wins.
//   - On equal row, the smaller column wins.
//
// All types are small immutable values; every operation is O(1).
package geometry
