// Package grid provides a rectangular grid of float64 values with row-major
// flat storage so that equal row lengths are structurally enforced.
package grid

import "fmt"

// Grid is a rows x cols rectangle of float64 cells. The zero value is an
// empty grid. Grids are intended to be filled once during construction and
// treated as read-only afterwards.
type Grid struct {
	rows  int
	cols  int
	cells []float64
}

// New allocates a zero-filled grid with the given shape. Negative dimensions
// are normalized to zero so an empty input sequence yields an empty grid.
func New(rows, cols int) Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]float64, rows*cols),
	}
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// IsEmpty reports whether the grid holds no cells.
func (g Grid) IsEmpty() bool {
	return g.rows == 0 || g.cols == 0
}

// At returns the cell at row i, column j. Panics on out-of-range indices,
// matching slice semantics.
func (g Grid) At(i, j int) float64 {
	g.check(i, j)
	return g.cells[i*g.cols+j]
}

// Set assigns the cell at row i, column j.
func (g *Grid) Set(i, j int, value float64) {
	g.check(i, j)
	g.cells[i*g.cols+j] = value
}

// Row returns a copy of row i. Mutating the returned slice does not affect
// the grid.
func (g Grid) Row(i int) []float64 {
	if i < 0 || i >= g.rows {
		panic(fmt.Sprintf("grid: row index %d out of range [0,%d)", i, g.rows))
	}
	row := make([]float64, g.cols)
	copy(row, g.cells[i*g.cols:(i+1)*g.cols])
	return row
}

func (g Grid) check(i, j int) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range for %dx%d grid", i, j, g.rows, g.cols))
	}
}
