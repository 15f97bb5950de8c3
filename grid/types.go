// Package grid: core types and sentinel errors.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShapeMismatch indicates lon and lat arrays of different shapes.
	ErrShapeMismatch = errors.New("grid: lon and lat must have the same shape")
	// ErrVectorExtend indicates ghost-ring extension requested on a 1-D grid.
	ErrVectorExtend = errors.New("grid: extension requires a 2-D grid")
)

// Shape describes a rectangular grid: Rows along the longitude ("x") axis,
// Cols along the latitude ("y") axis. A 1-D point list has Cols == 1.
type Shape struct {
	Rows, Cols int
}

// Size returns Rows×Cols.
func (s Shape) Size() int { return s.Rows * s.Cols }

// Flat maps (row, col) to the row-major flat index.
func (s Shape) Flat(row, col int) int { return row*s.Cols + col }

// RowCol maps a row-major flat index back to (row, col).
func (s Shape) RowCol(flat int) (row, col int) { return flat / s.Cols, flat % s.Cols }

// String renders the shape for error messages.
func (s Shape) String() string { return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols) }
