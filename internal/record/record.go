// Package record defines the plain-data value passed to displayers during a
// fan-out run. The numeric payload is a flat contiguous buffer with explicit
// dimensions rather than a nested structure, so there is never any ambiguity
// about who owns which allocation.
package record

import (
	"fmt"
)

// Grid is a dense row-major matrix of float64 values. The zero value is an
// empty grid; use NewGrid to build a populated one.
type Grid struct {
	rows, cols int
	vals       []float64
}

// NewGrid builds a grid from explicit dimensions and a flat row-major buffer.
// The buffer length must equal rows*cols.
func NewGrid(rows, cols int, vals []float64) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if len(vals) != rows*cols {
		return Grid{}, fmt.Errorf("grid buffer length %d does not match %dx%d", len(vals), rows, cols)
	}
	copied := make([]float64, len(vals))
	copy(copied, vals)
	return Grid{rows: rows, cols: cols, vals: copied}, nil
}

// MustGrid is like NewGrid but panics on invalid input. Intended for
// statically known literals.
func MustGrid(rows, cols int, vals []float64) Grid {
	g, err := NewGrid(rows, cols, vals)
	if err != nil {
		panic(fmt.Sprintf("record: invalid grid literal: %v", err))
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// At returns the value at row r, column c. Out-of-range access is a
// programming-contract violation and panics with a descriptive message.
func (g Grid) At(r, c int) float64 {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("record: grid access (%d,%d) out of range for %dx%d grid", r, c, g.rows, g.cols))
	}
	return g.vals[r*g.cols+c]
}

// Values returns a copy of the flat row-major buffer.
func (g Grid) Values() []float64 {
	out := make([]float64, len(g.vals))
	copy(out, g.vals)
	return out
}

// Record is the plain-data value handed to every displayer. Every field must
// be initialized before a capability observes it; New enforces that.
type Record struct {
	Tag   int
	Label string
	Grid  Grid
}

// New builds a fully initialized record. An empty label or an empty grid is
// rejected so that no partially initialized record ever reaches a displayer.
func New(tag int, label string, grid Grid) (*Record, error) {
	if label == "" {
		return nil, fmt.Errorf("record label must not be empty")
	}
	if grid.rows == 0 || grid.cols == 0 {
		return nil, fmt.Errorf("record grid must be initialized before use")
	}
	return &Record{Tag: tag, Label: label, Grid: grid}, nil
}
