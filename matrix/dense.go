// SPDX-License-Identifier: MIT

// dense.go — row-major dense float64 storage with safe accessors.
//
// Purpose:
//   - Cache-friendly flat buffer with the explicit index formula i*cols + j.
//   - Safe public surface: At/Set return errors instead of panicking.
//   - No-copy views (Data, Row) for solver hot loops, documented as such.
//
// Determinism:
//   - Fixed zero initialization, fixed loop orders, no randomness.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Method tags used in error context (kept in constants for grep-ability).
const (
	ctxAt    = "At"
	ctxSet   = "Set"
	ctxRow   = "Row"
	ctxDense = "NewDense"
)

// denseErrorf attaches method context and the callsite coordinates to a
// sentinel error, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r, c hold the dimensions (both >= 0).
//   - data is a flat buffer of length r*c in row-major order (offset i*c + j).
//
// Zero-sized shapes are legal: assignment subproblems legitimately shrink to
// zero rows, and an empty Dense must flow through the solver unchanged.
type Dense struct {
	r, c int
	data []float64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix in row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxDense, rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix initialized from rows of values.
// The outer slice length must equal rows and every inner slice length cols.
//
// Errors:
//   - ErrInvalidDimensions on any length disagreement or negative shape.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFrom(values [][]float64) (*Dense, error) {
	r := len(values)
	c := 0
	if r > 0 {
		c = len(values[0])
	}
	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w",
				i, len(row), c, ErrInvalidDimensions)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// Rows returns the row count. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the column count. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At returns the value at (row, col) with bounds checking.
//
// Errors:
//   - ErrOutOfRange when (row, col) lies outside the shape.
//
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return d.data[row*d.c+col], nil
}

// Set stores v at (row, col) with bounds checking.
//
// Errors:
//   - ErrOutOfRange when (row, col) lies outside the shape.
//   - ErrNaNInf when v is NaN. +/-Inf is accepted: the assignment solver
//     uses +Inf as its forbidden-pair marker.
//
// Complexity: O(1).
func (d *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	d.data[row*d.c+col] = v

	return nil
}

// Data exposes the underlying row-major buffer as a no-copy view.
// Mutations through the returned slice are visible in the matrix; callers in
// hot loops own the bounds discipline the public accessors otherwise enforce.
//
// Complexity: O(1).
func (d *Dense) Data() []float64 { return d.data }

// Row returns the no-copy view of one row.
//
// Errors:
//   - ErrOutOfRange when row lies outside the shape.
//
// Complexity: O(1).
func (d *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= d.r {
		return nil, denseErrorf(ctxRow, row, 0, ErrOutOfRange)
	}

	return d.data[row*d.c : (row+1)*d.c], nil
}

// Fill sets every entry to v. NaN is rejected as in Set.
//
// Complexity: O(r*c).
func (d *Dense) Fill(v float64) error {
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, 0, 0, ErrNaNInf)
	}
	for i := range d.data {
		d.data[i] = v
	}

	return nil
}

// Clone returns an independent deep copy.
//
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense) Clone() *Dense {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	copy(out.data, d.data)

	return out
}

// Transpose returns a new c×r matrix with out[j][i] = d[i][j].
//
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense) Transpose() *Dense {
	out := &Dense{r: d.c, c: d.r, data: make([]float64, len(d.data))}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out
}

// String renders the matrix one bracketed row per line, for diagnostics.
//
// Complexity: O(r*c).
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		b.WriteString("[")
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", d.data[i*d.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
