// SPDX-License-Identifier: MIT

// csr.go — compressed sparse row storage for per-channel adjacency.
//
// Purpose:
//   - Hold one channel's directed edge multiplicities as a sparse matrix.
//   - Give the graph layer cheap row iteration, transposes, sums and
//     induced submatrices without materializing n×n buffers.
//
// Contract:
//   - Immutable after construction: "mutating" operations return new values.
//   - Column indices are strictly ascending within each row.
//   - Stored values are finite and non-zero (zero sums are dropped).
//   - Duplicate construction entries accumulate, matching multigraph
//     semantics where parallel edges sum into one multiplicity.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Entry is one (row, col, val) triplet for CSR construction.
type Entry struct {
	Row, Col int
	Val      float64
}

// CSR is a compressed-sparse-row float64 matrix.
//   - rowPtr has length r+1; row i owns colIdx/val[rowPtr[i]:rowPtr[i+1]].
//   - colIdx is strictly ascending within each row.
type CSR struct {
	r, c   int
	rowPtr []int
	colIdx []int
	val    []float64
}

// NewCSR builds an r×c sparse matrix from triplets.
// Duplicate (row, col) triplets accumulate; entries summing to exactly zero
// are not stored.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
//   - ErrOutOfRange when any entry lies outside the shape.
//   - ErrNaNInf when any entry value is NaN or +/-Inf.
//
// Complexity: Time O(nnz log nnz), Space O(nnz + r).
func NewCSR(rows, cols int, entries []Entry) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSR(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("NewCSR: entry (%d,%d): %w", e.Row, e.Col, ErrOutOfRange)
		}
		if math.IsNaN(e.Val) || math.IsInf(e.Val, 0) {
			return nil, fmt.Errorf("NewCSR: entry (%d,%d): %w", e.Row, e.Col, ErrNaNInf)
		}
	}

	// Sort a private copy by (row, col) so accumulation is a single pass.
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}

		return sorted[a].Col < sorted[b].Col
	})

	m := &CSR{
		r:      rows,
		c:      cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, 0, len(sorted)),
		val:    make([]float64, 0, len(sorted)),
	}
	i := 0
	for i < len(sorted) {
		row, col := sorted[i].Row, sorted[i].Col
		sum := 0.0
		for i < len(sorted) && sorted[i].Row == row && sorted[i].Col == col {
			sum += sorted[i].Val
			i++
		}
		if sum != 0 {
			m.colIdx = append(m.colIdx, col)
			m.val = append(m.val, sum)
			m.rowPtr[row+1]++
		}
	}
	for row := 0; row < rows; row++ {
		m.rowPtr[row+1] += m.rowPtr[row]
	}

	return m, nil
}

// NewCSRFromDense builds a CSR holding every non-zero of values, whose outer
// length fixes the row count and inner lengths must agree.
//
// Complexity: Time O(r*c), Space O(nnz + r).
func NewCSRFromDense(values [][]float64) (*CSR, error) {
	entries := make([]Entry, 0)
	cols := 0
	if len(values) > 0 {
		cols = len(values[0])
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("NewCSRFromDense: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrInvalidDimensions)
		}
		for j, v := range row {
			if v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Val: v})
			}
		}
	}

	return NewCSR(len(values), cols, entries)
}

// Rows returns the row count. Complexity: O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the value at (row, col); absent entries read as zero.
//
// Errors:
//   - ErrOutOfRange when (row, col) lies outside the shape.
//
// Complexity: O(log nnz_row).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], col)
	if k < hi && m.colIdx[k] == col {
		return m.val[k], nil
	}

	return 0, nil
}

// Row returns no-copy views of row's column indices and values, both ascending
// by column. Callers must not mutate the returned slices.
//
// Errors:
//   - ErrOutOfRange when row lies outside the shape.
//
// Complexity: O(1).
func (m *CSR) Row(row int) (cols []int, vals []float64, err error) {
	if row < 0 || row >= m.r {
		return nil, nil, fmt.Errorf("CSR.Row(%d): %w", row, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]

	return m.colIdx[lo:hi], m.val[lo:hi], nil
}

// RowSums returns the per-row sum of stored values.
//
// Complexity: Time O(nnz + r), Space O(r).
func (m *CSR) RowSums() []float64 {
	out := make([]float64, m.r)
	for row := 0; row < m.r; row++ {
		for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
			out[row] += m.val[k]
		}
	}

	return out
}

// ColSums returns the per-column sum of stored values.
//
// Complexity: Time O(nnz + c), Space O(c).
func (m *CSR) ColSums() []float64 {
	out := make([]float64, m.c)
	for k, col := range m.colIdx {
		out[col] += m.val[k]
	}

	return out
}

// Diagonal returns d[i] = m[i][i] for i < min(r,c), padded with zeros to r.
//
// Complexity: Time O(nnz + r), Space O(r).
func (m *CSR) Diagonal() []float64 {
	out := make([]float64, m.r)
	for row := 0; row < m.r; row++ {
		for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
			if m.colIdx[k] == row {
				out[row] = m.val[k]
				break
			}
		}
	}

	return out
}

// Transpose returns the c×r transpose using the counting scheme, so the
// result's rows come out sorted without an extra sort.
//
// Complexity: Time O(nnz + r + c), Space O(nnz + c).
func (m *CSR) Transpose() *CSR {
	out := &CSR{
		r:      m.c,
		c:      m.r,
		rowPtr: make([]int, m.c+1),
		colIdx: make([]int, len(m.colIdx)),
		val:    make([]float64, len(m.val)),
	}
	for _, col := range m.colIdx {
		out.rowPtr[col+1]++
	}
	for col := 0; col < m.c; col++ {
		out.rowPtr[col+1] += out.rowPtr[col]
	}
	next := make([]int, m.c)
	copy(next, out.rowPtr[:m.c])
	for row := 0; row < m.r; row++ {
		for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
			col := m.colIdx[k]
			pos := next[col]
			out.colIdx[pos] = row
			out.val[pos] = m.val[k]
			next[col]++
		}
	}

	return out
}

// Add returns the elementwise sum m + other as a new CSR.
// Entries cancelling to exactly zero are dropped.
//
// Errors:
//   - ErrShapeMismatch when the shapes disagree.
//
// Complexity: Time O(nnz_m + nnz_other), Space O(nnz_m + nnz_other).
func (m *CSR) Add(other *CSR) (*CSR, error) {
	if m.r != other.r || m.c != other.c {
		return nil, fmt.Errorf("CSR.Add: %dx%d vs %dx%d: %w",
			m.r, m.c, other.r, other.c, ErrShapeMismatch)
	}
	out := &CSR{
		r:      m.r,
		c:      m.c,
		rowPtr: make([]int, m.r+1),
		colIdx: make([]int, 0, len(m.colIdx)+len(other.colIdx)),
		val:    make([]float64, 0, len(m.val)+len(other.val)),
	}
	for row := 0; row < m.r; row++ {
		a, aEnd := m.rowPtr[row], m.rowPtr[row+1]
		b, bEnd := other.rowPtr[row], other.rowPtr[row+1]
		for a < aEnd || b < bEnd {
			var col int
			var sum float64
			switch {
			case b >= bEnd || (a < aEnd && m.colIdx[a] < other.colIdx[b]):
				col, sum = m.colIdx[a], m.val[a]
				a++
			case a >= aEnd || other.colIdx[b] < m.colIdx[a]:
				col, sum = other.colIdx[b], other.val[b]
				b++
			default: // equal columns
				col, sum = m.colIdx[a], m.val[a]+other.val[b]
				a++
				b++
			}
			if sum != 0 {
				out.colIdx = append(out.colIdx, col)
				out.val = append(out.val, sum)
			}
		}
		out.rowPtr[row+1] = len(out.colIdx)
	}

	return out, nil
}

// Boolean returns a mask with value 1 wherever m stores a non-zero,
// diagonal included, preserving the sparsity pattern.
//
// Complexity: Time O(nnz), Space O(nnz).
func (m *CSR) Boolean() *CSR {
	out := &CSR{
		r:      m.r,
		c:      m.c,
		rowPtr: make([]int, len(m.rowPtr)),
		colIdx: make([]int, len(m.colIdx)),
		val:    make([]float64, len(m.val)),
	}
	copy(out.rowPtr, m.rowPtr)
	copy(out.colIdx, m.colIdx)
	for i := range out.val {
		out.val[i] = 1
	}

	return out
}

// Submatrix gathers the given rows and columns, in the given order, into a
// new len(rowIdx)×len(colIdx) CSR. Indices may repeat; each occurrence
// contributes its own row or column.
//
// Errors:
//   - ErrOutOfRange when any index lies outside the shape.
//
// Complexity: Time O(Σ nnz_row log nnz_row + c), Space O(nnz' + c).
func (m *CSR) Submatrix(rowIdx, colIdx []int) (*CSR, error) {
	for _, r := range rowIdx {
		if r < 0 || r >= m.r {
			return nil, fmt.Errorf("CSR.Submatrix: row %d: %w", r, ErrOutOfRange)
		}
	}
	// colPos holds every new position of each old column, so a repeated
	// column index lands one copy per occurrence. Subgraph callers never
	// repeat indices; the slice stays length one for them.
	colPos := make(map[int][]int, len(colIdx))
	for newCol, oldCol := range colIdx {
		if oldCol < 0 || oldCol >= m.c {
			return nil, fmt.Errorf("CSR.Submatrix: col %d: %w", oldCol, ErrOutOfRange)
		}
		colPos[oldCol] = append(colPos[oldCol], newCol)
	}

	out := &CSR{
		r:      len(rowIdx),
		c:      len(colIdx),
		rowPtr: make([]int, len(rowIdx)+1),
	}
	type cell struct {
		col int
		val float64
	}
	scratch := make([]cell, 0)
	for newRow, oldRow := range rowIdx {
		scratch = scratch[:0]
		for k := m.rowPtr[oldRow]; k < m.rowPtr[oldRow+1]; k++ {
			for _, newCol := range colPos[m.colIdx[k]] {
				scratch = append(scratch, cell{col: newCol, val: m.val[k]})
			}
		}
		sort.Slice(scratch, func(a, b int) bool { return scratch[a].col < scratch[b].col })
		for _, cl := range scratch {
			out.colIdx = append(out.colIdx, cl.col)
			out.val = append(out.val, cl.val)
		}
		out.rowPtr[newRow+1] = len(out.colIdx)
	}

	return out, nil
}

// Dense materializes the matrix into a Dense copy.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *CSR) Dense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	for row := 0; row < m.r; row++ {
		for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
			out.data[row*m.c+m.colIdx[k]] = m.val[k]
		}
	}

	return out
}
