// lsap.go — rectangular linear sum assignment by shortest augmenting paths.
//
// The engine keeps dual potentials u (rows) and v (columns) and grows the
// assignment one row at a time: a Dijkstra-like scan over reduced costs
// finds the cheapest augmenting path to an unassigned column, the duals are
// updated along the visited sets, and the path is flipped. Forbidden pairs
// are +Inf entries; if every path to a fresh column is +Inf the instance is
// infeasible.

package assign

import (
	"fmt"
	"math"
	"sort"

	"github.com/isomatch/isomatch/matrix"
)

// Assignment is a complete minimum-cost row-to-column matching.
// Rows is ascending; Cols[k] is the column taken by Rows[k]; both have
// length min(r, c) of the solved matrix.
type Assignment struct {
	Rows, Cols []int
	Total      float64
}

// Solve computes a minimum-total-cost assignment of the rows of costs to
// distinct columns (or columns to rows when the matrix is wide the other
// way: only min(r, c) pairs are produced either way).
//
// Errors:
//   - ErrBadShape when costs is nil.
//   - ErrInvalidCost when any entry is NaN or -Inf.
//   - ErrInfeasible when no complete assignment avoids +Inf pairs.
//
// Complexity: Time O(min(r,c)^2 * max(r,c)), Space O(r + c).
func Solve(costs *matrix.Dense) (*Assignment, error) {
	if err := validateCosts("Solve", costs); err != nil {
		return nil, err
	}
	r, c := costs.Rows(), costs.Cols()

	if r <= c {
		col4row, err := solveRect(r, c, costs.Data())
		if err != nil {
			return nil, err
		}
		out := &Assignment{Rows: make([]int, r), Cols: col4row}
		for i := 0; i < r; i++ {
			out.Rows[i] = i
			out.Total += costs.Data()[i*c+col4row[i]]
		}

		return out, nil
	}

	// Wide-side rows: solve the transpose, then report pairs by ascending
	// original row.
	tr := costs.Transpose()
	col4row, err := solveRect(c, r, tr.Data())
	if err != nil {
		return nil, err
	}
	pairs := make([][2]int, c)
	for j := 0; j < c; j++ {
		pairs[j] = [2]int{col4row[j], j}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a][0] < pairs[b][0] })
	out := &Assignment{Rows: make([]int, c), Cols: make([]int, c)}
	for k, p := range pairs {
		out.Rows[k] = p[0]
		out.Cols[k] = p[1]
		out.Total += costs.Data()[p[0]*c+p[1]]
	}

	return out, nil
}

// validateCosts rejects nil matrices and NaN/-Inf entries.
func validateCosts(method string, costs *matrix.Dense) error {
	if costs == nil {
		return fmt.Errorf("%s(nil): %w", method, ErrBadShape)
	}
	for _, v := range costs.Data() {
		if math.IsNaN(v) || math.IsInf(v, -1) {
			return fmt.Errorf("%s: entry %v: %w", method, v, ErrInvalidCost)
		}
	}

	return nil
}

// lsapEngine holds the scratch state of one solve over a flat row-major
// cost buffer. nr <= nc always (callers transpose beforehand).
type lsapEngine struct {
	nr, nc int
	cost   []float64

	u, v      []float64 // dual potentials
	spc       []float64 // shortest path cost to each column
	path      []int     // predecessor row per column
	col4row   []int
	row4col   []int
	remaining []int
	inSR      []bool
	inSC      []bool
}

// solveRect assigns every row to a distinct column, minimizing total cost.
// Precondition: nr <= nc; cost has nr*nc entries. Zero-row or zero-column
// shapes return an empty assignment.
//
// Returns col4row of length nr, or ErrInfeasible.
func solveRect(nr, nc int, cost []float64) ([]int, error) {
	if nr == 0 || nc == 0 {
		return []int{}, nil
	}

	e := &lsapEngine{
		nr:        nr,
		nc:        nc,
		cost:      cost,
		u:         make([]float64, nr),
		v:         make([]float64, nc),
		spc:       make([]float64, nc),
		path:      make([]int, nc),
		col4row:   make([]int, nr),
		row4col:   make([]int, nc),
		remaining: make([]int, nc),
		inSR:      make([]bool, nr),
		inSC:      make([]bool, nc),
	}
	for j := 0; j < nc; j++ {
		e.row4col[j] = -1
	}
	for i := 0; i < nr; i++ {
		e.col4row[i] = -1
	}

	for curRow := 0; curRow < nr; curRow++ {
		sink, minVal, err := e.augmentingPath(curRow)
		if err != nil {
			return nil, err
		}

		// Update duals over the visited row and column sets.
		e.u[curRow] += minVal
		for i := 0; i < nr; i++ {
			if e.inSR[i] && i != curRow {
				e.u[i] += minVal - e.spc[e.col4row[i]]
			}
		}
		for j := 0; j < nc; j++ {
			if e.inSC[j] {
				e.v[j] -= minVal - e.spc[j]
			}
		}

		// Flip the augmenting path back to curRow.
		j := sink
		for {
			i := e.path[j]
			e.row4col[j] = i
			e.col4row[i], j = j, e.col4row[i]
			if i == curRow {
				break
			}
		}
	}

	return e.col4row, nil
}

// augmentingPath runs the Dijkstra-like scan from curRow until it reaches an
// unassigned column, returning that sink and the path cost.
func (e *lsapEngine) augmentingPath(curRow int) (sink int, minVal float64, err error) {
	numRemaining := e.nc
	for it := 0; it < e.nc; it++ {
		// Reverse fill keeps a constant cost matrix on the identity
		// assignment: with swap-removal below, ties resolve low-column-first.
		e.remaining[it] = e.nc - it - 1
		e.inSC[it] = false
		e.spc[it] = math.Inf(1)
	}
	for i := 0; i < e.nr; i++ {
		e.inSR[i] = false
	}

	sink = -1
	i := curRow
	for sink == -1 {
		index := -1
		lowest := math.Inf(1)
		e.inSR[i] = true

		for it := 0; it < numRemaining; it++ {
			j := e.remaining[it]
			r := minVal + e.cost[i*e.nc+j] - e.u[i] - e.v[j]
			if r < e.spc[j] {
				e.path[j] = i
				e.spc[j] = r
			}
			// On ties prefer a column that is still unassigned: it ends the
			// scan with a fresh sink instead of a longer alternating path.
			if e.spc[j] < lowest || (e.spc[j] == lowest && e.row4col[j] == -1) {
				lowest = e.spc[j]
				index = it
			}
		}

		minVal = lowest
		if math.IsInf(minVal, 1) {
			return -1, 0, ErrInfeasible
		}

		j := e.remaining[index]
		if e.row4col[j] == -1 {
			sink = j
		} else {
			i = e.row4col[j]
		}
		e.inSC[j] = true
		numRemaining--
		e.remaining[index] = e.remaining[numRemaining]
	}

	return sink, minVal, nil
}
