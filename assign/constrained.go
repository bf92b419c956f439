// constrained.go — forced-pair assignment costs.
//
// ConstrainedCost answers one "what if row i must take column j" query with
// a fresh sub-solve. ConstrainedCosts answers all r*c of them from a single
// base solve: forcing (i, j) frees row i's base column and steals j from
// whichever row held it, and almost every repair is a one- or two-column
// swap readable off precomputed cheapest-column tables. Only tie patterns
// the tables cannot disambiguate fall back to a real sub-solve, restricted
// to the columns that can ever participate in an optimal repair.

package assign

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/isomatch/isomatch/matrix"
)

// ConstrainedCost returns the minimum total assignment cost of costs subject
// to row taking col, or +Inf when no complete assignment honors the
// constraint.
//
// Errors:
//   - ErrBadShape when costs is nil or (row, col) lies outside it.
//   - ErrInvalidCost when any entry is NaN or -Inf.
//
// Complexity: one LSAP solve on an (r-1)x(c-1) submatrix.
func ConstrainedCost(row, col int, costs *matrix.Dense) (float64, error) {
	if err := validateCosts("ConstrainedCost", costs); err != nil {
		return 0, err
	}
	r, c := costs.Rows(), costs.Cols()
	if row < 0 || row >= r || col < 0 || col >= c {
		return 0, fmt.Errorf("ConstrainedCost(%d,%d): %w", row, col, ErrBadShape)
	}

	return constrainedCostFlat(costs.Data(), r, c, row, col)
}

// ConstrainedCosts returns the full matrix of ConstrainedCost values:
// out[i][j] is the cheapest total assignment with row i forced onto column
// j, +Inf where that forcing is infeasible. When the unconstrained problem
// itself is infeasible every entry is +Inf and no error is returned.
//
// The result equals the naive cell-by-cell computation exactly, including
// +Inf placement; it is just amortized over one base solve.
//
// Errors:
//   - ErrBadShape when costs is nil.
//   - ErrInvalidCost when any entry is NaN or -Inf.
//
// Complexity: Time O(r^2 * c) typical, Space O(r*c).
func ConstrainedCosts(costs *matrix.Dense) (*matrix.Dense, error) {
	if err := validateCosts("ConstrainedCosts", costs); err != nil {
		return nil, err
	}

	return constrainedCosts(costs)
}

func constrainedCosts(costs *matrix.Dense) (*matrix.Dense, error) {
	r, c := costs.Rows(), costs.Cols()
	if r > c {
		// Normalize to the tall-in-columns orientation and mirror back.
		flipped, err := constrainedCosts(costs.Transpose())
		if err != nil {
			return nil, err
		}

		return flipped.Transpose(), nil
	}

	data := costs.Data()
	col4row, err := solveRect(r, c, data)
	if errors.Is(err, ErrInfeasible) {
		out, derr := matrix.NewDense(r, c)
		if derr != nil {
			return nil, derr
		}
		if ferr := out.Fill(math.Inf(1)); ferr != nil {
			return nil, ferr
		}

		return out, nil
	}
	if err != nil {
		return nil, err
	}

	e := &constrainedEngine{r: r, c: c, data: data, col4row: col4row}

	return e.run()
}

// constrainedEngine carries the shared tables of one ConstrainedCosts call.
type constrainedEngine struct {
	r, c int
	data []float64 // row-major costs, read-only

	col4row   []int     // base assignment
	lsapCosts []float64 // data[i][col4row[i]]
	total     float64   // base total

	best, second, third []int // three cheapest columns per row
	potential           []int // columns that can appear in any repair

	out     *matrix.Dense
	t       []float64 // out's flat buffer
	colIdxs []int     // per-row working assignment, -1 marks "being forced"
}

func (e *constrainedEngine) run() (*matrix.Dense, error) {
	e.lsapCosts = make([]float64, e.r)
	for i := 0; i < e.r; i++ {
		e.lsapCosts[i] = e.data[i*e.c+e.col4row[i]]
		e.total += e.lsapCosts[i]
	}
	e.cheapestColumns()
	e.potentialColumns()

	var err error
	e.out, err = matrix.NewDense(e.r, e.c)
	if err != nil {
		return nil, err
	}
	e.t = e.out.Data()

	// Default: forcing (i, j) swaps row i from its base column onto j and
	// nothing else moves.
	for i := 0; i < e.r; i++ {
		base := e.total - e.lsapCosts[i]
		for j := 0; j < e.c; j++ {
			e.t[i*e.c+j] = base + e.data[i*e.c+j]
		}
	}

	e.colIdxs = make([]int, e.r)
	for i := 0; i < e.r; i++ {
		if err := e.forceRow(i); err != nil {
			return nil, err
		}
	}

	// Forcing a base pair changes nothing.
	for i := 0; i < e.r; i++ {
		e.t[i*e.c+e.col4row[i]] = e.total
	}

	return e.out, nil
}

// cheapestColumns fills the best/second/third tables, first-index ties.
func (e *constrainedEngine) cheapestColumns() {
	e.best = make([]int, e.r)
	e.second = make([]int, e.r)
	e.third = make([]int, e.r)

	work := make([]float64, len(e.data))
	copy(work, e.data)
	for i := 0; i < e.r; i++ {
		e.best[i] = argminRow(work, i, e.c)
		work[i*e.c+e.best[i]] = math.Inf(1)
	}
	for i := 0; i < e.r; i++ {
		e.second[i] = argminRow(work, i, e.c)
		work[i*e.c+e.second[i]] = math.Inf(1)
	}
	for i := 0; i < e.r; i++ {
		e.third[i] = argminRow(work, i, e.c)
	}
}

// potentialColumns collects, sorted ascending, the columns any repair can
// use: the base columns plus, per row, its cheapest currently-unused column.
// With a square matrix every column qualifies.
func (e *constrainedEngine) potentialColumns() {
	if e.r == e.c {
		e.potential = make([]int, e.c)
		for j := range e.potential {
			e.potential[j] = j
		}

		return
	}

	inBase := make([]bool, e.c)
	for _, j := range e.col4row {
		inBase[j] = true
	}
	unused := make([]int, 0, e.c-e.r)
	for j := 0; j < e.c; j++ {
		if !inBase[j] {
			unused = append(unused, j)
		}
	}

	keep := make(map[int]struct{}, e.r*2)
	for _, j := range e.col4row {
		keep[j] = struct{}{}
	}
	for i := 0; i < e.r; i++ {
		bestU := unused[0]
		for _, j := range unused[1:] {
			if e.data[i*e.c+j] < e.data[i*e.c+bestU] {
				bestU = j
			}
		}
		keep[bestU] = struct{}{}
	}

	e.potential = make([]int, 0, len(keep))
	for j := range keep {
		e.potential = append(e.potential, j)
	}
	sort.Ints(e.potential)
}

// forceRow fills row i of the output: every cell where forcing (i, j)
// disturbs more than row i itself.
func (e *constrainedEngine) forceRow(i int) error {
	freed := e.col4row[i]
	copy(e.colIdxs, e.col4row)
	e.colIdxs[i] = -1

	// If the freed column can undercut another row's base cost, the rows
	// other than i re-optimize over the base columns; otherwise they stay.
	improves := false
	for k := 0; k < e.r; k++ {
		if e.data[k*e.c+freed] < e.lsapCosts[k] {
			improves = true
			break
		}
	}
	if improves {
		subTotal, err := e.reoptimizeWithout(i)
		if err != nil {
			return err
		}
		for j := 0; j < e.c; j++ {
			e.t[i*e.c+j] = e.data[i*e.c+j] + subTotal
		}
	}

	// Exactly one base column is now left over; forcing row i onto it is a
	// complete assignment whose cost we can read off directly.
	leftover := e.leftoverColumn()
	e.colIdxs[i] = leftover
	e.t[i*e.c+leftover] = e.assignedSum()
	e.colIdxs[i] = -1

	for otherI := 0; otherI < e.r; otherI++ {
		if otherI == i {
			continue
		}
		if err := e.stealColumn(i, otherI); err != nil {
			return err
		}
	}

	return nil
}

// reoptimizeWithout solves the assignment of every row but i over the base
// columns (in base order) and installs the result into colIdxs.
func (e *constrainedEngine) reoptimizeWithout(i int) (float64, error) {
	sub := make([]float64, (e.r-1)*e.r)
	rowOf := make([]int, 0, e.r-1)
	for k := 0; k < e.r; k++ {
		if k != i {
			rowOf = append(rowOf, k)
		}
	}
	for sk, orig := range rowOf {
		for q, j := range e.col4row {
			sub[sk*e.r+q] = e.data[orig*e.c+j]
		}
	}

	subCol4row, err := solveRect(e.r-1, e.r, sub)
	if err != nil {
		// The base assignment minus row i is feasible here, so failure means
		// a broken input rather than a legitimate infeasibility.
		return 0, err
	}
	var subTotal float64
	for sk, orig := range rowOf {
		subTotal += sub[sk*e.r+subCol4row[sk]]
		e.colIdxs[orig] = e.col4row[subCol4row[sk]]
	}

	return subTotal, nil
}

// leftoverColumn returns the smallest base column no other row is using.
func (e *constrainedEngine) leftoverColumn() int {
	used := make(map[int]struct{}, e.r)
	for _, j := range e.colIdxs {
		if j >= 0 {
			used[j] = struct{}{}
		}
	}
	leftover := -1
	for _, j := range e.col4row {
		if _, ok := used[j]; !ok && (leftover < 0 || j < leftover) {
			leftover = j
		}
	}

	return leftover
}

// stealColumn fills t[i][stolen] where stolen is otherI's current column:
// row otherI must move to its next viable cheapest column, unless ties make
// that ambiguous, in which case a restricted sub-solve decides.
func (e *constrainedEngine) stealColumn(i, otherI int) error {
	stolen := e.colIdxs[otherI]
	e.colIdxs[i] = stolen
	e.colIdxs[otherI] = -1

	b1, b2, b3 := e.best[otherI], e.second[otherI], e.third[otherI]
	cb1 := e.data[otherI*e.c+b1]
	cb2 := e.data[otherI*e.c+b2]
	cb3 := e.data[otherI*e.c+b3]

	switch {
	case b1 != stolen && !containsInt(e.colIdxs, b1) &&
		(cb1 != cb2 || !containsInt(e.colIdxs, b2)):
		e.colIdxs[otherI] = b1
		e.t[i*e.c+stolen] = e.assignedSum()
	case !containsInt(e.colIdxs, b2) &&
		(cb2 != cb3 || !containsInt(e.colIdxs, b3)):
		e.colIdxs[otherI] = b2
		e.t[i*e.c+stolen] = e.assignedSum()
	default:
		// Ambiguous ties: decide with a forced-pair solve over the
		// potential columns only.
		val, err := e.fallback(i, stolen)
		if err != nil {
			return err
		}
		e.t[i*e.c+stolen] = val
	}

	e.colIdxs[otherI] = stolen
	e.colIdxs[i] = -1

	return nil
}

// fallback computes t[i][stolen] the direct way on the potential-column
// gather of the cost matrix.
func (e *constrainedEngine) fallback(i, stolen int) (float64, error) {
	p := len(e.potential)
	gathered := make([]float64, e.r*p)
	subJ := -1
	for q, j := range e.potential {
		if j == stolen {
			subJ = q
		}
		for k := 0; k < e.r; k++ {
			gathered[k*p+q] = e.data[k*e.c+j]
		}
	}

	return constrainedCostFlat(gathered, e.r, p, i, subJ)
}

// assignedSum totals the working assignment; colIdxs must be complete.
func (e *constrainedEngine) assignedSum() float64 {
	var sum float64
	for k, j := range e.colIdxs {
		sum += e.data[k*e.c+j]
	}

	return sum
}

// constrainedCostFlat is the uncached forced-pair cost over a flat buffer:
// solve the matrix minus row i and column j, then add cell (i, j).
// Infeasible sub-problems yield +Inf, not an error.
func constrainedCostFlat(data []float64, r, c, i, j int) (float64, error) {
	sub := make([]float64, (r-1)*(c-1))
	for k, sk := 0, 0; k < r; k++ {
		if k == i {
			continue
		}
		for q, sq := 0, 0; q < c; q++ {
			if q == j {
				continue
			}
			sub[sk*(c-1)+sq] = data[k*c+q]
			sq++
		}
		sk++
	}

	total, err := lsapTotal(r-1, c-1, sub)
	if errors.Is(err, ErrInfeasible) {
		return math.Inf(1), nil
	}
	if err != nil {
		return 0, err
	}

	return total + data[i*c+j], nil
}

// lsapTotal solves either orientation of a flat matrix and returns only the
// optimal total.
func lsapTotal(nr, nc int, data []float64) (float64, error) {
	if nr <= nc {
		col4row, err := solveRect(nr, nc, data)
		if err != nil {
			return 0, err
		}
		var total float64
		for i, j := range col4row {
			total += data[i*nc+j]
		}

		return total, nil
	}

	flipped := make([]float64, len(data))
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			flipped[j*nr+i] = data[i*nc+j]
		}
	}
	col4row, err := solveRect(nc, nr, flipped)
	if err != nil {
		return 0, err
	}
	var total float64
	for j, i := range col4row {
		total += flipped[j*nr+i]
	}

	return total, nil
}

// argminRow returns the first index of the minimum of row i in a flat
// row-major buffer with c columns.
func argminRow(data []float64, i, c int) int {
	best := 0
	bestVal := data[i*c]
	for j := 1; j < c; j++ {
		if v := data[i*c+j]; v < bestVal {
			best = j
			bestVal = v
		}
	}

	return best
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
