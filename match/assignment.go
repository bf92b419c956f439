// assignment.go — the global assignment bound.

package match

import (
	"math"

	"github.com/isomatch/isomatch/assign"
	"github.com/isomatch/isomatch/matrix"
)

// AssignmentFilter couples all rows at once: each candidate pair is priced
// at its degree deficit, non-candidates at +Inf, and forcing template node
// i onto world node j must extend to a complete injective assignment whose
// total cost stays within the Problem's threshold. With the default
// threshold 0 this keeps exactly the candidates compatible with some
// deficit-free global assignment.
type AssignmentFilter struct{}

// Name implements Filter.
func (AssignmentFilter) Name() string { return "assignment" }

// Apply implements Filter.
//
// Complexity: dominated by one ConstrainedCosts call on a template-nodes by
// world-nodes matrix.
func (AssignmentFilter) Apply(p *Problem) (bool, error) {
	tn, wn := p.tmplt.NumNodes(), p.world.NumNodes()
	if tn == 0 || wn == 0 {
		return false, nil
	}

	costs, err := matrix.NewDense(tn, wn)
	if err != nil {
		return false, err
	}
	if err = costs.Fill(math.Inf(1)); err != nil {
		return false, err
	}

	tIn, tOut := p.tmplt.InDegrees(), p.tmplt.OutDegrees()
	wIn, wOut := p.world.InDegrees(), p.world.OutDegrees()
	for i := 0; i < tn; i++ {
		for _, j := range p.cand.RowIndices(i) {
			deficit := 0.0
			for c, w := range p.worldCh {
				if d := tIn[i][c] - wIn[j][w]; d > 0 {
					deficit += d
				}
				if d := tOut[i][c] - wOut[j][w]; d > 0 {
					deficit += d
				}
			}
			if err = costs.Set(i, j, deficit); err != nil {
				return false, err
			}
		}
	}

	forced, err := assign.ConstrainedCosts(costs)
	if err != nil {
		return false, err
	}

	changed := false
	for i := 0; i < tn; i++ {
		for _, j := range p.cand.RowIndices(i) {
			v, aerr := forced.At(i, j)
			if aerr != nil {
				return changed, aerr
			}
			if v > p.threshold {
				p.cand.Clear(i, j)
				changed = true
			}
		}
	}

	return changed, nil
}
