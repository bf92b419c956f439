// edgewise.go — arc consistency over individual template edges.

package match

import "github.com/isomatch/isomatch/matrix"

// EdgewiseFilter enforces, per template edge i1 -> i2 with multiplicity m,
// that every candidate of i1 has at least one candidate of i2 among its
// world successors with multiplicity >= m, and symmetrically for i2's
// candidates among predecessors. Self loops are LoopsFilter's concern and
// are skipped here.
type EdgewiseFilter struct{}

// Name implements Filter.
func (EdgewiseFilter) Name() string { return "edgewise" }

// Apply implements Filter.
//
// Complexity: O(template edges * candidates * world degree).
func (EdgewiseFilter) Apply(p *Problem) (bool, error) {
	changed := false
	for c := 0; c < p.tmplt.NChannels(); c++ {
		tAdj := p.tmpltAdj(c)
		wAdj := p.worldAdj(c)
		wRev := p.worldRev[c]
		for i1 := 0; i1 < tAdj.Rows(); i1++ {
			cols, vals, _ := tAdj.Row(i1)
			for k, i2 := range cols {
				if i2 == i1 {
					continue
				}
				if pruneArc(p.cand, i1, i2, wAdj, vals[k]) {
					changed = true
				}
				if pruneArc(p.cand, i2, i1, wRev, vals[k]) {
					changed = true
				}
			}
		}
	}

	return changed, nil
}

// pruneArc clears candidates of `from` with no adj-adjacent candidate of
// `to` of multiplicity >= need, reporting whether anything was cleared.
func pruneArc(cand *Bitmat, from, to int, adj *matrix.CSR, need float64) bool {
	changed := false
	for _, j := range cand.RowIndices(from) {
		supported := false
		cols, vals, _ := adj.Row(j)
		for k, j2 := range cols {
			if vals[k] >= need && cand.Get(to, j2) {
				supported = true
				break
			}
		}
		if !supported {
			cand.Clear(from, j)
			changed = true
		}
	}

	return changed
}
