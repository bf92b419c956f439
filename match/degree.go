// degree.go — per-channel degree screening.

package match

// DegreeFilter clears candidate (i, j) when template node i has more
// in-edges or out-edges than world node j in any channel. Self loops are
// excluded from degrees and handled by LoopsFilter.
type DegreeFilter struct{}

// Name implements Filter.
func (DegreeFilter) Name() string { return "degree" }

// Apply implements Filter.
//
// Complexity: O(candidates * channels).
func (DegreeFilter) Apply(p *Problem) (bool, error) {
	tIn, tOut := p.tmplt.InDegrees(), p.tmplt.OutDegrees()
	wIn, wOut := p.world.InDegrees(), p.world.OutDegrees()

	changed := false
	for i := 0; i < p.tmplt.NumNodes(); i++ {
		for _, j := range p.cand.RowIndices(i) {
			for c, w := range p.worldCh {
				if tIn[i][c] > wIn[j][w] || tOut[i][c] > wOut[j][w] {
					p.cand.Clear(i, j)
					changed = true
					break
				}
			}
		}
	}

	return changed, nil
}

// LoopsFilter clears candidate (i, j) when template node i carries more
// self-edges than world node j in some channel.
type LoopsFilter struct{}

// Name implements Filter.
func (LoopsFilter) Name() string { return "loops" }

// Apply implements Filter.
//
// Complexity: O(candidates * channels).
func (LoopsFilter) Apply(p *Problem) (bool, error) {
	tSelf := p.tmplt.SelfEdges()
	wSelf := p.world.SelfEdges()

	changed := false
	for i := 0; i < p.tmplt.NumNodes(); i++ {
		for _, j := range p.cand.RowIndices(i) {
			for c, w := range p.worldCh {
				if tSelf[i][c] > wSelf[j][w] {
					p.cand.Clear(i, j)
					changed = true
					break
				}
			}
		}
	}

	return changed, nil
}
