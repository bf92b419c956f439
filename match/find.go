// find.go — full isomorphism enumeration.

package match

import "context"

// Mapping assigns each template node identity a world node identity.
type Mapping map[string]string

// FindIsomorphisms enumerates every isomorphism as a name-to-name mapping.
// The order is deterministic: cover nodes take candidates ascending, then
// the remaining template nodes in index order, values ascending. The slice
// is nil when nothing matches.
//
// Enumeration materializes every result; use CountIsomorphisms when only
// the number matters.
func (p *Problem) FindIsomorphisms(ctx context.Context) ([]Mapping, error) {
	s, err := newSearchSpec(p, false)
	if err != nil {
		return nil, err
	}
	tNames, wNames := p.tmplt.Nodes(), p.world.Nodes()

	st := newSearchState(s)
	var found []Mapping
	emit := func(choice []int) {
		m := make(Mapping, s.tn)
		for d, u := range s.cover {
			m[tNames[u]] = wNames[st.images[d]]
		}
		for k, i := range s.nonCover {
			m[tNames[i]] = wNames[choice[k]]
		}
		found = append(found, m)
	}
	if err := s.enumerate(ctx, st, 0, emit); err != nil {
		return nil, err
	}
	p.logf(false, "find: %d isomorphisms", len(found))

	return found, nil
}

// enumerate mirrors count but walks into every completion.
func (s *searchSpec) enumerate(ctx context.Context, st *searchState, depth int, emit func(choice []int)) error {
	if st.steps++; st.steps&1023 == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if depth == len(s.cover) {
		return s.enumerateLeaf(ctx, st, emit)
	}

	u := s.cover[depth]
	for _, j := range s.p.cand.RowIndices(u) {
		if st.used[j] || !s.feasible(st, depth, j) {
			continue
		}
		st.used[j] = true
		st.images[depth] = j
		err := s.enumerate(ctx, st, depth+1, emit)
		st.used[j] = false
		if err != nil {
			return err
		}
	}

	return nil
}

// enumerateLeaf walks the alldifferent assignments of the cover-free nodes.
func (s *searchSpec) enumerateLeaf(ctx context.Context, st *searchState, emit func(choice []int)) error {
	sets := make([][]int, len(s.nonCover))
	for k := range s.nonCover {
		sets[k] = s.leafSet(st, k)
		if len(sets[k]) == 0 {
			return nil
		}
	}

	choice := make([]int, len(s.nonCover))
	var rec func(k int) error
	rec = func(k int) error {
		if k == len(s.nonCover) {
			emit(choice)

			return nil
		}
		if st.steps++; st.steps&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for _, j := range sets[k] {
			if st.used[j] {
				continue
			}
			st.used[j] = true
			choice[k] = j
			err := rec(k + 1)
			st.used[j] = false
			if err != nil {
				return err
			}
		}

		return nil
	}

	return rec(0)
}
