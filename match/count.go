// count.go — exact isomorphism counting over a template node cover.
//
// The search assigns the cover nodes depth-first with edge checks against
// the partial image. Cover-free template nodes have edges only into the
// cover, so once every cover node is placed their feasible images are
// fixed sets and the branch total is an alldifferent count, no further
// recursion. Equivalence mode merges interchangeable cover-free nodes into
// groups before counting.

package match

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/isomatch/isomatch/alldiff"
)

// pairReq is one edge constraint between a node being placed and an
// already placed cover node.
type pairReq struct {
	depth int     // earlier cover depth the constraint points at
	ch    int     // template channel
	out   float64 // required multiplicity toward that image
	in    float64 // required multiplicity from that image
}

// selfReq is a self-loop demand on the node being placed.
type selfReq struct {
	ch    int
	count float64
}

// searchSpec is the immutable search plan, shared by all workers.
type searchSpec struct {
	p  *Problem
	tn int

	cover    []int // assignment order
	nonCover []int // ascending template indices

	pairReqs [][]pairReq // per cover depth, against depths before it
	selfReqs [][]selfReq // per cover depth
	leafReqs [][]pairReq // per nonCover position, against cover depths

	// groupCell, when non-nil, holds each template node's equivalence cell
	// for grouped leaf counting.
	groupCell []int
}

// searchState is one worker's mutable search state.
type searchState struct {
	images []int  // world image per cover depth
	used   []bool // world nodes taken by the partial image
	steps  int    // sparse context check counter
}

func newSearchState(s *searchSpec) *searchState {
	return &searchState{
		images: make([]int, len(s.cover)),
		used:   make([]bool, s.p.world.NumNodes()),
	}
}

func newSearchSpec(p *Problem, useEquivalence bool) (*searchSpec, error) {
	s := &searchSpec{p: p, tn: p.tmplt.NumNodes(), cover: p.tmplt.NodeCover()}

	inCover := make([]bool, s.tn)
	for _, u := range s.cover {
		inCover[u] = true
	}
	for i := 0; i < s.tn; i++ {
		if !inCover[i] {
			s.nonCover = append(s.nonCover, i)
		}
	}

	nch := p.tmplt.NChannels()
	s.pairReqs = make([][]pairReq, len(s.cover))
	s.selfReqs = make([][]selfReq, len(s.cover))
	for d, u := range s.cover {
		for d2 := 0; d2 < d; d2++ {
			v := s.cover[d2]
			for c := 0; c < nch; c++ {
				out, _ := p.tmpltAdj(c).At(u, v)
				in, _ := p.tmpltAdj(c).At(v, u)
				if out > 0 || in > 0 {
					s.pairReqs[d] = append(s.pairReqs[d], pairReq{depth: d2, ch: c, out: out, in: in})
				}
			}
		}
		for c := 0; c < nch; c++ {
			if m, _ := p.tmpltAdj(c).At(u, u); m > 0 {
				s.selfReqs[d] = append(s.selfReqs[d], selfReq{ch: c, count: m})
			}
		}
	}

	s.leafReqs = make([][]pairReq, len(s.nonCover))
	for k, i := range s.nonCover {
		for d, v := range s.cover {
			for c := 0; c < nch; c++ {
				out, _ := p.tmpltAdj(c).At(i, v)
				in, _ := p.tmpltAdj(c).At(v, i)
				if out > 0 || in > 0 {
					s.leafReqs[k] = append(s.leafReqs[k], pairReq{depth: d, ch: c, out: out, in: in})
				}
			}
		}
	}

	if useEquivalence {
		part, err := p.EquivalenceClasses()
		if err != nil {
			return nil, err
		}
		s.groupCell = part.CellOf
	}

	return s, nil
}

// feasible checks world node j as the image of cover depth `depth` against
// the already placed images.
func (s *searchSpec) feasible(st *searchState, depth, j int) bool {
	for _, r := range s.selfReqs[depth] {
		if v, _ := s.p.worldAdj(r.ch).At(j, j); v < r.count {
			return false
		}
	}
	for _, r := range s.pairReqs[depth] {
		img := st.images[r.depth]
		if r.out > 0 {
			if v, _ := s.p.worldAdj(r.ch).At(j, img); v < r.out {
				return false
			}
		}
		if r.in > 0 {
			if v, _ := s.p.worldAdj(r.ch).At(img, j); v < r.in {
				return false
			}
		}
	}

	return true
}

// count runs the depth-first search from the given cover depth.
func (s *searchSpec) count(ctx context.Context, st *searchState, depth int) (int64, error) {
	// Sparse context check (practically free).
	if st.steps++; st.steps&1023 == 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}
	if depth == len(s.cover) {
		return s.countLeaf(st)
	}

	u := s.cover[depth]
	var total int64
	for _, j := range s.p.cand.RowIndices(u) {
		if st.used[j] || !s.feasible(st, depth, j) {
			continue
		}
		st.used[j] = true
		st.images[depth] = j
		n, err := s.count(ctx, st, depth+1)
		st.used[j] = false
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

// leafSet returns the feasible, unused images of nonCover position k under
// the current cover image, ascending.
func (s *searchSpec) leafSet(st *searchState, k int) []int {
	var out []int
	for _, j := range s.p.cand.RowIndices(s.nonCover[k]) {
		if st.used[j] {
			continue
		}
		ok := true
		for _, r := range s.leafReqs[k] {
			img := st.images[r.depth]
			if r.out > 0 {
				if v, _ := s.p.worldAdj(r.ch).At(j, img); v < r.out {
					ok = false
					break
				}
			}
			if r.in > 0 {
				if v, _ := s.p.worldAdj(r.ch).At(img, j); v < r.in {
					ok = false
					break
				}
			}
		}
		if ok {
			out = append(out, j)
		}
	}

	return out
}

// countLeaf totals the completions of a fully placed cover.
func (s *searchSpec) countLeaf(st *searchState) (int64, error) {
	if len(s.nonCover) == 0 {
		return 1, nil
	}

	sets := make([][]int, len(s.nonCover))
	for k := range s.nonCover {
		sets[k] = s.leafSet(st, k)
		if len(sets[k]) == 0 {
			return 0, nil
		}
	}
	if s.groupCell == nil {
		return alldiff.CountIndexed(sets), nil
	}

	// Group interchangeable nodes: same equivalence cell, same image set.
	type gkey struct {
		cell int
		set  string
	}
	index := make(map[gkey]int)
	var gsets [][]int
	var gsizes []int
	for k, i := range s.nonCover {
		key := gkey{cell: s.groupCell[i], set: intsKey(sets[k])}
		gi, ok := index[key]
		if !ok {
			gi = len(gsets)
			index[key] = gi
			gsets = append(gsets, sets[k])
			gsizes = append(gsizes, 0)
		}
		gsizes[gi]++
	}

	return alldiff.CountGrouped(gsets, gsizes)
}

func intsKey(xs []int) string {
	var sb strings.Builder
	for k, x := range xs {
		if k > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}

// CountIsomorphisms returns the number of injective template-to-world
// mappings that realize every template edge with sufficient multiplicity
// in its channel. The count is exact with or without prior propagation;
// filters only shrink the search.
//
// Workers > 1 splits the first cover node's candidates across goroutines;
// the total is independent of the split. Cancellation surfaces as the
// context's error.
func (p *Problem) CountIsomorphisms(ctx context.Context, opts CountOptions) (int64, error) {
	s, err := newSearchSpec(p, opts.UseEquivalence)
	if err != nil {
		return 0, err
	}
	p.logf(opts.Verbose, "count: cover %d of %d nodes, %d candidates",
		len(s.cover), s.tn, p.cand.Count())

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var total int64
	if workers == 1 || len(s.cover) == 0 {
		total, err = s.count(ctx, newSearchState(s), 0)
	} else {
		total, err = s.countParallel(ctx, workers)
	}
	if err != nil {
		return 0, err
	}
	p.logf(opts.Verbose, "count: %d isomorphisms", total)

	return total, nil
}

// countParallel fans the first cover node's candidates out round-robin.
// Each worker owns its state; partial sums combine at the end, so the
// result never depends on scheduling.
func (s *searchSpec) countParallel(ctx context.Context, workers int) (int64, error) {
	top := s.p.cand.RowIndices(s.cover[0])
	if workers > len(top) {
		workers = len(top)
	}
	if workers < 2 {
		return s.count(ctx, newSearchState(s), 0)
	}

	totals := make([]int64, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			st := newSearchState(s)
			for k := w; k < len(top); k += workers {
				j := top[k]
				if !s.feasible(st, 0, j) {
					continue
				}
				st.used[j] = true
				st.images[0] = j
				n, err := s.count(ctx, st, 1)
				st.used[j] = false
				if err != nil {
					errs[w] = err

					return
				}
				totals[w] += n
			}
		}(w)
	}
	wg.Wait()

	var total int64
	for w := 0; w < workers; w++ {
		if errs[w] != nil {
			return 0, errs[w]
		}
		total += totals[w]
	}

	return total, nil
}
