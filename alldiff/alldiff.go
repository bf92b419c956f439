// alldiff.go — alldifferent solution counting.

package alldiff

import (
	"fmt"
	"sort"
)

// Count returns the number of ways to give every key one value from its
// candidate list with no value chosen twice. Candidate lists are read as
// sets: order and duplicates are ignored. An empty input has exactly one
// solution, a key with an empty candidate list has none.
//
// Complexity: exponential in the worst case; components are counted
// independently and branching always takes the most constrained variable,
// which keeps realistic inputs shallow.
func Count(cands map[string][]string) int64 {
	keys := make([]string, 0, len(cands))
	for k := range cands {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	valID := make(map[string]int, len(keys))
	sets := make([][]int, len(keys))
	for i, k := range keys {
		for _, v := range cands[k] {
			id, ok := valID[v]
			if !ok {
				id = len(valID)
				valID[v] = id
			}
			sets[i] = append(sets[i], id)
		}
	}

	return CountIndexed(sets)
}

// CountIndexed is Count over integer-valued candidate sets, one variable
// per slice.
func CountIndexed(sets [][]int) int64 {
	sizes := make([]int, len(sets))
	for i := range sizes {
		sizes[i] = 1
	}
	n, _ := CountGrouped(sets, sizes) // lengths match, cannot fail

	return n
}

// CountGrouped counts alldifferent solutions where sizes[g] interchangeable
// variables share the candidate set sets[g]. The result equals CountIndexed
// on the expanded system: per group it enumerates unordered selections of
// sizes[g] distinct values and multiplies by sizes[g] factorial for the
// orderings the expansion would have produced.
//
// Errors:
//   - ErrGroupMismatch when the slices differ in length or a size is < 1.
func CountGrouped(sets [][]int, sizes []int) (int64, error) {
	if len(sets) != len(sizes) {
		return 0, fmt.Errorf("CountGrouped: %d sets, %d sizes: %w",
			len(sets), len(sizes), ErrGroupMismatch)
	}
	for g, m := range sizes {
		if m < 1 {
			return 0, fmt.Errorf("CountGrouped: group %d has size %d: %w",
				g, m, ErrGroupMismatch)
		}
	}

	clean := make([][]int, len(sets))
	for g, s := range sets {
		clean[g] = dedupeSorted(s)
	}

	total := int64(1)
	for _, comp := range components(clean) {
		e := newGroupEngine(clean, sizes, comp)
		total *= e.count()
		if total == 0 {
			return 0, nil
		}
	}
	for _, m := range sizes {
		total *= factorial(m)
	}

	return total, nil
}

// components groups variables transitively connected through shared
// candidate values, each component listed by ascending first member.
func components(sets [][]int) [][]int {
	byVal := make(map[int][]int)
	for g, s := range sets {
		for _, v := range s {
			byVal[v] = append(byVal[v], g)
		}
	}

	seen := make([]bool, len(sets))
	var comps [][]int
	for g := range sets {
		if seen[g] {
			continue
		}
		comp := []int{g}
		seen[g] = true
		for at := 0; at < len(comp); at++ {
			for _, v := range sets[comp[at]] {
				for _, h := range byVal[v] {
					if !seen[h] {
						seen[h] = true
						comp = append(comp, h)
					}
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// groupEngine backtracks over one component.
type groupEngine struct {
	sets [][]int // sorted unique candidates, component groups only
	need []int
	used map[int]struct{}
}

func newGroupEngine(sets [][]int, sizes []int, comp []int) *groupEngine {
	e := &groupEngine{
		sets: make([][]int, len(comp)),
		need: make([]int, len(comp)),
		used: make(map[int]struct{}),
	}
	for k, g := range comp {
		e.sets[k] = sets[g]
		e.need[k] = sizes[g]
	}

	return e
}

// count returns the number of completions of the current partial selection.
func (e *groupEngine) count() int64 {
	// Most constrained group first: fewest spare candidates. A group that
	// cannot cover its demand kills the whole branch.
	best, bestSlack := -1, 0
	for g, s := range e.sets {
		if e.need[g] == 0 {
			continue
		}
		avail := 0
		for _, v := range s {
			if _, taken := e.used[v]; !taken {
				avail++
			}
		}
		if avail < e.need[g] {
			return 0
		}
		if slack := avail - e.need[g]; best == -1 || slack < bestSlack {
			best, bestSlack = g, slack
		}
	}
	if best == -1 {
		return 1
	}

	avail := make([]int, 0, len(e.sets[best]))
	for _, v := range e.sets[best] {
		if _, taken := e.used[v]; !taken {
			avail = append(avail, v)
		}
	}

	var total int64
	var choose func(start, left int)
	choose = func(start, left int) {
		if left == 0 {
			saved := e.need[best]
			e.need[best] = 0
			total += e.count()
			e.need[best] = saved

			return
		}
		for k := start; k+left <= len(avail); k++ {
			e.used[avail[k]] = struct{}{}
			choose(k+1, left-1)
			delete(e.used, avail[k])
		}
	}
	choose(0, e.need[best])

	return total
}

func dedupeSorted(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	sort.Ints(out)
	w := 0
	for i, v := range out {
		if i == 0 || v != out[w-1] {
			out[w] = v
			w++
		}
	}

	return out[:w]
}

func factorial(n int) int64 {
	f := int64(1)
	for k := 2; k <= n; k++ {
		f *= int64(k)
	}

	return f
}
