// SPDX-License-Identifier: MIT

// cover.go — greedy node cover.
//
// The cover drives the counting engine: backtracking assigns cover nodes
// first, in cover order, and the leftover nodes form an edgeless remainder
// handled by the alldiff counter. No optimality warranty; the greedy pick
// keeps high-connectivity nodes early, which is what pruning wants.

package graph

// NodeCover returns node indices whose removal leaves no edge in any channel,
// most-connected-first. Each round covers the node joined to the most
// still-uncovered neighbors (self-loops count themselves), ties to the lowest
// index; the round stops when the uncovered remainder is edgeless. The result
// is memoized; callers receive a fresh copy.
//
// Complexity: first call O(cover * nnz), afterwards O(cover) for the copy.
func (g *Graph) NodeCover() []int {
	g.coverOnce.Do(func() {
		nbr := g.IsNbr()
		uncov := make([]bool, g.n)
		for i := range uncov {
			uncov[i] = true
		}
		counts := make([]int, g.n)

		cover := make([]int, 0)
		for {
			// Count, per uncovered node, its links to uncovered nodes.
			for j := range counts {
				counts[j] = 0
			}
			links := 0
			for i := 0; i < g.n; i++ {
				if !uncov[i] {
					continue
				}
				cols, _, _ := nbr.Row(i)
				for _, j := range cols {
					if uncov[j] {
						counts[j]++
						links++
					}
				}
			}
			if links == 0 {
				break
			}

			best := -1
			for j := 0; j < g.n; j++ {
				if uncov[j] && (best < 0 || counts[j] > counts[best]) {
					best = j
				}
			}
			cover = append(cover, best)
			uncov[best] = false
		}
		g.cover = cover
	})

	return append([]int(nil), g.cover...)
}
