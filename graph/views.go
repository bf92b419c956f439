// SPDX-License-Identifier: MIT

// views.go — memoized structural views.
//
// Every view is a pure function of the construction input, computed at most
// once per Graph behind sync.Once and shared afterwards. Returned slices and
// matrices are the cached values themselves: CSR is immutable by contract,
// and callers must treat the degree and self-edge tables as read-only.

package graph

import "github.com/isomatch/isomatch/matrix"

// CompositeAdj returns the elementwise sum of all channel matrices: entry
// (i, j) counts edges i -> j of any channel.
//
// Complexity: first call O(K * nnz), afterwards O(1).
func (g *Graph) CompositeAdj() *matrix.CSR {
	g.compositeOnce.Do(func() {
		acc := g.adj[0]
		for _, adj := range g.adj[1:] {
			// Shapes agree by construction, Add cannot fail here.
			acc, _ = acc.Add(adj)
		}
		g.composite = acc
	})

	return g.composite
}

// SymCompositeAdj returns the composite adjacency plus its transpose: entry
// (i, j) counts edges between i and j in either direction, any channel.
//
// Complexity: first call O(nnz), afterwards O(1).
func (g *Graph) SymCompositeAdj() *matrix.CSR {
	g.symOnce.Do(func() {
		comp := g.CompositeAdj()
		g.sym, _ = comp.Add(comp.Transpose())
	})

	return g.sym
}

// IsNbr returns the boolean neighborhood matrix: entry (i, j) is 1 when any
// edge joins i and j in either direction. Diagonal entries stay set for
// self-looped nodes, so loops remain visible to the cover heuristic.
//
// Complexity: first call O(nnz), afterwards O(1).
func (g *Graph) IsNbr() *matrix.CSR {
	g.nbrOnce.Do(func() {
		g.nbr = g.SymCompositeAdj().Boolean()
	})

	return g.nbr
}

// NbrPairs returns every unordered neighboring index pair exactly once, as
// [i, j] with i >= j (self-loops appear as [i, i]), ascending by i then j.
//
// Complexity: first call O(nnz), afterwards O(1).
func (g *Graph) NbrPairs() [][2]int {
	g.pairsOnce.Do(func() {
		nbr := g.IsNbr()
		pairs := make([][2]int, 0, nbr.NNZ()/2+1)
		for i := 0; i < g.n; i++ {
			cols, _, _ := nbr.Row(i)
			for _, j := range cols {
				if j <= i {
					pairs = append(pairs, [2]int{i, j})
				}
			}
		}
		g.pairs = pairs
	})

	return g.pairs
}

// Neighbors returns the ascending indices of nodes joined to i by any edge
// in either direction, i itself included when it carries a self-loop.
// The returned slice is a view into the cached neighborhood matrix.
func (g *Graph) Neighbors(i int) []int {
	cols, _, _ := g.IsNbr().Row(i)

	return cols
}

// InDegrees returns the per-node, per-channel sums of incoming edge
// multiplicities, self-loops excluded (SelfEdges reports those separately).
// Shape [NumNodes][NChannels]; treat as read-only.
//
// Complexity: first call O(K * (nnz + n)), afterwards O(1).
func (g *Graph) InDegrees() [][]float64 {
	g.computeDegrees()

	return g.inDeg
}

// OutDegrees is the outgoing counterpart of InDegrees.
func (g *Graph) OutDegrees() [][]float64 {
	g.computeDegrees()

	return g.outDeg
}

// InOutDegrees returns shape [NumNodes][2*NChannels] rows laid out as all
// in-degrees followed by all out-degrees, channel order preserved.
//
// Complexity: O(n * K) per call (assembled from the cached tables).
func (g *Graph) InOutDegrees() [][]float64 {
	g.computeDegrees()
	k := len(g.channels)
	out := make([][]float64, g.n)
	for i := 0; i < g.n; i++ {
		row := make([]float64, 2*k)
		copy(row[:k], g.inDeg[i])
		copy(row[k:], g.outDeg[i])
		out[i] = row
	}

	return out
}

// SelfEdges returns the per-node, per-channel self-loop multiplicities.
// Shape [NumNodes][NChannels]; treat as read-only.
//
// Complexity: first call O(K * (nnz + n)), afterwards O(1).
func (g *Graph) SelfEdges() [][]float64 {
	g.selfOnce.Do(func() {
		self := make([][]float64, g.n)
		for i := range self {
			self[i] = make([]float64, len(g.channels))
		}
		for ch, adj := range g.adj {
			for i, v := range adj.Diagonal() {
				self[i][ch] = v
			}
		}
		g.self = self
	})

	return g.self
}

// HasLoops reports whether any channel carries a self-loop.
func (g *Graph) HasLoops() bool {
	g.loopsOnce.Do(func() {
		for _, row := range g.SelfEdges() {
			for _, v := range row {
				if v != 0 {
					g.loops = true

					return
				}
			}
		}
	})

	return g.loops
}

func (g *Graph) computeDegrees() {
	g.degreesOnce.Do(func() {
		self := g.SelfEdges()
		in := make([][]float64, g.n)
		out := make([][]float64, g.n)
		for i := range in {
			in[i] = make([]float64, len(g.channels))
			out[i] = make([]float64, len(g.channels))
		}
		for ch, adj := range g.adj {
			colSums := adj.ColSums()
			rowSums := adj.RowSums()
			for i := 0; i < g.n; i++ {
				in[i][ch] = colSums[i] - self[i][ch]
				out[i][ch] = rowSums[i] - self[i][ch]
			}
		}
		g.inDeg = in
		g.outDeg = out
	})
}
