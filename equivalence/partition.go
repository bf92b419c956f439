// partition.go — node partitions and their refinement.

package equivalence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/isomatch/isomatch/graph"
	"github.com/isomatch/isomatch/matrix"
)

// Partition is a division of the node indices 0..n-1 into disjoint cells.
// Cells are sorted by their lowest member and each cell lists its members
// ascending.
type Partition struct {
	Cells  [][]int
	CellOf []int // node index -> position in Cells
}

// Size returns the number of cells.
func (p *Partition) Size() int { return len(p.Cells) }

// Same reports whether nodes i and j share a cell. Out-of-range indices
// never share one.
func (p *Partition) Same(i, j int) bool {
	if i < 0 || j < 0 || i >= len(p.CellOf) || j >= len(p.CellOf) {
		return false
	}

	return p.CellOf[i] == p.CellOf[j]
}

// Classes returns the structural equivalence classes of g, starting from
// all nodes in one cell.
func Classes(g *graph.Graph) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return Refine(g, make([]int, g.NumNodes()))
}

// Refine sharpens the seed partition until it is stable under the edge
// structure of g. seed[i] is node i's starting cell; any labeling works,
// only which nodes share a label matters. Nodes seeded apart stay apart.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - ErrSeedLength when len(seed) != g.NumNodes().
//
// Complexity: O(rounds * (V + E)) with at most V rounds.
func Refine(g *graph.Graph, seed []int) (*Partition, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumNodes()
	if len(seed) != n {
		return nil, fmt.Errorf("Refine: seed has %d labels for %d nodes: %w",
			len(seed), n, ErrSeedLength)
	}

	cellOf := relabel(seed)
	if n == 0 {
		return build(cellOf, n), nil
	}

	// Per-channel reverse adjacency for the in-edge half of the signatures.
	rev := make([]*matrix.CSR, g.NChannels())
	for c := 0; c < g.NChannels(); c++ {
		rev[c] = g.AdjAt(c).Transpose()
	}

	for {
		next := relabel(signatureKeys(g, rev, cellOf))
		if countCells(next) == countCells(cellOf) {
			break
		}
		cellOf = next
	}

	return build(cellOf, n), nil
}

// signatureKeys maps every node to a label that is equal for two nodes
// exactly when their current cell and incident edge multisets agree.
func signatureKeys(g *graph.Graph, rev []*matrix.CSR, cellOf []int) []int {
	n := g.NumNodes()
	keys := make(map[string]int, n)
	out := make([]int, n)

	var sb strings.Builder
	parts := make([]string, 0, 16)
	for i := 0; i < n; i++ {
		parts = parts[:0]
		for c := 0; c < g.NChannels(); c++ {
			cols, vals, _ := g.AdjAt(c).Row(i)
			for k, j := range cols {
				parts = append(parts, edgePart('o', c, cellOf[j], vals[k]))
			}
			cols, vals, _ = rev[c].Row(i)
			for k, j := range cols {
				parts = append(parts, edgePart('i', c, cellOf[j], vals[k]))
			}
		}
		sort.Strings(parts)

		sb.Reset()
		sb.WriteString(strconv.Itoa(cellOf[i]))
		for _, p := range parts {
			sb.WriteByte(';')
			sb.WriteString(p)
		}
		key := sb.String()
		id, ok := keys[key]
		if !ok {
			id = len(keys)
			keys[key] = id
		}
		out[i] = id
	}

	return out
}

func edgePart(dir byte, channel, cell int, count float64) string {
	return string(dir) + "|" + strconv.Itoa(channel) + "|" +
		strconv.Itoa(cell) + "|" + strconv.FormatFloat(count, 'g', -1, 64)
}

// relabel renumbers arbitrary labels to 0..k-1 in first-appearance order.
func relabel(labels []int) []int {
	ids := make(map[int]int, len(labels))
	out := make([]int, len(labels))
	for i, l := range labels {
		id, ok := ids[l]
		if !ok {
			id = len(ids)
			ids[l] = id
		}
		out[i] = id
	}

	return out
}

func countCells(cellOf []int) int {
	max := -1
	for _, c := range cellOf {
		if c > max {
			max = c
		}
	}

	return max + 1
}

func build(cellOf []int, n int) *Partition {
	p := &Partition{CellOf: cellOf, Cells: make([][]int, countCells(cellOf))}
	for i := 0; i < n; i++ {
		c := cellOf[i]
		p.Cells[c] = append(p.Cells[c], i)
	}

	return p
}
