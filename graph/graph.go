// SPDX-License-Identifier: MIT

// graph.go — Graph type, functional options, validated constructors.
//
// Role: the only file that builds Graph values; every invariant the rest of
// the module relies on (square channels, unique identities, finite
// non-negative multiplicities) is enforced here exactly once.

package graph

import (
	"fmt"
	"math"
	"sync"

	"github.com/isomatch/isomatch/matrix"
)

// Edge is one directed multigraph edge for NewFromEdges.
// A Count of zero is taken as one, so literal Edge{Source, Target, Channel}
// values read naturally; negative or non-finite counts are rejected.
type Edge struct {
	Source, Target, Channel string
	Count                   float64
}

// Graph is an immutable directed multigraph with one sparse adjacency matrix
// per named channel. Entry (i, j) of channel ch counts edges i -> j in ch.
//
// All derived views are memoized behind sync.Once; a Graph is safe for any
// number of concurrent readers.
type Graph struct {
	n        int
	channels []string
	chIndex  map[string]int
	nodes    []string
	nodeIdx  map[string]int
	adj      []*matrix.CSR
	attrs    map[string]map[string]string

	compositeOnce sync.Once
	composite     *matrix.CSR
	symOnce       sync.Once
	sym           *matrix.CSR
	nbrOnce       sync.Once
	nbr           *matrix.CSR
	pairsOnce     sync.Once
	pairs         [][2]int
	degreesOnce   sync.Once
	inDeg         [][]float64
	outDeg        [][]float64
	selfOnce      sync.Once
	self          [][]float64
	loopsOnce     sync.Once
	loops         bool
	coverOnce     sync.Once
	cover         []int
}

// Option configures construction. Options are applied in call order;
// validation happens inside the constructors, never inside the options.
type Option func(*config)

type config struct {
	channels []string
	nodes    []string
	attrs    map[string]map[string]string
}

// WithChannels names the channels, one per adjacency matrix, in matrix order.
// Default names are "c0", "c1", ...
func WithChannels(names ...string) Option {
	return func(c *config) { c.channels = names }
}

// WithNodes names the nodes, one per matrix row, in row order.
// Default names are "n0", "n1", ...
func WithNodes(ids ...string) Option {
	return func(c *config) { c.nodes = ids }
}

// WithNodeAttrs attaches string attribute tables keyed by node identity.
// Every key must name a node of the graph.
func WithNodeAttrs(attrs map[string]map[string]string) Option {
	return func(c *config) { c.attrs = attrs }
}

// New builds a Graph from one adjacency matrix per channel.
//
// Validation:
//   - at least one channel (ErrNoChannels), none nil (ErrDimensionMismatch);
//   - every matrix square (ErrNonSquare) and of equal size
//     (ErrDimensionMismatch);
//   - every stored multiplicity finite and positive (ErrBadEdgeCount;
//     CSR construction already bans non-finite values);
//   - channel and node name lists, when given, sized to the shape
//     (ErrDimensionMismatch) and free of repeats (ErrDuplicateChannel,
//     ErrDuplicateNode);
//   - attribute keys name existing nodes (ErrUnknownNode).
//
// The matrices are shared, not copied: CSR values are immutable, so sharing
// is safe and keeps channel subgraphs allocation-free.
//
// Complexity: Time O(nnz + n + K), Space O(n + K) beyond the shared matrices.
func New(adjs []*matrix.CSR, opts ...Option) (*Graph, error) {
	if len(adjs) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoChannels)
	}
	for i, adj := range adjs {
		if adj == nil {
			return nil, fmt.Errorf("New: channel %d is nil: %w", i, ErrDimensionMismatch)
		}
	}
	n := adjs[0].Rows()
	for i, adj := range adjs {
		if adj.Rows() != adj.Cols() {
			return nil, fmt.Errorf("New: channel %d is %dx%d: %w",
				i, adj.Rows(), adj.Cols(), ErrNonSquare)
		}
		if adj.Rows() != n {
			return nil, fmt.Errorf("New: channel %d has %d nodes, channel 0 has %d: %w",
				i, adj.Rows(), n, ErrDimensionMismatch)
		}
		for row := 0; row < n; row++ {
			_, vals, _ := adj.Row(row)
			for _, v := range vals {
				if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, fmt.Errorf("New: channel %d row %d holds %v: %w",
						i, row, v, ErrBadEdgeCount)
				}
			}
		}
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	channels := cfg.channels
	if channels == nil {
		channels = make([]string, len(adjs))
		for i := range channels {
			channels[i] = fmt.Sprintf("c%d", i)
		}
	}
	if len(channels) != len(adjs) {
		return nil, fmt.Errorf("New: %d channel names for %d matrices: %w",
			len(channels), len(adjs), ErrDimensionMismatch)
	}
	chIndex := make(map[string]int, len(channels))
	for i, name := range channels {
		if _, seen := chIndex[name]; seen {
			return nil, fmt.Errorf("New: channel %q: %w", name, ErrDuplicateChannel)
		}
		chIndex[name] = i
	}

	nodes := cfg.nodes
	if nodes == nil {
		nodes = make([]string, n)
		for i := range nodes {
			nodes[i] = fmt.Sprintf("n%d", i)
		}
	}
	if len(nodes) != n {
		return nil, fmt.Errorf("New: %d node names for %d rows: %w",
			len(nodes), n, ErrDimensionMismatch)
	}
	nodeIdx := make(map[string]int, n)
	for i, id := range nodes {
		if _, seen := nodeIdx[id]; seen {
			return nil, fmt.Errorf("New: node %q: %w", id, ErrDuplicateNode)
		}
		nodeIdx[id] = i
	}

	var attrs map[string]map[string]string
	if cfg.attrs != nil {
		attrs = make(map[string]map[string]string, len(cfg.attrs))
		for id, table := range cfg.attrs {
			if _, ok := nodeIdx[id]; !ok {
				return nil, fmt.Errorf("New: attrs for %q: %w", id, ErrUnknownNode)
			}
			cp := make(map[string]string, len(table))
			for k, v := range table {
				cp[k] = v
			}
			attrs[id] = cp
		}
	}

	g := &Graph{
		n:        n,
		channels: append([]string(nil), channels...),
		chIndex:  chIndex,
		nodes:    append([]string(nil), nodes...),
		nodeIdx:  nodeIdx,
		adj:      append([]*matrix.CSR(nil), adjs...),
		attrs:    attrs,
	}

	return g, nil
}

// NewFromEdges builds a Graph from an edge list. Node and channel identities
// default to first-appearance order over the edges (sources before targets);
// WithNodes/WithChannels pin explicit identity lists instead, in which case
// edges referencing anything unlisted fail with ErrUnknownNode or
// ErrUnknownChannel. Parallel edges accumulate multiplicity.
//
// Complexity: Time O(E log E + n + K), Space O(E + n + K).
func NewFromEdges(edges []Edge, opts ...Option) (*Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	chIndex := make(map[string]int)
	channels := cfg.channels
	chFixed := channels != nil
	for i, name := range channels {
		if _, seen := chIndex[name]; seen {
			return nil, fmt.Errorf("NewFromEdges: channel %q: %w", name, ErrDuplicateChannel)
		}
		chIndex[name] = i
	}

	nodeIdx := make(map[string]int)
	nodes := cfg.nodes
	nodesFixed := nodes != nil
	for i, id := range nodes {
		if _, seen := nodeIdx[id]; seen {
			return nil, fmt.Errorf("NewFromEdges: node %q: %w", id, ErrDuplicateNode)
		}
		nodeIdx[id] = i
	}

	internNode := func(id string) (int, error) {
		if i, ok := nodeIdx[id]; ok {
			return i, nil
		}
		if nodesFixed {
			return 0, fmt.Errorf("NewFromEdges: node %q: %w", id, ErrUnknownNode)
		}
		nodeIdx[id] = len(nodes)
		nodes = append(nodes, id)

		return len(nodes) - 1, nil
	}
	internChannel := func(name string) (int, error) {
		if i, ok := chIndex[name]; ok {
			return i, nil
		}
		if chFixed {
			return 0, fmt.Errorf("NewFromEdges: channel %q: %w", name, ErrUnknownChannel)
		}
		chIndex[name] = len(channels)
		channels = append(channels, name)

		return len(channels) - 1, nil
	}

	type triplet struct {
		ch       int
		src, dst int
		count    float64
	}
	triplets := make([]triplet, 0, len(edges))
	for i, e := range edges {
		count := e.Count
		if count == 0 {
			count = 1
		}
		if count < 0 || math.IsNaN(count) || math.IsInf(count, 0) {
			return nil, fmt.Errorf("NewFromEdges: edge %d count %v: %w", i, e.Count, ErrBadEdgeCount)
		}
		src, err := internNode(e.Source)
		if err != nil {
			return nil, err
		}
		dst, err := internNode(e.Target)
		if err != nil {
			return nil, err
		}
		ch, err := internChannel(e.Channel)
		if err != nil {
			return nil, err
		}
		triplets = append(triplets, triplet{ch: ch, src: src, dst: dst, count: count})
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("NewFromEdges: %w", ErrNoChannels)
	}

	n := len(nodes)
	perChannel := make([][]matrix.Entry, len(channels))
	for _, t := range triplets {
		perChannel[t.ch] = append(perChannel[t.ch], matrix.Entry{Row: t.src, Col: t.dst, Val: t.count})
	}
	adjs := make([]*matrix.CSR, len(channels))
	for ch := range adjs {
		m, err := matrix.NewCSR(n, n, perChannel[ch])
		if err != nil {
			return nil, fmt.Errorf("NewFromEdges: channel %q: %w", channels[ch], err)
		}
		adjs[ch] = m
	}

	tail := []Option{WithChannels(channels...), WithNodes(nodes...)}
	if cfg.attrs != nil {
		tail = append(tail, WithNodeAttrs(cfg.attrs))
	}

	return New(adjs, tail...)
}

// FromAdjacency imports a foreign single-channel adjacency matrix as a Graph,
// interop for representations that carry no channel structure.
func FromAdjacency(adj *matrix.CSR, opts ...Option) (*Graph, error) {
	return New([]*matrix.CSR{adj}, opts...)
}

// NumNodes returns the node count. Complexity: O(1).
func (g *Graph) NumNodes() int { return g.n }

// NChannels returns the channel count. Complexity: O(1).
func (g *Graph) NChannels() int { return len(g.channels) }

// Nodes returns a copy of the node identity list in index order.
// Complexity: O(n).
func (g *Graph) Nodes() []string {
	return append([]string(nil), g.nodes...)
}

// Node returns the identity of node i.
//
// Errors:
//   - ErrNodeIndex when i lies outside [0, NumNodes).
func (g *Graph) Node(i int) (string, error) {
	if i < 0 || i >= g.n {
		return "", fmt.Errorf("Node(%d): %w", i, ErrNodeIndex)
	}

	return g.nodes[i], nil
}

// NodeIndex returns the dense index of a node identity.
func (g *Graph) NodeIndex(id string) (int, bool) {
	i, ok := g.nodeIdx[id]

	return i, ok
}

// Channels returns a copy of the channel name list in matrix order.
// Complexity: O(K).
func (g *Graph) Channels() []string {
	return append([]string(nil), g.channels...)
}

// ChannelIndex returns the dense index of a channel name.
func (g *Graph) ChannelIndex(name string) (int, bool) {
	i, ok := g.chIndex[name]

	return i, ok
}

// Adj returns the adjacency matrix of a named channel.
//
// Errors:
//   - ErrUnknownChannel when no channel carries that name.
func (g *Graph) Adj(channel string) (*matrix.CSR, error) {
	i, ok := g.chIndex[channel]
	if !ok {
		return nil, fmt.Errorf("Adj(%q): %w", channel, ErrUnknownChannel)
	}

	return g.adj[i], nil
}

// AdjAt returns the adjacency matrix of channel index i. The index must lie
// in [0, NChannels); engine loops use this after resolving names once.
func (g *Graph) AdjAt(i int) *matrix.CSR { return g.adj[i] }

// NodeAttrs returns a copy of the attribute table of a node identity, or nil
// when the node carries no attributes.
//
// Errors:
//   - ErrUnknownNode when the identity is absent.
func (g *Graph) NodeAttrs(id string) (map[string]string, error) {
	if _, ok := g.nodeIdx[id]; !ok {
		return nil, fmt.Errorf("NodeAttrs(%q): %w", id, ErrUnknownNode)
	}
	table, ok := g.attrs[id]
	if !ok {
		return nil, nil
	}
	cp := make(map[string]string, len(table))
	for k, v := range table {
		cp[k] = v
	}

	return cp, nil
}
