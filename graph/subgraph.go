// SPDX-License-Identifier: MIT

// subgraph.go — induced subgraph operations.
//
// Contract:
//   - Every operation returns a fresh Graph; the receiver never changes.
//   - Node identities and attribute tables travel with their nodes.
//   - Channel matrices are shared where unchanged (CSR is immutable).

package graph

import (
	"fmt"

	"github.com/isomatch/isomatch/matrix"
)

// NodeSubgraph returns the subgraph induced by the given node indices, rows
// and identities ordered as requested.
//
// Errors:
//   - ErrNodeIndex when an index lies outside [0, NumNodes).
//   - ErrDuplicateNode when an index repeats.
//
// Complexity: Time O(K * nnz + m), Space O(K * nnz' + m) for m kept nodes.
func (g *Graph) NodeSubgraph(idxs []int) (*Graph, error) {
	seen := make(map[int]struct{}, len(idxs))
	for _, i := range idxs {
		if i < 0 || i >= g.n {
			return nil, fmt.Errorf("NodeSubgraph: index %d: %w", i, ErrNodeIndex)
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("NodeSubgraph: index %d: %w", i, ErrDuplicateNode)
		}
		seen[i] = struct{}{}
	}

	adjs := make([]*matrix.CSR, len(g.adj))
	for ch, adj := range g.adj {
		sub, err := adj.Submatrix(idxs, idxs)
		if err != nil {
			return nil, fmt.Errorf("NodeSubgraph: channel %q: %w", g.channels[ch], err)
		}
		adjs[ch] = sub
	}

	nodes := make([]string, len(idxs))
	for k, i := range idxs {
		nodes[k] = g.nodes[i]
	}
	opts := []Option{WithChannels(g.channels...), WithNodes(nodes...)}
	if kept := g.attrsFor(nodes); kept != nil {
		opts = append(opts, WithNodeAttrs(kept))
	}

	return New(adjs, opts...)
}

// ChannelSubgraph returns the restriction to the named channels, in the
// requested order, over the same node set.
//
// Errors:
//   - ErrUnknownChannel when a name is absent.
//   - ErrDuplicateChannel when a name repeats.
//
// Complexity: Time O(len(channels)), Space O(len(channels)); matrices are
// shared with the receiver.
func (g *Graph) ChannelSubgraph(channels []string) (*Graph, error) {
	adjs := make([]*matrix.CSR, 0, len(channels))
	for _, name := range channels {
		i, ok := g.chIndex[name]
		if !ok {
			return nil, fmt.Errorf("ChannelSubgraph: %q: %w", name, ErrUnknownChannel)
		}
		adjs = append(adjs, g.adj[i])
	}

	opts := []Option{WithChannels(channels...), WithNodes(g.nodes...)}
	if g.attrs != nil {
		opts = append(opts, WithNodeAttrs(g.attrs))
	}

	return New(adjs, opts...)
}

// LooplessSubgraph returns the same graph with every self-loop removed in
// every channel.
//
// Complexity: Time O(K * nnz), Space O(K * nnz).
func (g *Graph) LooplessSubgraph() (*Graph, error) {
	adjs := make([]*matrix.CSR, len(g.adj))
	for ch, adj := range g.adj {
		entries := make([]matrix.Entry, 0, adj.NNZ())
		for i := 0; i < g.n; i++ {
			cols, vals, _ := adj.Row(i)
			for k, j := range cols {
				if j != i {
					entries = append(entries, matrix.Entry{Row: i, Col: j, Val: vals[k]})
				}
			}
		}
		m, err := matrix.NewCSR(g.n, g.n, entries)
		if err != nil {
			return nil, fmt.Errorf("LooplessSubgraph: channel %q: %w", g.channels[ch], err)
		}
		adjs[ch] = m
	}

	opts := []Option{WithChannels(g.channels...), WithNodes(g.nodes...)}
	if g.attrs != nil {
		opts = append(opts, WithNodeAttrs(g.attrs))
	}

	return New(adjs, opts...)
}

// attrsFor filters the attribute map down to the given identities, returning
// nil when nothing survives.
func (g *Graph) attrsFor(nodes []string) map[string]map[string]string {
	if g.attrs == nil {
		return nil
	}
	kept := make(map[string]map[string]string)
	for _, id := range nodes {
		if table, ok := g.attrs[id]; ok {
			kept[id] = table
		}
	}
	if len(kept) == 0 {
		return nil
	}

	return kept
}
