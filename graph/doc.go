// SPDX-License-Identifier: MIT

// Package graph provides the immutable multichannel directed multigraph the
// matching pipeline operates on.
//
// A Graph holds one sparse adjacency matrix per named channel; entry (i, j)
// of a channel's matrix is the multiplicity of directed edges i -> j in that
// channel. Node and channel identities are strings; all algorithms address
// nodes by dense index and translate at the API boundary.
//
// Construction is validated once; after that a Graph never changes. Derived
// structural views (composite adjacency, symmetrized composite, boolean
// neighborhood, degrees, self-edge counts, the greedy node cover) are
// memoized: each is computed at most once per instance and shared by every
// caller, which is what makes repeated filter passes over the same graph
// cheap.
//
// Subgraph operations (NodeSubgraph, ChannelSubgraph, LooplessSubgraph)
// return fresh Graph values and never mutate the receiver.
//
// Concurrency:
//   - Graphs are safe for concurrent readers; memoized views are guarded by
//     sync.Once and materialize exactly once.
//
// Determinism:
//   - All views and the node cover use fixed iteration orders; equal inputs
//     produce identical outputs, including tie-breaks.
package graph
