// SPDX-License-Identifier: MIT

// errors.go — sentinel errors for the graph package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers MUST branch with errors.Is(err, ErrX), never string compares.
//   - Sentinels are never pre-wrapped; implementations attach context via %w.

package graph

import "errors"

// ErrNoChannels reports construction with an empty adjacency list: a graph
// carries at least one channel.
var ErrNoChannels = errors.New("graph: no channels")

// ErrNonSquare reports a per-channel adjacency matrix whose row and column
// counts differ.
var ErrNonSquare = errors.New("graph: adjacency matrix not square")

// ErrDimensionMismatch reports per-channel matrices of differing sizes, or
// an option whose element count disagrees with the graph shape.
var ErrDimensionMismatch = errors.New("graph: dimension mismatch")

// ErrDuplicateChannel reports a repeated channel name.
var ErrDuplicateChannel = errors.New("graph: duplicate channel")

// ErrDuplicateNode reports a repeated node identity, or a repeated index in
// a node subgraph request.
var ErrDuplicateNode = errors.New("graph: duplicate node")

// ErrUnknownChannel reports a channel name absent from the graph.
var ErrUnknownChannel = errors.New("graph: unknown channel")

// ErrUnknownNode reports a node identity absent from the graph.
var ErrUnknownNode = errors.New("graph: unknown node")

// ErrNodeIndex reports a node index outside [0, NumNodes).
var ErrNodeIndex = errors.New("graph: node index out of range")

// ErrBadEdgeCount reports a negative or non-finite edge multiplicity.
var ErrBadEdgeCount = errors.New("graph: bad edge multiplicity")
