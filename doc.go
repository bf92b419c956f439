// Package isomatch counts and enumerates subgraph isomorphisms between a
// small template graph and a larger world graph, where both are directed
// multigraphs whose edges live in named channels (parallel edge layers).
//
// 🚀 What is isomatch?
//
//	A deterministic, embeddable toolkit that brings together:
//		• Immutable multichannel graphs with memoized structural views
//		• Constraint propagation over a boolean candidate matrix
//		• A rectangular assignment solver with forced-pair cost analysis
//		• Alldiff (distinct-representative) counting with equivalence compression
//		• Exact isomorphism counting and enumeration over a greedy node cover
//
// ✨ Why choose isomatch?
//
//   - Exact answers - counts and enumerations agree bit for bit, with or
//     without propagation, with or without equivalence compression
//   - Deterministic - fixed iteration orders everywhere, no map-order leaks
//   - Practical - CSV loaders, a terse pattern DSL, a persistent mapping
//     store and a CLI wrap the core library
//
// Everything is organized under focused subpackages:
//
//	matrix/      — dense and CSR sparse float64 storage
//	graph/       — the multichannel Graph, views, subgraphs, node cover
//	builder/     — deterministic graph constructors for fixtures and demos
//	assign/      — rectangular LSAP + constrained assignment costs
//	alldiff/     — distinct-representative counting
//	equivalence/ — partition refinement over graph structure
//	match/       — candidate matrix, filters, propagation, count, find
//	pattern/     — text DSL for building graphs
//	load/        — CSV edge-list ingestion
//	mapstore/    — Badger-backed persistence of found mappings
//
// Quick ASCII example:
//
//	    a ──c1──▶ b
//	    ▲         │
//	    c2        c1
//	    │         ▼
//	    c ◀──c2── d
//
//	a four-node template whose edges span two channels.
//
// Start with graph.New or pattern.Parse, wrap two graphs in match.NewProblem,
// call Propagate, then CountIsomorphisms or FindIsomorphisms.
//
//	go get github.com/isomatch/isomatch
package isomatch
