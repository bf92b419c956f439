// SPDX-License-Identifier: MIT

// Package builder provides deterministic multichannel graph constructors for
// fixtures, benchmarks and the runnable examples.
//
// Every constructor returns an immutable graph.Graph with nodes named
// "n0".."n{n-1}" in index order and one adjacency matrix per requested
// channel. Same inputs produce byte-identical graphs: stochastic constructors
// take an explicit seed and draw from a private rand.Rand, never from the
// global source.
//
// Constructors validate eagerly and return sentinel errors
// (ErrTooFewNodes, ErrInvalidProbability, ErrNoChannels); they never panic.
package builder
