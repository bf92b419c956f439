// Package pattern parses a compact text notation for multichannel graphs.
//
// An expression is one or more edge runs separated by ';' or ',':
//
//	a -c1-> b -c1-> c; x -c2*3-> b; z
//
// declares edges a->b and b->c in channel c1, a triple edge x->b in
// channel c2, and the isolated node z. Node and channel identities keep
// first-appearance order; repeating an edge accumulates multiplicity.
//
// The notation exists for tests, demos and the CLI, where writing CSV
// edge lists for five-node graphs is mostly ceremony.
package pattern
