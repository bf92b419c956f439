// Package load ingests multichannel edge lists from CSV.
//
// The expected layout is a header row naming at least source and target
// columns, optionally channel and count:
//
//	source,target,channel,count
//	a,b,phone,2
//	b,c,email,1
//
// Header names are matched case-insensitively and may appear in any
// order; extra columns are ignored. When the channel column is absent
// every edge lands in the channel named by WithDefaultChannel. A missing
// count column means every edge counts 1.
//
// Node and channel identities keep first-appearance order, matching the
// pattern notation, so a graph loaded from CSV and the same graph
// written inline index their nodes identically.
package load
