// Package match finds where a template graph embeds inside a world graph:
// injective node mappings that carry every template edge, channel by
// channel, onto world edges of at least the same multiplicity.
//
// A Problem pairs the two graphs with a boolean candidate matrix, one row
// per template node, marking which world nodes it may still map to.
// Filters (degree, self loops, edgewise consistency, global assignment)
// only ever clear candidates; Propagate runs them to a fixed point.
// Counting and enumeration then search over a node cover of the template:
// cover nodes are assigned one at a time with edge checks against the
// partial image, and the cover-free remainder, which is edgeless by
// construction, collapses into an alldifferent count instead of further
// branching. Interchangeable template nodes can be counted as groups via
// the equivalence partition.
//
// Propagation is optional: counting is exact on an unfiltered Problem,
// filters just shrink the search space first.
package match
