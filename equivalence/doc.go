// Package equivalence partitions the nodes of a multichannel graph into
// structural equivalence classes: two nodes land in the same class exactly
// when swapping them, with everything else fixed, maps the graph onto
// itself channel by channel with edge multiplicities intact.
//
// The partition is computed by iterated refinement. Every node is keyed by
// its current cell plus the multiset of (direction, channel, neighbor cell,
// multiplicity) tuples over its incident edges, self loops included; nodes
// whose keys differ are split apart and the rounds repeat until no cell
// splits. Callers with outside knowledge, such as per-node candidate sets,
// can pre-split via Refine's seed and the rounds will only ever sharpen it.
//
// Cells are ordered by their lowest member and list members ascending, so
// equal inputs always produce identical partitions.
package equivalence
