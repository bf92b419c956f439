// SPDX-License-Identifier: MIT

// star.go — out-star constructor.

package builder

import "github.com/isomatch/isomatch/graph"

// Star builds the out-star with hub n0 and leaves n1..n{n-1}: one unit edge
// from the hub to every leaf in every requested channel.
//
// Validation: n >= 2 (ErrTooFewNodes), at least one channel (ErrNoChannels).
// Complexity: O(K * n) edges emitted in (channel, leaf) order.
func Star(n int, channels ...string) (*graph.Graph, error) {
	const op = "Star"
	if err := checkShape(op, n, 2, channels); err != nil {
		return nil, err
	}

	ids := nodeIDs(n)
	edges := make([]graph.Edge, 0, len(channels)*(n-1))
	for _, ch := range channels {
		for i := 1; i < n; i++ {
			edges = append(edges, graph.Edge{Source: ids[0], Target: ids[i], Channel: ch})
		}
	}

	return assemble(op, edges, n, channels)
}
