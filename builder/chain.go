// SPDX-License-Identifier: MIT

// chain.go — directed path constructor.

package builder

import "github.com/isomatch/isomatch/graph"

// Chain builds the directed path n0 -> n1 -> ... -> n{n-1}, one unit edge per
// consecutive pair in every requested channel.
//
// Validation: n >= 2 (ErrTooFewNodes), at least one channel (ErrNoChannels).
// Complexity: O(K * n) edges emitted in (channel, position) order.
func Chain(n int, channels ...string) (*graph.Graph, error) {
	const op = "Chain"
	if err := checkShape(op, n, 2, channels); err != nil {
		return nil, err
	}

	ids := nodeIDs(n)
	edges := make([]graph.Edge, 0, len(channels)*(n-1))
	for _, ch := range channels {
		for i := 0; i+1 < n; i++ {
			edges = append(edges, graph.Edge{Source: ids[i], Target: ids[i+1], Channel: ch})
		}
	}

	return assemble(op, edges, n, channels)
}
