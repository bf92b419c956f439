// SPDX-License-Identifier: MIT

// complete.go — complete digraph constructor.

package builder

import "github.com/isomatch/isomatch/graph"

// Complete builds the complete loop-free digraph on n nodes: one unit edge
// for every ordered pair (i, j), i != j, in every requested channel. K1 is a
// single edgeless node.
//
// Validation: n >= 1 (ErrTooFewNodes), at least one channel (ErrNoChannels).
// Complexity: O(K * n^2) edges emitted in (channel, source, target) order.
func Complete(n int, channels ...string) (*graph.Graph, error) {
	const op = "Complete"
	if err := checkShape(op, n, 1, channels); err != nil {
		return nil, err
	}

	ids := nodeIDs(n)
	edges := make([]graph.Edge, 0, len(channels)*n*(n-1))
	for _, ch := range channels {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				edges = append(edges, graph.Edge{Source: ids[i], Target: ids[j], Channel: ch})
			}
		}
	}

	return assemble(op, edges, n, channels)
}
