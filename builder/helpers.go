// SPDX-License-Identifier: MIT

// helpers.go — parameter checks and identity naming shared by constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/isomatch/isomatch/graph"
)

// checkShape validates the node count against the constructor's minimum and
// the channel list against emptiness. op names the caller for error context.
func checkShape(op string, n, minNodes int, channels []string) error {
	if n < minNodes {
		return fmt.Errorf("%s: n=%d, need at least %d: %w", op, n, minNodes, ErrTooFewNodes)
	}
	if len(channels) == 0 {
		return fmt.Errorf("%s: %w", op, ErrNoChannels)
	}

	return nil
}

// checkProbability validates an edge probability for the random constructors.
func checkProbability(op string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s: p=%v: %w", op, p, ErrInvalidProbability)
	}

	return nil
}

// nodeIDs returns the canonical identity list "n0".."n{n-1}". Constructors
// always pass it explicitly so that edgeless nodes survive construction.
func nodeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}

	return ids
}

// assemble builds the graph from the emitted edge list with pinned node and
// channel identities.
func assemble(op string, edges []graph.Edge, n int, channels []string) (*graph.Graph, error) {
	g, err := graph.NewFromEdges(edges,
		graph.WithNodes(nodeIDs(n)...),
		graph.WithChannels(channels...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return g, nil
}
