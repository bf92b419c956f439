// SPDX-License-Identifier: MIT

// random.go — seeded stochastic constructors.
//
// Both constructors draw from a private rand.Rand seeded by the caller and
// visit ordered pairs in (channel, source, target) order, so a fixed
// (n, p, seed, channels) tuple always yields the same graph.

package builder

import (
	"math/rand"

	"github.com/isomatch/isomatch/graph"
)

// RandomSparse builds an Erdős–Rényi style digraph: every ordered loop-free
// pair (i, j) receives a unit edge with probability p, independently per
// channel.
//
// Validation: n >= 1 (ErrTooFewNodes), 0 <= p <= 1 (ErrInvalidProbability),
// at least one channel (ErrNoChannels).
// Complexity: O(K * n^2) draws.
func RandomSparse(n int, p float64, seed int64, channels ...string) (*graph.Graph, error) {
	const op = "RandomSparse"
	if err := checkShape(op, n, 1, channels); err != nil {
		return nil, err
	}
	if err := checkProbability(op, p); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	ids := nodeIDs(n)
	var edges []graph.Edge
	for _, ch := range channels {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				if rng.Float64() < p {
					edges = append(edges, graph.Edge{Source: ids[i], Target: ids[j], Channel: ch})
				}
			}
		}
	}

	return assemble(op, edges, n, channels)
}

// RandomWeighted builds the complete loop-free digraph on n nodes with a
// uniform multiplicity in (0, 1] on every ordered pair, independently per
// channel. Multiplicities stay strictly positive so no edge degenerates to a
// unit count.
//
// Validation: n >= 1 (ErrTooFewNodes), at least one channel (ErrNoChannels).
// Complexity: O(K * n^2) draws.
func RandomWeighted(n int, seed int64, channels ...string) (*graph.Graph, error) {
	const op = "RandomWeighted"
	if err := checkShape(op, n, 1, channels); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	ids := nodeIDs(n)
	edges := make([]graph.Edge, 0, len(channels)*n*(n-1))
	for _, ch := range channels {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				edges = append(edges, graph.Edge{
					Source:  ids[i],
					Target:  ids[j],
					Channel: ch,
					Count:   1 - rng.Float64(),
				})
			}
		}
	}

	return assemble(op, edges, n, channels)
}
