package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/graph"
	"github.com/isomatch/isomatch/match"
)

// The fixtures below pair small templates with worlds whose candidate
// counts and isomorphism counts are known by hand. The first three use the
// same graph on both sides.

// chainGraph is a <- b <- c: edge b->a in channel c1, c->b in c2.
func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewFromEdges([]graph.Edge{
		{Source: "b", Target: "a", Channel: "c1"},
		{Source: "c", Target: "b", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c"), graph.WithChannels("c1", "c2"))
	require.NoError(t, err)

	return g
}

// starGraph has hub c feeding a and b in c1, d and e in c2.
func starGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewFromEdges([]graph.Edge{
		{Source: "c", Target: "a", Channel: "c1"},
		{Source: "c", Target: "b", Channel: "c1"},
		{Source: "c", Target: "d", Channel: "c2"},
		{Source: "c", Target: "e", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c", "d", "e"), graph.WithChannels("c1", "c2"))
	require.NoError(t, err)

	return g
}

// layeredGraph routes a and e through b and d into sink c, plus direct c2
// shortcuts; its node cover is {c, a, e} with b, d left to leaf counting.
func layeredGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewFromEdges([]graph.Edge{
		{Source: "a", Target: "b", Channel: "c1"},
		{Source: "a", Target: "d", Channel: "c1"},
		{Source: "e", Target: "b", Channel: "c1"},
		{Source: "e", Target: "d", Channel: "c1"},
		{Source: "b", Target: "c", Channel: "c1"},
		{Source: "d", Target: "c", Channel: "c1"},
		{Source: "a", Target: "c", Channel: "c2"},
		{Source: "e", Target: "c", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c", "d", "e"), graph.WithChannels("c1", "c2"))
	require.NoError(t, err)

	return g
}

// overlapProblem maps a 3-node template into a 5-node world where the
// template's two sinks compete for overlapping candidate sets.
func overlapProblem(t *testing.T) *match.Problem {
	t.Helper()
	tmplt, err := graph.NewFromEdges([]graph.Edge{
		{Source: "t0", Target: "t1", Channel: "c1"},
		{Source: "t0", Target: "t2", Channel: "c1"},
		{Source: "t1", Target: "t0", Channel: "c1"},
	}, graph.WithNodes("t0", "t1", "t2"), graph.WithChannels("c1"))
	require.NoError(t, err)

	world, err := graph.NewFromEdges([]graph.Edge{
		{Source: "w0", Target: "w1", Channel: "c1"},
		{Source: "w0", Target: "w2", Channel: "c1"},
		{Source: "w0", Target: "w3", Channel: "c1"},
		{Source: "w0", Target: "w4", Channel: "c1"},
		{Source: "w1", Target: "w0", Channel: "c1"},
		{Source: "w2", Target: "w0", Channel: "c1"},
	}, graph.WithNodes("w0", "w1", "w2", "w3", "w4"), graph.WithChannels("c1"))
	require.NoError(t, err)

	p, err := match.NewProblem(tmplt, world)
	require.NoError(t, err)

	return p
}

// selfProblem matches a graph against itself with default options.
func selfProblem(t *testing.T, g *graph.Graph, opts ...match.Option) *match.Problem {
	t.Helper()
	p, err := match.NewProblem(g, g, opts...)
	require.NoError(t, err)

	return p
}

// edgelessGraph builds n isolated nodes named n0..n{n-1} on channel c1.
func edgelessGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	g, err := graph.NewFromEdges(nil, graph.WithNodes(ids...), graph.WithChannels("c1"))
	require.NoError(t, err)

	return g
}

// candidatesOf unwraps CandidatesOf, failing the test on error.
func candidatesOf(t *testing.T, p *match.Problem, node string) []string {
	t.Helper()
	out, err := p.CandidatesOf(node)
	require.NoError(t, err)

	return out
}
