package equivalence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/equivalence"
	"github.com/isomatch/isomatch/graph"
)

func mustGraph(t *testing.T, edges []graph.Edge, opts ...graph.Option) *graph.Graph {
	t.Helper()
	g, err := graph.NewFromEdges(edges, opts...)
	require.NoError(t, err)

	return g
}

// Two fan-in/fan-out layers around a middle pair: a and e play the same
// role, b and d play the same role, c is alone.
func layeredGraph(t *testing.T) *graph.Graph {
	t.Helper()

	return mustGraph(t, []graph.Edge{
		{Source: "a", Target: "b", Channel: "c1"},
		{Source: "a", Target: "d", Channel: "c1"},
		{Source: "e", Target: "b", Channel: "c1"},
		{Source: "e", Target: "d", Channel: "c1"},
		{Source: "b", Target: "c", Channel: "c1"},
		{Source: "d", Target: "c", Channel: "c1"},
		{Source: "a", Target: "c", Channel: "c2"},
		{Source: "e", Target: "c", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c", "d", "e"), graph.WithChannels("c1", "c2"))
}

func TestClasses_LayeredGraph(t *testing.T) {
	p, err := equivalence.Classes(layeredGraph(t))
	require.NoError(t, err)

	require.Equal(t, 3, p.Size())
	require.Equal(t, [][]int{{0, 4}, {1, 3}, {2}}, p.Cells)
	require.Equal(t, []int{0, 1, 2, 1, 0}, p.CellOf)

	require.True(t, p.Same(0, 4))
	require.True(t, p.Same(1, 3))
	require.False(t, p.Same(0, 2))
	require.False(t, p.Same(0, -1))
}

func TestClasses_StarSplitsByChannel(t *testing.T) {
	// Hub c reaches a,b in one channel and d,e in another.
	g := mustGraph(t, []graph.Edge{
		{Source: "c", Target: "a", Channel: "c1"},
		{Source: "c", Target: "b", Channel: "c1"},
		{Source: "c", Target: "d", Channel: "c2"},
		{Source: "c", Target: "e", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c", "d", "e"), graph.WithChannels("c1", "c2"))

	p, err := equivalence.Classes(g)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2}, {3, 4}}, p.Cells)
}

func TestClasses_ChainIsAllSingletons(t *testing.T) {
	g := mustGraph(t, []graph.Edge{
		{Source: "b", Target: "a", Channel: "c1"},
		{Source: "c", Target: "b", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c"), graph.WithChannels("c1", "c2"))

	p, err := equivalence.Classes(g)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}, {2}}, p.Cells)
}

func TestClasses_MultiplicitySplits(t *testing.T) {
	// y and z both receive from x, but z twice.
	g := mustGraph(t, []graph.Edge{
		{Source: "x", Target: "y", Channel: "c1"},
		{Source: "x", Target: "z", Channel: "c1", Count: 2},
	})

	p, err := equivalence.Classes(g)
	require.NoError(t, err)
	require.Equal(t, 3, p.Size())
}

func TestClasses_SelfLoopSplits(t *testing.T) {
	// Same in/out profile except for w's loop.
	g := mustGraph(t, []graph.Edge{
		{Source: "u", Target: "v", Channel: "c1"},
		{Source: "u", Target: "w", Channel: "c1"},
		{Source: "w", Target: "w", Channel: "c1"},
	})

	p, err := equivalence.Classes(g)
	require.NoError(t, err)
	require.Equal(t, 3, p.Size())
	require.False(t, p.Same(1, 2))
}

func TestRefine_SeedStaysSplit(t *testing.T) {
	g := mustGraph(t, []graph.Edge{
		{Source: "c", Target: "a", Channel: "c1"},
		{Source: "c", Target: "b", Channel: "c1"},
		{Source: "c", Target: "d", Channel: "c2"},
		{Source: "c", Target: "e", Channel: "c2"},
	}, graph.WithNodes("a", "b", "c", "d", "e"), graph.WithChannels("c1", "c2"))

	// Pull b out of a's cell up front; d and e still coalesce.
	p, err := equivalence.Refine(g, []int{0, 1, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {1}, {2}, {3, 4}}, p.Cells)
}

func TestRefine_Validation(t *testing.T) {
	_, err := equivalence.Classes(nil)
	require.ErrorIs(t, err, equivalence.ErrNilGraph)

	g := mustGraph(t, []graph.Edge{{Source: "a", Target: "b", Channel: "c1"}})
	_, err = equivalence.Refine(g, []int{0})
	require.ErrorIs(t, err, equivalence.ErrSeedLength)
}
