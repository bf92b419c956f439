package match_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/builder"
	"github.com/isomatch/isomatch/match"
)

// countModes runs CountIsomorphisms serially, grouped by equivalence, and
// fanned out over workers, requiring one exact result from all three.
func countModes(t *testing.T, p *match.Problem, want int64) {
	t.Helper()
	ctx := context.Background()

	got, err := p.CountIsomorphisms(ctx, match.DefaultCountOptions())
	require.NoError(t, err)
	require.Equal(t, want, got, "serial")

	got, err = p.CountIsomorphisms(ctx, match.CountOptions{UseEquivalence: true})
	require.NoError(t, err)
	require.Equal(t, want, got, "equivalence")

	got, err = p.CountIsomorphisms(ctx, match.CountOptions{Workers: 4})
	require.NoError(t, err)
	require.Equal(t, want, got, "parallel")
}

func TestCountIsomorphisms_Chain(t *testing.T) {
	p := selfProblem(t, chainGraph(t))
	require.NoError(t, p.Propagate(context.Background()))
	require.Equal(t, 3, p.CandidateCount())
	countModes(t, p, 1)
}

func TestCountIsomorphisms_Star(t *testing.T) {
	p := selfProblem(t, starGraph(t))
	require.NoError(t, p.Propagate(context.Background()))
	require.Equal(t, 9, p.CandidateCount())
	countModes(t, p, 4)

	// A worker bound past the top-level branching degrades to serial.
	got, err := p.CountIsomorphisms(context.Background(), match.CountOptions{Workers: 16, Verbose: true})
	require.NoError(t, err)
	require.Equal(t, int64(4), got)
}

func TestCountIsomorphisms_Layered(t *testing.T) {
	p := selfProblem(t, layeredGraph(t))
	require.NoError(t, p.Propagate(context.Background()))
	require.Equal(t, 9, p.CandidateCount())
	countModes(t, p, 4)
}

func TestCountIsomorphisms_Overlap(t *testing.T) {
	p := overlapProblem(t)
	require.NoError(t, p.Propagate(context.Background()))
	require.Equal(t, 7, p.CandidateCount())
	countModes(t, p, 6)
}

func TestCountIsomorphisms_WithoutPropagation(t *testing.T) {
	// The count is exact on the raw all-true candidate matrix; filters only
	// shrink the search space.
	countModes(t, selfProblem(t, chainGraph(t)), 1)
	countModes(t, selfProblem(t, starGraph(t)), 4)
	countModes(t, selfProblem(t, layeredGraph(t)), 4)
	countModes(t, overlapProblem(t), 6)
}

func TestCountIsomorphisms_CompleteWorld(t *testing.T) {
	// Any loop-free weighted template on five nodes embeds into K5 in every
	// injective way: 5! matches, with or without template equivalence.
	tmplt, err := builder.RandomWeighted(5, 3, "c1")
	require.NoError(t, err)
	world, err := builder.Complete(5, "c1")
	require.NoError(t, err)

	p, err := match.NewProblem(tmplt, world)
	require.NoError(t, err)
	countModes(t, p, 120)
}

func TestCountIsomorphisms_EmptyWorld(t *testing.T) {
	tmplt, err := builder.RandomWeighted(5, 11, "c1")
	require.NoError(t, err)

	p, err := match.NewProblem(tmplt, edgelessGraph(t, 5))
	require.NoError(t, err)
	countModes(t, p, 0)
}

func TestCountIsomorphisms_EdgelessTemplate(t *testing.T) {
	// With no template edges the cover is empty and counting reduces to one
	// alldifferent instance over the candidate rows: 3 * 2 injections.
	p, err := match.NewProblem(edgelessGraph(t, 2), edgelessGraph(t, 3))
	require.NoError(t, err)
	countModes(t, p, 6)

	found, err := p.FindIsomorphisms(context.Background())
	require.NoError(t, err)
	require.Len(t, found, 6)
}

func TestCountIsomorphisms_IdentitySeeded(t *testing.T) {
	p := selfProblem(t, chainGraph(t), match.WithIdentityCandidates())
	countModes(t, p, 1)
}

func TestCountIsomorphisms_SeedExcludesOnlyMatch(t *testing.T) {
	seed, err := match.NewBitmat(3, 3)
	require.NoError(t, err)
	seed.SetAll()
	seed.Clear(1, 1) // b may no longer map to b

	p := selfProblem(t, chainGraph(t), match.WithCandidates(seed))
	countModes(t, p, 0)
}

func TestCountIsomorphisms_Cancelled(t *testing.T) {
	tmplt, err := builder.Complete(6, "c1")
	require.NoError(t, err)
	world, err := builder.Complete(8, "c1")
	require.NoError(t, err)
	p, err := match.NewProblem(tmplt, world)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.CountIsomorphisms(ctx, match.DefaultCountOptions())
	require.ErrorIs(t, err, context.Canceled)

	_, err = p.CountIsomorphisms(ctx, match.CountOptions{Workers: 4})
	require.ErrorIs(t, err, context.Canceled)

	_, err = p.FindIsomorphisms(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFindIsomorphisms_Chain(t *testing.T) {
	p := selfProblem(t, chainGraph(t))
	require.NoError(t, p.Propagate(context.Background()))

	found, err := p.FindIsomorphisms(context.Background())
	require.NoError(t, err)
	require.Equal(t, []match.Mapping{{"a": "a", "b": "b", "c": "c"}}, found)
}

func TestFindIsomorphisms_Layered(t *testing.T) {
	p := selfProblem(t, layeredGraph(t))
	require.NoError(t, p.Propagate(context.Background()))

	found, err := p.FindIsomorphisms(context.Background())
	require.NoError(t, err)

	// a/e and b/d are independently interchangeable; c is pinned.
	require.ElementsMatch(t, []match.Mapping{
		{"a": "a", "b": "b", "c": "c", "d": "d", "e": "e"},
		{"a": "a", "b": "d", "c": "c", "d": "b", "e": "e"},
		{"a": "e", "b": "b", "c": "c", "d": "d", "e": "a"},
		{"a": "e", "b": "d", "c": "c", "d": "b", "e": "a"},
	}, found)
}

func TestFindIsomorphisms_MatchesCount(t *testing.T) {
	p := overlapProblem(t)
	require.NoError(t, p.Propagate(context.Background()))

	count, err := p.CountIsomorphisms(context.Background(), match.DefaultCountOptions())
	require.NoError(t, err)
	found, err := p.FindIsomorphisms(context.Background())
	require.NoError(t, err)
	require.Len(t, found, int(count))

	// Every reported mapping is injective and covers the template.
	for _, m := range found {
		require.Len(t, m, 3)
		seen := map[string]bool{}
		for _, w := range m {
			require.False(t, seen[w])
			seen[w] = true
		}
	}
}

func TestFindIsomorphisms_NoMatches(t *testing.T) {
	tmplt, err := builder.RandomWeighted(4, 5, "c1")
	require.NoError(t, err)
	p, err := match.NewProblem(tmplt, edgelessGraph(t, 4))
	require.NoError(t, err)

	found, err := p.FindIsomorphisms(context.Background())
	require.NoError(t, err)
	require.Nil(t, found)
}
