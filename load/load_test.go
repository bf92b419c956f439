package load_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isomatch/isomatch/graph"
	"github.com/isomatch/isomatch/load"
)

func mustAt(t *testing.T, g *graph.Graph, ch, src, dst string) float64 {
	t.Helper()
	adj, err := g.Adj(ch)
	require.NoError(t, err)
	i, ok := g.NodeIndex(src)
	require.True(t, ok, "node %q", src)
	j, ok := g.NodeIndex(dst)
	require.True(t, ok, "node %q", dst)
	v, err := adj.At(i, j)
	require.NoError(t, err)

	return v
}

func TestReadEdgeList_Basic(t *testing.T) {
	in := "source,target,channel,count\n" +
		"b,a,c1,2\n" +
		"c,b,c2,1.5\n" +
		"b,a,c1,1\n"
	g, err := load.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, []string{"b", "a", "c"}, g.Nodes())
	require.Equal(t, []string{"c1", "c2"}, g.Channels())
	require.Equal(t, 3.0, mustAt(t, g, "c1", "b", "a"), "repeated rows accumulate")
	require.Equal(t, 1.5, mustAt(t, g, "c2", "c", "b"))
}

func TestReadEdgeList_CountColumnOptional(t *testing.T) {
	in := "source,target,channel\na,b,c1\na,b,c1\n"
	g, err := load.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2.0, mustAt(t, g, "c1", "a", "b"))
}

func TestReadEdgeList_DefaultChannel(t *testing.T) {
	in := "source,target\na,b\nb,c\n"
	g, err := load.ReadEdgeList(strings.NewReader(in), load.WithDefaultChannel("calls"))
	require.NoError(t, err)

	require.Equal(t, []string{"calls"}, g.Channels())
	require.Equal(t, 1.0, mustAt(t, g, "calls", "a", "b"))
	require.Equal(t, 1.0, mustAt(t, g, "calls", "b", "c"))
}

func TestReadEdgeList_HeaderNamesAnyOrderAnyCase(t *testing.T) {
	in := "Channel, Target ,SOURCE,count\nc1,b,a,2\n"
	g, err := load.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2.0, mustAt(t, g, "c1", "a", "b"))
}

func TestReadEdgeList_ExtraColumnsIgnored(t *testing.T) {
	in := "source,weight,target,channel\na,9,b,c1\n"
	g, err := load.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1.0, mustAt(t, g, "c1", "a", "b"))
}

func TestReadEdgeList_HeaderErrors(t *testing.T) {
	for name, in := range map[string]string{
		"empty input":       "",
		"no target column":  "source,channel\n",
		"no channel source": "source,target\na,b\n",
	} {
		_, err := load.ReadEdgeList(strings.NewReader(in))
		require.ErrorIs(t, err, load.ErrHeader, name)
	}
}

func TestReadEdgeList_RecordErrors(t *testing.T) {
	for name, in := range map[string]string{
		"short row":     "source,target,channel\na,b\n",
		"empty source":  "source,target,channel\n,b,c1\n",
		"empty channel": "source,target,channel\na,b,\n",
	} {
		_, err := load.ReadEdgeList(strings.NewReader(in))
		require.ErrorIs(t, err, load.ErrRecord, name)
		require.ErrorContains(t, err, "line 2", name)
	}
}

func TestReadEdgeList_CountErrors(t *testing.T) {
	for _, bad := range []string{"x", "0", "-2", "NaN", "+Inf"} {
		in := "source,target,channel,count\na,b,c1,1\na,b,c1," + bad + "\n"
		_, err := load.ReadEdgeList(strings.NewReader(in))
		require.ErrorIs(t, err, load.ErrCount, "count %q", bad)
		require.ErrorContains(t, err, "line 3", "count %q", bad)
	}
}

func TestReadEdgeList_HeaderOnly(t *testing.T) {
	_, err := load.ReadEdgeList(strings.NewReader("source,target,channel\n"))
	require.ErrorIs(t, err, graph.ErrNoChannels)
}

func TestLoadEdgeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.csv")
	data := "source,target,channel\nb,a,c1\nc,b,c2\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	g, err := load.LoadEdgeFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a", "c"}, g.Nodes())

	_, err = load.LoadEdgeFile(filepath.Join(dir, "missing.csv"))
	require.Error(t, err)
	require.ErrorContains(t, err, "missing.csv")
}
