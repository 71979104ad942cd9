package edgelist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/nucleus/edgelist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.el")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoad_UndirectedG0(t *testing.T) {
	path := writeTemp(t, "% undirected\n% 5 6\n0 1\n0 2\n1 2\n2 3\n2 4\n3 4\n")
	g, err := edgelist.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, g.NVertices())
	assert.Equal(t, 12, g.NEdges())
	assert.False(t, g.IsDirected())
	_, ok := g.Edge(0, 1)
	assert.True(t, ok)
	_, ok = g.Edge(1, 0)
	assert.True(t, ok, "undirected load must store both directions")
}

func TestLoad_Directed(t *testing.T) {
	path := writeTemp(t, "% directed\n% 3 2\n0 1\n1 2\n")
	g, err := edgelist.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NVertices())
	assert.Equal(t, 2, g.NEdges())
	assert.True(t, g.IsDirected())
	_, ok := g.Edge(1, 0)
	assert.False(t, ok, "directed load must not add a reverse arc")
}

func TestLoad_RejectsSelfLoop(t *testing.T) {
	path := writeTemp(t, "% undirected\n% 2 1\n0 0\n")
	_, err := edgelist.Load(path)
	var parseErr *edgelist.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, edgelist.ErrSelfLoop)
	assert.Equal(t, 3, parseErr.Line)
}

func TestLoad_RejectsUnknownDirective(t *testing.T) {
	path := writeTemp(t, "% sideways\n% 1 0\n")
	_, err := edgelist.Load(path)
	assert.ErrorIs(t, err, edgelist.ErrUnknownDirective)
}

func TestLoad_RejectsVertexOutOfRange(t *testing.T) {
	path := writeTemp(t, "% undirected\n% 2 1\n0 5\n")
	_, err := edgelist.Load(path)
	assert.ErrorIs(t, err, edgelist.ErrVertexOutOfRange)
}

func TestLoad_RejectsUnsortedEdges(t *testing.T) {
	path := writeTemp(t, "% undirected\n% 3 2\n1 2\n0 1\n")
	_, err := edgelist.Load(path)
	assert.ErrorIs(t, err, edgelist.ErrUnsortedEdges)
}

func TestLoad_RejectsEdgeCountMismatch(t *testing.T) {
	path := writeTemp(t, "% undirected\n% 3 2\n0 1\n")
	_, err := edgelist.Load(path)
	assert.ErrorIs(t, err, edgelist.ErrEdgeCountMismatch)
}
