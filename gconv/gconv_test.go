package gconv_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/nucleus/gconv"
	"github.com/katalvlaran/nucleus/graphbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_NodesAndFrom(t *testing.T) {
	g, err := graphbuild.Path(4)
	require.NoError(t, err)

	a := gconv.New(g)
	assert.Equal(t, 4, a.Nodes().Len())

	from := a.From(1)
	assert.Equal(t, 2, from.Len())
}

func TestAdapter_NodeOutOfRangeIsNil(t *testing.T) {
	g, err := graphbuild.Path(3)
	require.NoError(t, err)

	a := gconv.New(g)
	assert.Nil(t, a.Node(99))
}

func TestAdapter_EdgeBetweenIgnoresOrientation(t *testing.T) {
	g, err := graphbuild.Path(3)
	require.NoError(t, err)

	a := gconv.New(g)
	assert.NotNil(t, a.EdgeBetween(0, 1))
	assert.NotNil(t, a.EdgeBetween(1, 0))
	assert.Nil(t, a.EdgeBetween(0, 2))
}

func TestToDOT(t *testing.T) {
	g, err := graphbuild.Cycle(3)
	require.NoError(t, err)

	out, err := gconv.ToDOT(g, "triangle")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "triangle"))
	assert.True(t, strings.Contains(out, "--"), "undirected graphs render with -- edges")
}
