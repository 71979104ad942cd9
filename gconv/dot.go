package gconv

import (
	"fmt"

	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/nucleus/graph"
)

// ToDOT renders g as a Graphviz DOT document under the given graph
// name, via gonum's encoding/dot.Marshal over an Adapter. Vertices are
// rendered as their bare integer ids; the engine carries no vertex or
// edge labels to attach.
func ToDOT(g *graph.Graph, name string) (string, error) {
	bytes, err := dot.Marshal(New(g), name, "", "  ")
	if err != nil {
		return "", fmt.Errorf("gconv: %w", err)
	}

	return string(bytes), nil
}
