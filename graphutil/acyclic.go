package graphutil

import "github.com/katalvlaran/nucleus/graph"

const (
	white = 0
	gray  = 1
	black = 2
)

// IsAcyclicOrder reports whether g, a directed graph, contains no
// cycle. Grounded on the teacher's dfs.TopologicalSort white/gray/black
// colouring walk, trimmed to a boolean predicate (no order is returned)
// since the only caller in this engine — the graph package's
// orientation test — only needs to confirm that graph.MakeDirected
// produced a DAG, never the order itself.
func IsAcyclicOrder(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.IsDirected() {
		return false, ErrNotDirected
	}

	n := g.NVertices()
	state := make([]uint8, n)

	var visit func(u int32) (bool, error)
	visit = func(u int32) (bool, error) {
		state[u] = gray
		for _, v := range g.Neighbours(u).Slice() {
			switch state[v] {
			case gray:
				return false, nil
			case white:
				ok, err := visit(v)
				if err != nil || !ok {
					return ok, err
				}
			}
		}
		state[u] = black

		return true, nil
	}

	for u := int32(0); int(u) < n; u++ {
		if state[u] == white {
			ok, err := visit(u)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}

	return true, nil
}
