package graphutil

import (
	"github.com/katalvlaran/nucleus/bitvec"
	"github.com/katalvlaran/nucleus/graph"
)

// Reachable returns the set of vertices reachable from source by
// following out-arcs, including source itself. Grounded on the
// teacher's bfs.BFS queue/visited-map loop, simplified to this
// engine's int32 vertex ids and dense bitvec.Mask visited set in
// place of the teacher's string-keyed map and Order/Depth/Parent
// result bundle, since callers here only need set membership.
func Reachable(g *graph.Graph, source int32) (bitvec.Mask, error) {
	if g == nil {
		return bitvec.Mask{}, ErrNilGraph
	}
	if source < 0 || int(source) >= g.NVertices() {
		return bitvec.Mask{}, ErrVertexOutOfRange
	}

	visited := bitvec.New(g.NVertices())
	visited.Set(int(source), true)

	queue := make([]int32, 0, g.NVertices())
	queue = append(queue, source)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range g.Neighbours(u).Slice() {
			if !visited.Get(int(v)) {
				visited.Set(int(v), true)
				queue = append(queue, v)
			}
		}
	}

	return visited, nil
}
