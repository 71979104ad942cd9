package graphbuild

import (
	"sort"

	"github.com/katalvlaran/nucleus/csr"
	"github.com/katalvlaran/nucleus/graph"
)

// fromUndirectedPairs expands each {u,v} (u<v) into both (u,v) and
// (v,u), sorts the resulting coordinate stream by (row,col), and
// freezes it into a Graph. Shared by every generator in this package.
func fromUndirectedPairs(n int, pairs [][2]int32) (*graph.Graph, error) {
	type coord struct{ r, c int32 }
	coords := make([]coord, 0, 2*len(pairs))
	for _, p := range pairs {
		coords = append(coords, coord{p[0], p[1]}, coord{p[1], p[0]})
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].r != coords[j].r {
			return coords[i].r < coords[j].r
		}

		return coords[i].c < coords[j].c
	})

	rows := make([]int32, len(coords))
	cols := make([]int32, len(coords))
	for i, c := range coords {
		rows[i] = c.r
		cols[i] = c.c
	}

	adjacency, err := csr.NewFromCOO(n, n, rows, cols, nil)
	if err != nil {
		return nil, err
	}

	return graph.New(n, len(coords), false, adjacency)
}
