package kcore

import (
	"errors"

	"github.com/katalvlaran/nucleus/bitvec"
	"github.com/katalvlaran/nucleus/graph"
)

// ErrNegativeK indicates k<0 was passed to VerticesNotInKCore; a negative
// threshold has no meaningful k-core and every real caller's k is >=0.
var ErrNegativeK = errors.New("kcore: k must be >= 0")

// VerticesNotInKCore returns a bitvec.Mask of length g.NVertices() where
// bit v is set iff v is not in the k-core of g: iteratively peel every
// vertex whose live degree drops below k, following removal through its
// neighbours, until no more vertices qualify.
func VerticesNotInKCore(g *graph.Graph, k int) (bitvec.Mask, error) {
	if k < 0 {
		return bitvec.Mask{}, ErrNegativeK
	}

	n := g.NVertices()
	removed := bitvec.New(n)
	degree := g.OutDegrees()

	// queue is a plain slice-backed FIFO walked by index rather than
	// popped from the front, avoiding an O(n) shift per dequeue.
	queue := make([]int32, 0, n)
	for v := 0; v < n; v++ {
		if int(degree[v]) < k {
			removed.Set(v, true)
			degree[v] = 0
			queue = append(queue, int32(v))
		}
	}

	rowPtr := g.CSR().RowPtr()
	colIdx := g.CSR().ColIdx()

	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range colIdx[rowPtr[u]:rowPtr[u+1]] {
			if removed.Get(int(v)) {
				continue
			}
			degree[v]--
			if int(degree[v]) < k {
				removed.Set(int(v), true)
				degree[v] = 0
				queue = append(queue, v)
			}
		}
	}

	return removed, nil
}
