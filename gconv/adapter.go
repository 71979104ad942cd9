package gconv

import (
	"github.com/katalvlaran/nucleus/graph"
	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// Adapter exposes a graph.Graph as a gonum.org/v1/gonum/graph.Undirected,
// without copying adjacency: every method delegates back into the
// wrapped Graph's CSR. It does not implement gonum's Directed interface.
type Adapter struct {
	g *graph.Graph
}

// New wraps g for use with gonum's graph algorithms and encoders.
func New(g *graph.Graph) *Adapter {
	return &Adapter{g: g}
}

// node implements gonum/graph.Node over a bare vertex id.
type node int64

func (n node) ID() int64 { return int64(n) }

// edge implements gonum/graph.Edge, including ReversedEdge. The Weighted
// variant is not implemented: this engine's Graph carries no edge
// weights, per spec.md's Non-goals.
type edge struct {
	from, to node
}

func (e edge) From() gonumgraph.Node         { return e.from }
func (e edge) To() gonumgraph.Node           { return e.to }
func (e edge) ReversedEdge() gonumgraph.Edge { return edge{from: e.to, to: e.from} }

// Node returns the node with the given ID if it exists in the graph,
// and nil otherwise.
func (a *Adapter) Node(id int64) gonumgraph.Node {
	if id < 0 || int(id) >= a.g.NVertices() {
		return nil
	}

	return node(id)
}

// Nodes returns all the nodes in the graph, in ascending id order.
func (a *Adapter) Nodes() gonumgraph.Nodes {
	n := a.g.NVertices()
	nodes := make([]gonumgraph.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = node(i)
	}

	return iterator.NewOrderedNodes(nodes)
}

// From returns all nodes reachable directly from id, i.e. id's
// adjacency row.
func (a *Adapter) From(id int64) gonumgraph.Nodes {
	if id < 0 || int(id) >= a.g.NVertices() {
		return gonumgraph.Empty
	}

	neighbours := a.g.Neighbours(int32(id)).Slice()
	nodes := make([]gonumgraph.Node, len(neighbours))
	for i, v := range neighbours {
		nodes[i] = node(v)
	}

	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween reports whether an edge exists between x and y,
// irrespective of direction.
func (a *Adapter) HasEdgeBetween(xid, yid int64) bool {
	if _, ok := a.g.Edge(int32(xid), int32(yid)); ok {
		return true
	}
	_, ok := a.g.Edge(int32(yid), int32(xid))

	return ok
}

// Edge returns the edge from uid to vid if it exists, and nil otherwise.
func (a *Adapter) Edge(uid, vid int64) gonumgraph.Edge {
	if _, ok := a.g.Edge(int32(uid), int32(vid)); ok {
		return edge{from: node(uid), to: node(vid)}
	}

	return nil
}

// EdgeBetween returns the edge between x and y, matching gonum's
// Undirected interface by ignoring orientation.
func (a *Adapter) EdgeBetween(xid, yid int64) gonumgraph.Edge {
	if e := a.Edge(xid, yid); e != nil {
		return e
	}

	return a.Edge(yid, xid)
}
