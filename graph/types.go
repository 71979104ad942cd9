package graph

import (
	"errors"

	"github.com/katalvlaran/nucleus/csr"
)

// Sentinel errors — contract violations per spec.md §7.
var (
	// ErrNotFrozen indicates the underlying CSR has not been frozen
	// (IsSet()==false); mirrors csr.ErrCSRNotFrozen at the Graph layer.
	ErrNotFrozen = errors.New("graph: underlying CSR is not frozen")

	// ErrAlreadyDirected indicates MakeDirected was called on a Graph that
	// is already directed; spec.md §4.2 requires is_directed==false.
	ErrAlreadyDirected = errors.New("graph: MakeDirected requires an undirected graph")
)

// Graph owns exactly one csr.CSR and describes it: vertex/edge counts and
// directedness. Graph values are immutable once constructed — there is no
// AddEdge/AddVertex here, because spec.md's Non-goals exclude incremental
// mutation after construction; a Graph is always built whole, by the
// loader or a graphbuild generator, from a single coordinate stream.
type Graph struct {
	n          int // |V|
	m          int // |E|: directed arc count (undirected edges count twice)
	isDirected bool
	adjacency  csr.CSR
}

// New wraps an already-frozen CSR into a Graph. m is the caller-asserted
// edge count (arcs for directed graphs, 2×edges for undirected graphs);
// New does not recompute it from the CSR so that edgelist.Load can assert
// the declared count from the file header matches what was actually
// parsed, surfacing a mismatch as its own malformed-input error rather
// than silently trusting the CSR's nnz.
func New(n, m int, isDirected bool, adjacency csr.CSR) (*Graph, error) {
	if !adjacency.IsSet() {
		return nil, ErrNotFrozen
	}

	return &Graph{n: n, m: m, isDirected: isDirected, adjacency: adjacency}, nil
}

// NVertices returns |V|.
func (g *Graph) NVertices() int { return g.n }

// NEdges returns |E| under the convention described in the package doc:
// for an undirected Graph this is 2× the number of undirected edges.
func (g *Graph) NEdges() int { return g.m }

// IsDirected reports whether this Graph's edges are directed.
func (g *Graph) IsDirected() bool { return g.isDirected }

// CSR returns the underlying compressed-sparse-row store. Callers must
// treat it as read-only; Graph owns it exclusively.
func (g *Graph) CSR() csr.CSR { return g.adjacency }
