package graphutil

import "errors"

// ErrNilGraph indicates a nil *graph.Graph was passed where a graph is required.
var ErrNilGraph = errors.New("graphutil: graph is nil")

// ErrVertexOutOfRange indicates a vertex id outside [0, NVertices()) was supplied.
var ErrVertexOutOfRange = errors.New("graphutil: vertex out of range")

// ErrNotDirected indicates IsAcyclicOrder was called on an undirected graph,
// where "acyclic" has no meaning beyond the trivial no-self-loop case.
var ErrNotDirected = errors.New("graphutil: acyclicity check requires a directed graph")
