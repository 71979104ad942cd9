// Package gconv adapts graph.Graph to the gonum.org/v1/gonum/graph
// interfaces and the DOT encoding they support, so the engine's
// CSR-backed graphs can be handed to gonum's analysis/visualization
// tooling without copying the adjacency structure.
//
// The teacher's own converterts package documents exactly this kind of
// adapter (doc.go lists gonum/graph among its intended targets) but
// ships no implementation; this package supplies one, grounded on the
// real gonum.org/v1/gonum/graph Node/Edge/Undirected interfaces rather
// than the archived pre-1.0 gonum/graph snapshot also present in the
// example pack, since the former is the module the rest of the
// ecosystem (and go.mod) actually depends on.
package gconv
