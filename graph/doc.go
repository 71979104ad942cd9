// SPDX-License-Identifier: MIT
//
// Package graph provides Graph, an immutable-once-built owner of a single
// csr.CSR plus the directedness and vertex/edge counts that describe it.
//
// Graph knows nothing about how it was populated — edgelist.Load and
// graphbuild's generators both produce a Graph by handing a fully-sorted
// coordinate stream to csr.NewFromCOO and wrapping the result. Graph's own
// job is the read-side contract the rest of the engine depends on: edge
// lookup, neighbour iteration, degree vectors, and orientation.
//
// For an undirected Graph, NEdges() counts directed arcs (each undirected
// edge contributes 2) so that csr.NNZ()==NEdges() always holds — the same
// deliberate convention spec.md §3 calls out.
package graph
