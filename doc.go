// Package engine (module github.com/katalvlaran/nucleus) is a k-clique
// enumeration and nucleus-decomposition engine for sparse undirected graphs
// held in compressed form.
//
// Given a graph G=(V,E) the engine:
//
//   - materializes G from an on-disk edge list into a compact CSR adjacency
//     (package edgelist → package csr → package graph);
//   - enumerates all k-cliques for any k≥1 (package clique), including the
//     expand operator that lifts an exact set of k-cliques to the
//     (k+1)-cliques they span;
//   - computes the k-core of G as a degree-peeling pre-filter (package kcore);
//   - computes the (r,s)-nucleus decomposition: an integer "nucleus level"
//     for every r-clique derived from its s-clique degree under iterative
//     peeling (package nucleus).
//
// Package layout:
//
//	intset/     — sorted OrderedIntSet with O(log n) membership and linear
//	              merge set algebra (∪, ∩, \, Δ).
//	bitvec/     — dense bitset wrapper used for k-core masks and
//	              reachability sets.
//	csr/        — immutable compressed-sparse-row store.
//	graph/      — Graph type owning one CSR; orientation, degrees, neighbours.
//	cliqueset/  — sorted, deduplicated container of k-tuples of vertex ids.
//	kcore/      — k-core peeler (vertices not in the k-core).
//	clique/     — size-specialised k=1..4 enumerators, Chiba–Nishizeki for
//	              k≥5, and the clique-expansion operator.
//	nucleus/    — (r,s)-nucleus decomposition: exact, update-free, limited,
//	              and Monte-Carlo variants.
//	edgelist/   — the external collaborator that parses the on-disk edge
//	              list file format into a graph.Graph.
//	graphbuild/ — deterministic graph generators (complete, path, cycle,
//	              random-sparse) used to build test fixtures.
//	graphutil/  — BFS/DFS-derived verification helpers (reachability,
//	              acyclic-order checking) used by tests.
//	gconv/      — adapter from graph.Graph to gonum.org/v1/gonum/graph.
//	cmd/nucleusctl/ — example CLI wiring the pieces above end to end.
//
// The core (csr, graph, intset, cliqueset, kcore, clique, nucleus) is
// single-threaded and synchronous: no operation suspends, yields, or
// schedules, and no cancellation or timeout facility is part of its
// contract. A caller wishing to bound runtime does so externally.
package engine
