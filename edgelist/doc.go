// Package edgelist loads a Graph from the on-disk edge-list format
// described in spec.md §6:
//
//	% directed        (or: % undirected)
//	% <n_vertices> <n_edges>
//	<u> <v>
//	...
//
// Self-loops are rejected. Weights are never read; every stored edge has
// weight 1. For undirected input, each declared edge must appear once
// with u<v and the file sorted by (u,v); the loader expands it into both
// (u,v) and (v,u) before building the CSR, per spec.md §4.2.
//
// Grounded on original_source/src/collections/csr_graph.h's
// csr_graph_new_from_path contract. One retained generation of the C
// reader parses three integers per edge line instead of two — spec.md
// §9 names this a bug to not reproduce, so Load always expects exactly
// two.
package edgelist
