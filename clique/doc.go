// Package clique enumerates k-vertex cliques of an undirected Graph and
// lifts an exact CliqueSet(k) to the (k+1)-cliques it implies.
//
// Enumerate dispatches to a size-specialised lister for k=1,2,3,4 and to
// a general Chiba–Nishizeki recursive lister, filtered by the
// (k-1)-core, for k>=5. Every lister is grounded on a dedicated file
// under original_source/src/algorithms/: clique.c (k=1,2),
// clique_triangles.c (k=3), the three_four_cliques collector's adaptive
// strategy (k=4), and clique_chiba_nishizeki.c (k>=5). Expand mirrors
// clique_expansion.c's adjacency-group reduction.
//
// Every enumerator returns cliques in ascending-tuple, lexicographic-set
// order, and every emitted tuple is guaranteed to be an actual clique of
// the input Graph (every pair of its vertices is an edge).
package clique
