// Package cliqueset holds a sorted, duplicate-free collection of k-vertex
// cliques, each stored as an ascending []int32 tuple of length k.
//
// It mirrors the original implementation's CliqueSet: every inserted
// tuple is sorted internally before comparison, membership and insertion
// both use binary search over the lexicographic tuple order, and storage
// grows by a fixed additive step rather than by doubling (see
// original_source/src/collections/clique_set.c, clique_set_insert).
//
// k is fixed per Set at construction time — a single runtime-parameterised
// type models every clique size the engine enumerates (k=1..n), rather
// than a family of compile-time generics.
package cliqueset
