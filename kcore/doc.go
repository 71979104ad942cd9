// Package kcore computes, for a Graph and a threshold k, the set of
// vertices that do NOT belong to the k-core — the maximal subgraph in
// which every vertex has degree at least k.
//
// # Algorithm
//
// Queue-based degree peeling, grounded on
// original_source/src/algorithms/core.c (get_vertices_not_in_k_core):
//  1. Copy out-degrees.
//  2. Enqueue every vertex whose degree is already below k; zero its
//     degree and mark it removed.
//  3. Dequeue a vertex, decrement each of its neighbours' live degree;
//     any neighbour that drops below k and is not yet removed is zeroed,
//     marked removed, and enqueued.
//  4. Repeat until the queue is empty.
//
// Time complexity: O(n+m). Memory: O(n).
package kcore
