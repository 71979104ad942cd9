// Package intset provides OrderedIntSet, a dynamic array holding a
// strictly ascending sequence of int32 vertex ids.
//
// Membership is a binary search; insertion is a no-op for duplicates.
// Set algebra (union, intersection, difference, symmetric difference) runs
// as a single linear merge over two sorted inputs, never materialising more
// than the result actually needs.
//
// OrderedIntSet is the primitive the rest of the engine is built on: CSR
// neighbour rows, clique-engine candidate sets, and nucleus incidence rows
// are all OrderedIntSet values.
package intset
