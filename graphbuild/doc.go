// Package graphbuild provides deterministic generators for small
// reference graphs (complete, path, cycle, Erdős–Rényi-style random
// sparse), grounded on the teacher's own builder package
// (impl_complete.go, impl_path.go, impl_cycle.go,
// impl_random_sparse.go) but adapted to this engine's immutable,
// frozen-once CSR/Graph model: rather than an incremental
// AddVertex/AddEdge builder, each generator assembles a coordinate
// stream up front and freezes it through csr.NewFromCOO in one step,
// since Graph has no post-construction mutation surface (spec.md's
// Non-goals exclude incremental graph mutation after construction).
package graphbuild
