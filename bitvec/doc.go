// Package bitvec provides Mask, a dense fixed-universe bitset over vertex
// ids [0,n), wrapping github.com/soniakeys/bits.
//
// spec.md's k-core peeler needs a dense boolean vector indexed by vertex
// id (the "removed" mask), as does graphutil.Reachable (the visited set),
// rather than a sparse OrderedIntSet — every index in [0,n) is
// meaningful, so a bit-per-index representation is the right shape. The
// nucleus package keeps its processed-r-clique set as a plain []bool. intset.Set stays reserved for the sparse, variable-length
// neighbour/candidate lists the clique engine works with.
package bitvec
