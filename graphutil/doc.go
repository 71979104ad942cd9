// Package graphutil provides small traversal utilities over
// graph.Graph used to validate engine invariants and answer
// reachability queries: Reachable performs a breadth-first walk
// grounded on the teacher's bfs package (github.com/katalvlaran/lvlath/bfs),
// and IsAcyclicOrder performs a DFS colouring pass grounded on the
// teacher's dfs.TopologicalSort, repurposed here as a pure acyclicity
// check over the oriented DAGs clique.Enumerate builds via
// graph.MakeDirected.
package graphutil
