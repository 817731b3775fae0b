// Package scc decomposes a directed graph into its strongly connected
// components.
//
// What:
//
//   - Components(g) partitions the nodes of g into maximal groups in
//     which every node can reach every other along directed edges.
//     Each node appears in exactly one component; a node on no cycle
//     forms a singleton.
//
// Why:
//   - A directed graph is acyclic exactly when every component is a
//     singleton, so the decomposition doubles as a cycle detector that
//     names every knot at once instead of the first edge that closes
//     one. The toposort package gates on it before ordering.
//
// How:
//
//	Tarjan's algorithm with an explicit frame stack instead of
//	recursion, so pathological graphs (chains hundreds of thousands of
//	nodes deep) cannot exhaust the goroutine stack.
//
// Determinism:
//
//	For a graph with deterministic Nodes()/Successors() enumeration the
//	output is reproducible: components are emitted in completion order
//	of the underlying depth-first traversal.
//
// Complexity: O(V + E) time, O(V) space.
//
// Errors:
//
//   - ErrNilGraph  Components was handed a nil graph
package scc
