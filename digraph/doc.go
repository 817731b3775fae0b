// Package digraph provides the in-memory directed-graph container consumed
// by the toporder algorithm packages, generic over any comparable node type.
//
// What:
//
//   - Graph[T]: a mutable graph over opaque node values with value-based
//     identity (any comparable T). Edges form a set (no parallel edges);
//     self-loops and undirected mode are opt-in policies fixed at
//     construction time.
//   - Mutators: AddNode, AddEdge, RemoveNode, RemoveEdge.
//   - Queries: HasNode, HasEdge, Nodes, NodeCount, EdgeCount,
//     Predecessors, Successors, Degree, and the policy getters
//     Directed and Looped.
//   - Clone: an independent deep copy of the topology.
//
// Why:
//   - Dependency graphs (plugin load order, registry initialization,
//     build steps) are built once by the caller and then handed to the
//     ordering algorithms; this package is that caller-owned build surface.
//   - The scc and toposort packages consume only small read-side interfaces;
//     *Graph[T] satisfies both.
//
// Determinism:
//
//   - Nodes() enumerates nodes in insertion order.
//   - Predecessors()/Successors() enumerate neighbors in the order their
//     edges were first added.
//
// Both orders are stable across repeated calls on the same instance, which
// is what makes an un-tie-broken topological sort of a Graph[T] reproducible.
//
// Concurrency:
//
//	All methods are safe for concurrent use (a single RWMutex guards the
//	topology). Note that algorithm runs perform many independent reads, so
//	mutating a graph while a sort of it is in progress still yields
//	unspecified results: treat a graph under algorithmic inspection as
//	frozen, exactly as you would a map under iteration.
//
// Complexity:
//
//   - AddNode/AddEdge/HasNode/HasEdge: O(1) amortized
//   - RemoveEdge: O(deg) to splice neighbor slices
//   - RemoveNode: O(V + deg²) worst case (topology rewrite)
//   - Nodes/Predecessors/Successors: O(n) snapshot copies
//
// Errors:
//
//   - ErrLoopNotAllowed  self-loop edge on a graph without WithSelfLoops
//   - ErrNodeNotFound    query for a node that is not in the graph
package digraph
