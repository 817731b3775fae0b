// Package toposort orders the nodes of a directed acyclic graph so that
// every edge u→v places u strictly before v, with an optional tie-break
// rule deciding among nodes the edges leave independent.
//
// What:
//
//   - Sort(g, opts...): the single entry point. Validates the graph
//     shape (directed, self-loops rejected), fails on cycles with a
//     report naming every strongly connected knot, then resolves the
//     order dependency-first.
//   - WithTieBreak(cmp): lets the caller pick among simultaneously
//     eligible nodes (plugin priorities, alphabetical stability).
//     Without it, the graph's enumeration order decides.
//
// Why:
//
//	Load orders, registry initialization, pipeline stages and build
//	steps all reduce to "every dependency before its dependent". The
//	tie-break matters in practice: a mere valid order is rarely enough
//	when users expect the same sequence on every run and a documented
//	rule for unrelated items.
//
// How:
//
//	Cycles are detected up front via strongly-connected-component
//	decomposition (package scc), so the error names all offending
//	groups in one pass instead of the first back edge found. The
//	resolver then repeatedly extracts the least pending node and
//	places its untaken transitive predecessors before it, recursively.
//
// Pitfalls:
//
//   - Sort rejects a graph whose policy merely permits self-loops,
//     even when no loop edge exists. Build inputs with
//     digraph.New[T]() defaults.
//   - The tie-break must be a strict ordering, irreflexive and
//     consistent. An inconsistent comparator yields an unspecified
//     (but still edge-respecting) sequence.
//   - The graph must not be mutated while Sort runs.
//
// Determinism:
//
//	With a tie-break rule, repeated calls on the same graph produce
//	identical sequences. Without one, the order follows the graph's
//	Nodes()/Predecessors() enumeration; *digraph.Graph[T] enumerates
//	in insertion order, so results are stable per instance.
//
// Complexity: O(V + E) without a tie-break; up to O(V²) comparisons
// with one (linear scan per removal).
//
// Errors:
//
//   - ErrNilGraph                      nil input
//   - ErrNotDirected, ErrLoopsAllowed  shape preconditions,
//     both wrapping ErrBadShape
//   - *CycleError[T]                   cyclic input, wraps
//     ErrCyclePresent and carries every cyclic component
package toposort
