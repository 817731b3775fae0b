// Package toposort provides dependency ordering on directed graphs.
//
// Sort computes a linear ordering of nodes such that for every edge
// u→v, u appears before v. An optional tie-break rule decides among
// nodes the edges leave unordered; cyclic inputs fail with a report of
// every strongly connected component involved.
package toposort

import "github.com/katalvlaran/toporder/scc"

// Sort returns a topological order of g: every node exactly once, and
// for every edge u→v the node u strictly before v. Among nodes the
// edges leave unordered, WithTieBreak decides; without it the graph's
// enumeration order does.
//
// Sort is stateless across calls and never mutates g. It fails with
//
//   - ErrNilGraph      g is nil
//   - ErrNotDirected   g is undirected (wraps ErrBadShape)
//   - ErrLoopsAllowed  g permits self-loops (wraps ErrBadShape)
//   - *CycleError[T]   g contains cycles; every strongly connected
//     component of size ≥ 2 is reported at once
//     (matches errors.Is(err, ErrCyclePresent))
//
// Complexity: O(V + E) without a tie-break; with one, every removal
// rescans the pending list, adding up to O(V²) comparisons worst case.
// Recursion depth follows the longest dependency chain.
func Sort[T comparable](g Graph[T], opts ...Option[T]) ([]T, error) {
	// 1) Reject a missing graph before touching it.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Shape preconditions, checked in order. Both are construction
	//    errors on the caller's side, distinct from cycle failures.
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if g.Looped() {
		return nil, ErrLoopsAllowed
	}

	// 3) Per-call options.
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	// 4) Cycle gate: decompose into strongly connected components and
	//    fail on every non-trivial one at once. Singletons cannot hide
	//    a cycle here since self-loops are excluded above.
	comps, err := scc.Components[T](g)
	if err != nil {
		return nil, err
	}
	var cyclic [][]T
	for _, comp := range comps {
		if len(comp) < 2 {
			continue
		}
		cyclic = append(cyclic, append([]T(nil), comp...))
	}
	if len(cyclic) > 0 {
		return nil, &CycleError[T]{Components: cyclic}
	}

	// 5) Acyclic from here on: resolution always terminates and cannot
	//    fail. Work on an owned copy of the node list, since removal
	//    mutates it in place.
	nodes := g.Nodes()
	r := &resolver[T]{
		graph: g,
		cmp:   o.tieBreak,
		taken: make(map[T]struct{}, len(nodes)),
		out:   make([]T, 0, len(nodes)),
	}
	r.resolve(append([]T(nil), nodes...))

	return r.out, nil
}

// resolver carries the state of one Sort call: the read-only graph, the
// optional comparator, the set of nodes already placed, and the order
// under construction.
type resolver[T comparable] struct {
	graph Graph[T]
	cmp   func(a, b T) int // nil means enumeration order
	taken map[T]struct{}
	out   []T
}

// resolve drains pending, placing each node after its dependencies:
//
//  1. remove the minimum (removeMin) from pending;
//  2. if it was already placed by a deeper resolution, discard it;
//  3. otherwise resolve its untaken transitive predecessors first,
//     then append it and mark it taken.
//
// pending must be owned by the caller; resolve consumes it.
func (r *resolver[T]) resolve(pending []T) {
	for len(pending) > 0 {
		var m T
		m, pending = r.removeMin(pending)

		if _, done := r.taken[m]; done {
			continue
		}

		r.resolve(r.gather(m))

		r.out = append(r.out, m)
		r.taken[m] = struct{}{}
	}
}

// removeMin extracts the next node from pending. Without a comparator
// that is the head; with one, a linear scan picks the least element,
// keeping the earliest of equals so ties fall back to enumeration
// order. The remainder preserves its order either way.
func (r *resolver[T]) removeMin(pending []T) (T, []T) {
	if r.cmp == nil {
		return pending[0], pending[1:]
	}

	best := 0
	for i := 1; i < len(pending); i++ {
		if r.cmp(pending[i], pending[best]) < 0 {
			best = i
		}
	}
	m := pending[best]

	return m, append(pending[:best], pending[best+1:]...)
}

// gather returns the untaken transitive predecessors of m: everything
// that still has to be placed before m. Each node appears once, in
// discovery order, so the sub-resolution sees each candidate a single
// time.
func (r *resolver[T]) gather(m T) []T {
	var deps []T
	seen := make(map[T]struct{})
	r.collect(m, seen, &deps)

	return deps
}

// collect walks the untaken predecessors of n depth-first, appending
// first visits to deps.
func (r *resolver[T]) collect(n T, seen map[T]struct{}, deps *[]T) {
	for _, p := range r.graph.Predecessors(n) {
		if _, done := r.taken[p]; done {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		*deps = append(*deps, p)
		r.collect(p, seen, deps)
	}
}
