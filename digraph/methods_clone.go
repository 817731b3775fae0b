// File: methods_clone.go
// Role: Deep copies of graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.
package digraph

// Clone returns an independent copy of the graph: same policies, same
// nodes and edges, same enumeration orders, separate storage. Mutating
// either instance never affects the other.
//
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[T]{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		order:      make([]T, len(g.order)),
		present:    make(map[T]struct{}, len(g.present)),
		succ:       make(map[T][]T, len(g.succ)),
		pred:       make(map[T][]T, len(g.pred)),
		edges:      make(map[edge[T]]struct{}, len(g.edges)),
		edgeCount:  g.edgeCount,
	}

	copy(c.order, g.order)
	for n := range g.present {
		c.present[n] = struct{}{}
	}
	for n, s := range g.succ {
		c.succ[n] = append([]T(nil), s...)
	}
	for n, s := range g.pred {
		c.pred[n] = append([]T(nil), s...)
	}
	for k := range g.edges {
		c.edges[k] = struct{}{}
	}

	return c
}
