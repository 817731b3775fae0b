// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/RemoveNode/Nodes/NodeCount/Degree.
// Determinism:
//   - Nodes() returns nodes in insertion order.
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.
package digraph

// AddNode inserts n into the graph and reports whether it was newly
// added. Adding a node that already exists is a no-op returning false,
// so callers may register nodes unconditionally.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(n T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addNodeLocked(n)
}

// addNodeLocked is the lock-free insertion helper shared with AddEdge,
// which auto-registers endpoints under its own write lock.
func (g *Graph[T]) addNodeLocked(n T) bool {
	if _, ok := g.present[n]; ok {
		return false
	}
	g.present[n] = struct{}{}
	g.order = append(g.order, n)

	return true
}

// HasNode reports whether n is in the graph.
//
// Complexity: O(1).
func (g *Graph[T]) HasNode(n T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.present[n]

	return ok
}

// RemoveNode deletes n together with every incident edge and reports
// whether the node was present. Removing an absent node is a no-op.
//
// Complexity: O(V + deg²) worst case; removal is a topology rewrite and
// is expected to be rare on dependency graphs.
func (g *Graph[T]) RemoveNode(n T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.present[n]; !ok {
		return false
	}

	// 1) Unlink incident edges through the shared helper so mirrored
	//    keys and the logical edge count stay consistent. Iterate over
	//    copies: removal splices the live neighbor slices.
	for _, to := range append([]T(nil), g.succ[n]...) {
		g.removeEdgeLocked(n, to)
	}
	for _, from := range append([]T(nil), g.pred[n]...) {
		g.removeEdgeLocked(from, n)
	}

	// 2) Drop the node itself.
	delete(g.present, n)
	delete(g.succ, n)
	delete(g.pred, n)
	for i, m := range g.order {
		if m == n {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// Nodes returns every node in insertion order. The slice is a snapshot
// owned by the caller; mutating it does not affect the graph.
//
// Complexity: O(V).
func (g *Graph[T]) Nodes() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]T, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Degree returns the in- and out-degree of n, or ErrNodeNotFound when n
// is absent. On undirected graphs the two numbers coincide, with a
// self-loop contributing to both.
//
// Complexity: O(1).
func (g *Graph[T]) Degree(n T) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.present[n]; !ok {
		return 0, 0, ErrNodeNotFound
	}

	return len(g.pred[n]), len(g.succ[n]), nil
}
