// File: methods_edges.go
// Role: Edge lifecycle & adjacency: AddEdge/HasEdge/RemoveEdge/EdgeCount,
//       Predecessors/Successors snapshots.
// Determinism:
//   - Predecessors()/Successors() return neighbors in first-link order.
// Concurrency:
//   - Policy flags are immutable after New and readable without the lock.
package digraph

// AddEdge links from→to, auto-registering both endpoints, and reports
// whether a new edge appeared. Re-adding an existing edge is a no-op
// returning (false, nil); edges form a set. On undirected graphs the
// reverse incidence is stored as well and the pair counts as one edge.
//
// A self-loop (from == to) is rejected with ErrLoopNotAllowed unless the
// graph was built with WithSelfLoops.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to T) (bool, error) {
	// 1) Policy gate. Flags are immutable after New, so no lock is
	//    needed to read them.
	if from == to && !g.allowLoops {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints exist from here on.
	g.addNodeLocked(from)
	g.addNodeLocked(to)

	// 3) Set semantics: an already-linked pair changes nothing.
	key := edge[T]{from: from, to: to}
	if _, ok := g.edges[key]; ok {
		return false, nil
	}

	// 4) Record the incidence, mirrored when undirected.
	g.edges[key] = struct{}{}
	g.succ[from] = append(g.succ[from], to)
	g.pred[to] = append(g.pred[to], from)
	if !g.directed && from != to {
		g.edges[edge[T]{from: to, to: from}] = struct{}{}
		g.succ[to] = append(g.succ[to], from)
		g.pred[from] = append(g.pred[from], to)
	}
	g.edgeCount++

	return true, nil
}

// HasEdge reports whether the edge from→to exists. On undirected graphs
// the orientation of the query does not matter.
//
// Complexity: O(1).
func (g *Graph[T]) HasEdge(from, to T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.edges[edge[T]{from: from, to: to}]

	return ok
}

// RemoveEdge deletes the edge from→to (both incidences on undirected
// graphs) and reports whether it was present. Endpoints stay in the
// graph. Removing an absent edge is a no-op.
//
// Complexity: O(deg) to splice the neighbor slices.
func (g *Graph[T]) RemoveEdge(from, to T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(from, to)
}

func (g *Graph[T]) removeEdgeLocked(from, to T) bool {
	key := edge[T]{from: from, to: to}
	if _, ok := g.edges[key]; !ok {
		return false
	}

	delete(g.edges, key)
	g.succ[from] = spliceOut(g.succ[from], to)
	g.pred[to] = spliceOut(g.pred[to], from)
	if !g.directed && from != to {
		delete(g.edges, edge[T]{from: to, to: from})
		g.succ[to] = spliceOut(g.succ[to], from)
		g.pred[from] = spliceOut(g.pred[from], to)
	}
	g.edgeCount--

	return true
}

// EdgeCount returns the number of logical edges: an undirected pair
// counts once, a permitted self-loop counts once.
func (g *Graph[T]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Predecessors returns the nodes with an edge into n, in first-link
// order. Absent or isolated nodes yield nil. The slice is a snapshot
// owned by the caller.
//
// Complexity: O(in-degree).
func (g *Graph[T]) Predecessors(n T) []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return snapshot(g.pred[n])
}

// Successors returns the nodes n has an edge into, in first-link order.
// Absent or isolated nodes yield nil. The slice is a snapshot owned by
// the caller.
//
// Complexity: O(out-degree).
func (g *Graph[T]) Successors(n T) []T {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return snapshot(g.succ[n])
}

// snapshot copies a neighbor slice, preserving nil for "no neighbors".
func snapshot[T comparable](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)

	return out
}

// spliceOut removes the first occurrence of v from s, preserving the
// order of the remaining elements.
func spliceOut[T comparable](s []T, v T) []T {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
