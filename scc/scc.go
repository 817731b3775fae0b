// Package scc implements Tarjan's strongly-connected-components
// algorithm with an explicit frame stack in place of recursion, so the
// traversal depth is bounded by heap, not by the goroutine stack.
package scc

// Components partitions the nodes of g into strongly connected
// components: maximal groups in which every node reaches every other
// along directed edges. Every node of g appears in exactly one
// component; nodes on no cycle come back as singletons. A self-loop
// does not enlarge a component, so loop policy is the caller's concern.
//
// Components are emitted in completion order of the depth-first
// traversal, members in reverse discovery order within each component.
// With a deterministic graph both orders are reproducible.
//
// Returns ErrNilGraph when g is nil.
//
// Complexity: O(V + E) time, O(V) space.
func Components[T comparable](g Graph[T]) ([][]T, error) {
	// 1) Guard the contract.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Size the bookkeeping off the node enumeration.
	nodes := g.Nodes()
	d := &detector[T]{
		graph:   g,
		index:   make(map[T]int, len(nodes)),
		lowlink: make(map[T]int, len(nodes)),
		onStack: make(map[T]bool, len(nodes)),
		stack:   make([]T, 0, len(nodes)),
		comps:   make([][]T, 0, len(nodes)),
	}

	// 3) Cover every node; disconnected regions get their own walks.
	for _, n := range nodes {
		if _, seen := d.index[n]; !seen {
			d.strongConnect(n)
		}
	}

	return d.comps, nil
}

// detector carries the traversal state of one Components run.
type detector[T comparable] struct {
	graph Graph[T]

	next    int       // next discovery index to assign
	index   map[T]int // discovery index per visited node
	lowlink map[T]int // smallest index reachable from the node's subtree
	onStack map[T]bool
	stack   []T // nodes of the components still being assembled

	comps [][]T
}

// frame is one suspended visit on the explicit traversal stack: the
// node, its successor snapshot, and the position of the next successor
// to examine.
type frame[T comparable] struct {
	node T
	succ []T
	next int
}

// strongConnect runs the depth-first walk rooted at root without
// recursion. Each loop turn either descends into an unvisited
// successor, folds a back-reference into the current lowlink, or
// retreats one frame, emitting a component when the frame's node turns
// out to be a component root (lowlink == index).
func (d *detector[T]) strongConnect(root T) {
	d.discover(root)
	frames := []frame[T]{{node: root, succ: d.graph.Successors(root)}}

	for len(frames) > 0 {
		// Re-take the pointer each turn: descending appends to frames
		// and may move the backing array.
		f := &frames[len(frames)-1]

		if f.next < len(f.succ) {
			w := f.succ[f.next]
			f.next++

			if _, seen := d.index[w]; !seen {
				// 1) Descend.
				d.discover(w)
				frames = append(frames, frame[T]{node: w, succ: d.graph.Successors(w)})
				continue
			}
			if d.onStack[w] && d.index[w] < d.lowlink[f.node] {
				// 2) Back-reference into an open component.
				d.lowlink[f.node] = d.index[w]
			}
			continue
		}

		// 3) Retreat: all successors examined.
		v := f.node
		frames = frames[:len(frames)-1]

		if d.lowlink[v] == d.index[v] {
			d.comps = append(d.comps, d.popComponent(v))
		}
		if len(frames) > 0 {
			parent := &frames[len(frames)-1]
			if d.lowlink[v] < d.lowlink[parent.node] {
				d.lowlink[parent.node] = d.lowlink[v]
			}
		}
	}
}

// discover assigns the next index to n and pushes it onto the
// component stack.
func (d *detector[T]) discover(n T) {
	d.index[n] = d.next
	d.lowlink[n] = d.next
	d.next++
	d.stack = append(d.stack, n)
	d.onStack[n] = true
}

// popComponent peels stack entries down to and including the component
// root v. The popped nodes are exactly one strongly connected component.
func (d *detector[T]) popComponent(v T) []T {
	var comp []T
	for {
		w := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		d.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			return comp
		}
	}
}
