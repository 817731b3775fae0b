// Package digraph: core types, construction options, and sentinel errors.
//
// See doc.go for the package-level contract.
package digraph

import (
	"errors"
	"sync"
)

var (
	// ErrLoopNotAllowed is returned by AddEdge when from == to and the
	// graph was built without WithSelfLoops.
	ErrLoopNotAllowed = errors.New("digraph: self-loops not allowed")

	// ErrNodeNotFound is returned by queries that name a node absent
	// from the graph.
	ErrNodeNotFound = errors.New("digraph: node not found")
)

// Option configures a Graph at construction time. Policies are immutable
// afterwards, so every query sees one consistent shape for the lifetime
// of the instance.
type Option func(*config)

// config collects the policy flags while options run. It is deliberately
// not generic: options then never need explicit type arguments at the
// call site.
type config struct {
	undirected bool
	allowLoops bool
}

// WithUndirected makes every added edge bidirectional: AddEdge(u, v)
// links both u→v and v→u, and the pair counts as one edge.
// The default is a directed graph.
func WithUndirected() Option {
	return func(c *config) { c.undirected = true }
}

// WithSelfLoops permits edges whose endpoints coincide (u→u).
// The default rejects them with ErrLoopNotAllowed.
func WithSelfLoops() Option {
	return func(c *config) { c.allowLoops = true }
}

// edge is the incidence key: one directed (from, to) pair. Undirected
// graphs store the mirrored key as well, so HasEdge stays O(1) in both
// directions.
type edge[T comparable] struct {
	from, to T
}

// Graph is a thread-safe graph over comparable node values.
//
// Invariants:
//   - order lists every node exactly once, in insertion order.
//   - present mirrors order as a membership set.
//   - succ[u] / pred[v] hold neighbors in first-link order; every entry
//     corresponds to a key in edges.
//   - edgeCount counts logical edges: an undirected pair u—v counts once
//     even though both incidence keys are stored.
//
// The zero value is not usable; construct with New.
type Graph[T comparable] struct {
	mu sync.RWMutex

	// policy flags, immutable after New
	directed   bool
	allowLoops bool

	order   []T
	present map[T]struct{}
	succ    map[T][]T
	pred    map[T][]T
	edges   map[edge[T]]struct{}

	edgeCount int
}

// New builds an empty graph. Without options the graph is directed and
// rejects self-loops, which is the shape the toposort package requires.
//
//	g := digraph.New[string]()                         // directed, loop-free
//	u := digraph.New[int](digraph.WithUndirected())    // undirected
func New[T comparable](opts ...Option) *Graph[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		directed:   !cfg.undirected,
		allowLoops: cfg.allowLoops,
		present:    make(map[T]struct{}),
		succ:       make(map[T][]T),
		pred:       make(map[T][]T),
		edges:      make(map[edge[T]]struct{}),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[T]) Directed() bool { return g.directed }

// Looped reports whether the graph permits self-loops. This is the
// construction policy, not a scan for loop edges actually present.
func (g *Graph[T]) Looped() bool { return g.allowLoops }
