// Package toposort: consumer-side graph contract, options, and errors.
package toposort

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilGraph is returned by Sort when the graph is nil.
	ErrNilGraph = errors.New("toposort: graph is nil")

	// ErrBadShape classifies every precondition failure on the input
	// graph. Match it with errors.Is to catch any shape problem, or
	// match the specific sentinels below.
	ErrBadShape = errors.New("toposort: unusable graph shape")

	// ErrNotDirected is returned when the graph is undirected.
	// Wraps ErrBadShape.
	ErrNotDirected = fmt.Errorf("%w: undirected graph", ErrBadShape)

	// ErrLoopsAllowed is returned when the graph's policy permits
	// self-loops, whether or not any loop edge is actually present.
	// Wraps ErrBadShape.
	ErrLoopsAllowed = fmt.Errorf("%w: self-loops permitted", ErrBadShape)

	// ErrCyclePresent classifies cycle failures. Sort never returns it
	// bare; it returns a *CycleError carrying the offending components,
	// which errors.Is matches against this sentinel.
	ErrCyclePresent = errors.New("toposort: cycle present")
)

// Graph is the read surface Sort consumes. *digraph.Graph[T] satisfies
// it; any caller-owned structure with these methods works too.
//
// Nodes, Predecessors and Successors must enumerate deterministically
// for Sort's output to be reproducible without a tie-break rule, and
// the graph must not be mutated while Sort runs.
type Graph[T comparable] interface {
	// Directed reports whether edges are one-way. Sort rejects
	// undirected graphs.
	Directed() bool

	// Looped reports whether the graph permits self-loops. Sort
	// rejects permissive graphs outright: the policy alone makes the
	// shape unsuitable.
	Looped() bool

	// Nodes lists every node exactly once.
	Nodes() []T

	// Predecessors lists the sources of the in-edges of n: the nodes
	// that must be ordered before n.
	Predecessors(n T) []T

	// Successors lists the targets of the out-edges of n.
	Successors(n T) []T
}

// CycleError reports every strongly connected component of two or more
// nodes, i.e. every knot that makes a topological order impossible.
// Components is an owned snapshot, detached from the live graph.
//
// errors.Is(err, ErrCyclePresent) matches it without knowing T.
type CycleError[T comparable] struct {
	Components [][]T
}

// Error renders each component in traversal order, e.g.
//
//	toposort: cycle present: [b c a] [e d]
func (e *CycleError[T]) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrCyclePresent.Error())
	sb.WriteByte(':')
	for _, comp := range e.Components {
		fmt.Fprintf(&sb, " %v", comp)
	}

	return sb.String()
}

// Unwrap ties the error to the ErrCyclePresent class.
func (e *CycleError[T]) Unwrap() error { return ErrCyclePresent }

// Option customizes one Sort call.
type Option[T comparable] func(*options[T])

// options collects per-call knobs while Option functions run.
type options[T comparable] struct {
	tieBreak func(a, b T) int
}

// WithTieBreak supplies the comparator that decides between nodes whose
// relative order the edges leave open: cmp(a, b) < 0 orders a first.
// Among nodes comparing equal the graph's enumeration order decides.
//
// Without this option Sort falls back to enumeration order entirely.
// A nil cmp is ignored.
func WithTieBreak[T comparable](cmp func(a, b T) int) Option[T] {
	return func(o *options[T]) {
		if cmp != nil {
			o.tieBreak = cmp
		}
	}
}
