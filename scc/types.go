// Package scc: consumer-side graph contract and sentinel errors.
package scc

import "errors"

// ErrNilGraph is returned by Components when the graph is nil.
var ErrNilGraph = errors.New("scc: graph is nil")

// Graph is the read surface the detector needs: a node enumeration and
// out-neighbor lookups. *digraph.Graph[T] satisfies it; so does any
// caller-owned structure with these two methods.
//
// Both methods must enumerate deterministically if reproducible output
// is wanted, and must not be mutated while Components runs.
type Graph[T comparable] interface {
	// Nodes lists every node exactly once.
	Nodes() []T

	// Successors lists the targets of the out-edges of n.
	Successors(n T) []T
}
